package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/matheuskafuri/newsdesk/internal/config"
	"github.com/matheuskafuri/newsdesk/internal/news"
	"github.com/spf13/cobra"
)

var (
	flagCategory string
	flagLanguage string
	flagPageSize int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search news and print the results",
	Long:  "Run a one-shot search against the backend without launching the TUI.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.TrimSpace(strings.Join(args, " "))
		if query == "" {
			return fmt.Errorf("query must not be empty")
		}

		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		language := flagLanguage
		if language == "" {
			language = cfg.Language()
		}
		pageSize := flagPageSize
		if pageSize <= 0 {
			pageSize = cfg.PageSize()
		}

		client := news.NewClient(cfg.BaseURL(), cfg.TimeoutDuration())
		articles, err := client.SearchArticles(context.Background(), news.SearchQuery{
			Text:     query,
			Category: flagCategory,
			Language: language,
			PageSize: pageSize,
		})
		if err != nil {
			return fmt.Errorf("searching: %w", err)
		}

		if len(articles) == 0 {
			fmt.Println("No news articles found. Try a different search query.")
			return nil
		}

		fmt.Printf("Found %d articles\n\n", len(articles))
		for _, a := range articles {
			fmt.Printf("  %s\n", a.Title)
			fmt.Printf("    %s · %s\n", a.Source, a.PublishedAt)
			if a.URL != "" {
				fmt.Printf("    %s\n", a.URL)
			}
			fmt.Println()
		}
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the backend's news categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		client := news.NewClient(cfg.BaseURL(), cfg.TimeoutDuration())
		categories, err := client.ListCategories(context.Background())
		if err != nil {
			return fmt.Errorf("listing categories: %w", err)
		}

		for _, c := range categories {
			fmt.Println(c)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&flagCategory, "category", "", "category filter (see: newsdesk categories)")
	searchCmd.Flags().StringVar(&flagLanguage, "language", "", "language code (default from config)")
	searchCmd.Flags().IntVar(&flagPageSize, "page-size", 0, "number of articles to return")
}
