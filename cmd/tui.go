package cmd

import (
	"fmt"

	"github.com/matheuskafuri/newsdesk/internal/config"
	"github.com/matheuskafuri/newsdesk/internal/news"
	"github.com/matheuskafuri/newsdesk/internal/tui"
	"github.com/matheuskafuri/newsdesk/internal/workspace"
	"github.com/spf13/cobra"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := workspace.Open(config.StatePath())
	if err != nil {
		return fmt.Errorf("opening state store: %w", err)
	}
	defer store.Close()

	// The active workspace is read once here; selection happens through
	// the workspace subcommand, not inside the screen.
	active, err := store.Active()
	if err != nil {
		return fmt.Errorf("reading active workspace: %w", err)
	}
	workspaceName := ""
	if active != nil {
		workspaceName = active.Name
	}

	client := news.NewClient(cfg.BaseURL(), cfg.TimeoutDuration())

	return tui.Run(tui.RunOpts{
		Client:    client,
		History:   store,
		Workspace: workspaceName,
		Language:  cfg.Language(),
		PageSize:  cfg.PageSize(),
	})
}
