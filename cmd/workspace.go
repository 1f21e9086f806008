package cmd

import (
	"fmt"

	"github.com/matheuskafuri/newsdesk/internal/config"
	"github.com/matheuskafuri/newsdesk/internal/workspace"
	"github.com/spf13/cobra"
)

var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Show or change the active workspace",
	Long: `Manage the workspace that search results are added to.

The active workspace is stored locally and read once when the search
screen starts. Workspaces themselves live in the backend; this only
selects which one "add" targets.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showWorkspace()
	},
}

var workspaceShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showWorkspace()
	},
}

var workspaceSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Select the active workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := workspace.Open(config.StatePath())
		if err != nil {
			return fmt.Errorf("opening state store: %w", err)
		}
		defer store.Close()

		if err := store.SetActive(args[0]); err != nil {
			return fmt.Errorf("setting workspace: %w", err)
		}
		fmt.Printf("Active workspace: %s\n", args[0])
		return nil
	},
}

var workspaceClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Unset the active workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := workspace.Open(config.StatePath())
		if err != nil {
			return fmt.Errorf("opening state store: %w", err)
		}
		defer store.Close()

		if err := store.ClearActive(); err != nil {
			return fmt.Errorf("clearing workspace: %w", err)
		}
		fmt.Println("Active workspace cleared.")
		return nil
	},
}

func init() {
	workspaceCmd.AddCommand(workspaceShowCmd)
	workspaceCmd.AddCommand(workspaceSetCmd)
	workspaceCmd.AddCommand(workspaceClearCmd)
}

func showWorkspace() error {
	store, err := workspace.Open(config.StatePath())
	if err != nil {
		return fmt.Errorf("opening state store: %w", err)
	}
	defer store.Close()

	active, err := store.Active()
	if err != nil {
		return fmt.Errorf("reading active workspace: %w", err)
	}
	if active == nil {
		fmt.Println("No active workspace. Set one with: newsdesk workspace set <name>")
		return nil
	}
	fmt.Printf("Active workspace: %s\n", active.Name)
	return nil
}
