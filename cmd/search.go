package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhbakhshipour/jira-bridge/internal/logging"
)

// searchCmd runs a JQL search on the selected backend and prints one
// normalized page as JSON. Page size is fixed at 10; page through with
// --start-at.
var searchCmd = &cobra.Command{
	Use:   "search <jql>",
	Short: "Search issues with a JQL query",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields, err := cmd.Flags().GetStringSlice("fields")
		if err != nil {
			return err
		}

		startAt, err := cmd.Flags().GetInt("start-at")
		if err != nil {
			return err
		}

		facade, err := newFacade(cmd)
		if err != nil {
			return err
		}

		result, err := facade.SearchIssues(args[0], fields, startAt)
		if err != nil {
			return fmt.Errorf("search failed: %v", err)
		}

		logging.Debug("search complete",
			"total", result.Total,
			"returned", len(result.Issues),
			"start_at", result.StartAt)

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringSlice("fields", []string{"summary", "reporter", "status", "priority", "created"}, "Issue fields to request")
	searchCmd.Flags().Int("start-at", 0, "Page offset")
}
