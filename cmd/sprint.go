package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// sprintCmd groups the sprint operations.
var sprintCmd = &cobra.Command{
	Use:   "sprint",
	Short: "List sprints and manage sprint membership",
}

// sprintAddCmd moves issues into a sprint as one bulk request.
var sprintAddCmd = &cobra.Command{
	Use:   "add <sprint-id> <issue-key>...",
	Short: "Add issues to a sprint",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sprintID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("sprint id must be numeric: %v", err)
		}

		facade, err := newFacade(cmd)
		if err != nil {
			return err
		}

		issueKeys := args[1:]
		if err := facade.AddIssuesToSprint(sprintID, issueKeys); err != nil {
			return fmt.Errorf("failed to add issues to sprint: %v", err)
		}

		fmt.Printf("Added %d issue(s) to sprint %d\n", len(issueKeys), sprintID)
		return nil
	},
}

// sprintListCmd lists a board's sprints filtered by state, as JSON.
var sprintListCmd = &cobra.Command{
	Use:   "list <board-id>",
	Short: "List a board's sprints by state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		boardID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("board id must be numeric: %v", err)
		}

		state, err := cmd.Flags().GetString("state")
		if err != nil {
			return err
		}

		facade, err := newFacade(cmd)
		if err != nil {
			return err
		}

		sprints, err := facade.GetSprints(boardID, state)
		if err != nil {
			return fmt.Errorf("failed to list sprints: %v", err)
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(sprints)
	},
}

func init() {
	rootCmd.AddCommand(sprintCmd)
	sprintCmd.AddCommand(sprintAddCmd)
	sprintCmd.AddCommand(sprintListCmd)

	sprintListCmd.Flags().String("state", "active", "Sprint state to filter by (backend vocabulary, e.g. 'active', 'future', 'closed')")
}
