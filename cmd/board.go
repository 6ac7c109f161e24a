package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// boardCmd groups the board operations.
var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Look up boards",
}

// boardFirstCmd prints the ID of the first board for a project, in backend
// order.
var boardFirstCmd = &cobra.Command{
	Use:   "first <project-key-or-id>",
	Short: "Print the first board ID for a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		facade, err := newFacade(cmd)
		if err != nil {
			return err
		}

		boardID, err := facade.GetFirstBoard(args[0])
		if err != nil {
			return fmt.Errorf("failed to look up board: %v", err)
		}

		fmt.Println(boardID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(boardCmd)
	boardCmd.AddCommand(boardFirstCmd)
}
