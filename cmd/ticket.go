package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mhbakhshipour/jira-bridge/internal/logging"
	"github.com/mhbakhshipour/jira-bridge/pkg/models"
)

// ticketCmd groups the ticket mutation operations.
var ticketCmd = &cobra.Command{
	Use:   "ticket",
	Short: "Create, comment on, and transition tickets",
}

// ticketCreateCmd creates one ticket on the selected backend. Which flags
// are required depends on the backend: source 'a' needs --product-id, source
// 'b' needs the user-story clauses.
var ticketCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a ticket on the selected backend",
	Long: `Create a ticket on the selected backend.

The draft is mapped to the backend's field layout:
- source 'a': the ticket lands in the project given by --product-id
- source 'b': the ticket lands in a fixed project, carries the acting user
  as reporter, the --as-a/--i-want/--so-that clauses joined into a story
  field, --product-name as a product field, and a priority derived from
  --high-priority`,
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, err := draftFromFlags(cmd)
		if err != nil {
			return err
		}

		facade, err := newFacade(cmd)
		if err != nil {
			return err
		}

		key, err := facade.CreateTicket(draft)
		if err != nil {
			return fmt.Errorf("failed to create ticket: %v", err)
		}

		logging.Info("ticket created", "key", key)
		fmt.Println(key)
		return nil
	},
}

// ticketCommentCmd adds a comment to an existing ticket.
var ticketCommentCmd = &cobra.Command{
	Use:   "comment <issue-key> <body>",
	Short: "Add a comment to a ticket",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		facade, err := newFacade(cmd)
		if err != nil {
			return err
		}

		if err := facade.AddComment(args[0], args[1]); err != nil {
			return fmt.Errorf("failed to add comment: %v", err)
		}

		fmt.Printf("Added comment to %s\n", args[0])
		return nil
	},
}

// ticketTransitionCmd applies a workflow transition to a ticket. The
// transition ID is backend-defined and forwarded as-is.
var ticketTransitionCmd = &cobra.Command{
	Use:   "transition <issue-key> <transition-id>",
	Short: "Apply a workflow transition to a ticket",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		transitionID, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("transition id must be numeric: %v", err)
		}

		facade, err := newFacade(cmd)
		if err != nil {
			return err
		}

		if err := facade.ChangeTransition(args[0], transitionID); err != nil {
			return fmt.Errorf("failed to transition issue: %v", err)
		}

		fmt.Printf("Applied transition %d to %s\n", transitionID, args[0])
		return nil
	},
}

// draftFromFlags reads the ticket draft off the create command's flags.
func draftFromFlags(cmd *cobra.Command) (models.TicketDraft, error) {
	var draft models.TicketDraft
	var err error

	if draft.Name, err = cmd.Flags().GetString("name"); err != nil {
		return draft, err
	}
	if draft.ProductID, err = cmd.Flags().GetString("product-id"); err != nil {
		return draft, err
	}
	if draft.AsA, err = cmd.Flags().GetString("as-a"); err != nil {
		return draft, err
	}
	if draft.IWant, err = cmd.Flags().GetString("i-want"); err != nil {
		return draft, err
	}
	if draft.SoThat, err = cmd.Flags().GetString("so-that"); err != nil {
		return draft, err
	}
	if draft.IsHighPriority, err = cmd.Flags().GetBool("high-priority"); err != nil {
		return draft, err
	}
	if draft.Product.Name, err = cmd.Flags().GetString("product-name"); err != nil {
		return draft, err
	}

	return draft, nil
}

func init() {
	rootCmd.AddCommand(ticketCmd)
	ticketCmd.AddCommand(ticketCreateCmd)
	ticketCmd.AddCommand(ticketCommentCmd)
	ticketCmd.AddCommand(ticketTransitionCmd)

	ticketCreateCmd.Flags().String("name", "", "Ticket summary")
	ticketCreateCmd.Flags().String("product-id", "", "Project ID the ticket belongs to (source 'a')")
	ticketCreateCmd.Flags().String("as-a", "", "User-story actor clause (source 'b')")
	ticketCreateCmd.Flags().String("i-want", "", "User-story goal clause (source 'b')")
	ticketCreateCmd.Flags().String("so-that", "", "User-story benefit clause (source 'b')")
	ticketCreateCmd.Flags().Bool("high-priority", false, "Create with high priority (source 'b')")
	ticketCreateCmd.Flags().String("product-name", "", "Product name custom field (source 'b')")
}
