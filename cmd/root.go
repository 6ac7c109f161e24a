// Package cmd provides the command-line interface for the bridge CLI tool.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhbakhshipour/jira-bridge/internal/config"
	"github.com/mhbakhshipour/jira-bridge/internal/tracker"
)

var rootCmd = &cobra.Command{
	Use:   "bridge",
	Short: "Bridge routes issue-tracking operations to one of two Jira deployments",
	Long: `Bridge is a CLI facade over two independently configured Jira deployments.
Every invocation selects one backend with --source, authenticates with that
backend's service account, and attributes the request to the acting user
given by --as-user (or JIRA_CONTEXT_USER). Ticket creation is mapped to each
backend's field layout; board, sprint, and search responses come back in one
normalized shape regardless of backend.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Flags shared by every operation: backend selection and attribution
	rootCmd.PersistentFlags().StringP("source", "s", "", "Jira backend to use ('a' or 'b')")
	rootCmd.PersistentFlags().StringP("as-user", "u", "", "Acting username attributed on requests (defaults to JIRA_CONTEXT_USER)")
}

// newFacade builds one facade for this invocation from the persistent flags
// and the environment. Each command constructs and discards its own facade;
// nothing is cached across invocations.
func newFacade(cmd *cobra.Command) (*tracker.Client, error) {
	rawSource, err := cmd.Flags().GetString("source")
	if err != nil {
		return nil, err
	}

	source, err := tracker.ParseSource(rawSource)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %v", err)
	}

	identity, err := cmd.Flags().GetString("as-user")
	if err != nil {
		return nil, err
	}
	if identity == "" {
		identity = cfg.ContextUser
	}

	return tracker.New(cfg, identity, source)
}
