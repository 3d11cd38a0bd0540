package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/runlens/runlens/querylang"
)

// ValidateCmd checks a query for structural completeness. Exit status 1
// means the query would be rejected on submission.
var ValidateCmd = &cobra.Command{
	Use:   "validate [QUERY]",
	Short: "Check a query for structural completeness",
	Long: `Check that a query has no dangling "key:" and no unterminated
quoted span. Exits non-zero for incomplete queries.

Examples:
  runlens validate 'level:error'
  runlens validate 'workflow:"Daily Sync'`,
	Args: cobra.ArbitraryArgs,
	RunE: runValidateCommand,
}

func runValidateCommand(cmd *cobra.Command, args []string) error {
	query := joinArgs(args)
	if !querylang.ValidateQuery(query) {
		return errors.Newf("query is structurally incomplete: %q", query)
	}
	pterm.Success.Println("Query is complete")
	return nil
}
