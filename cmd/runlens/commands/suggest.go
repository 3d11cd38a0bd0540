package commands

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/runlens/runlens/domains"
	"github.com/runlens/runlens/logger"
	"github.com/runlens/runlens/querylang"
)

var (
	suggestCursor int
	suggestFormat string
	suggestDB     string
)

// SuggestCmd prints completions for a query at a cursor position. It is
// mainly a debugging surface for the websocket service.
var SuggestCmd = &cobra.Command{
	Use:   "suggest [INPUT]",
	Short: "Print completions for a query at a cursor position",
	Long: `Print the suggestion group the engine would offer for the given
input and cursor position. A cursor of -1 means end of input.

Workflow and folder name suggestions need the execution database; pass it
with --db to enable them.

Examples:
  runlens suggest 'lev'
  runlens suggest 'level:' --format json
  runlens suggest 'workflow:' --db runlens.db`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSuggestCommand,
}

func init() {
	SuggestCmd.Flags().IntVarP(&suggestCursor, "cursor", "c", -1, "Cursor position (-1 for end of input)")
	SuggestCmd.Flags().StringVarP(&suggestFormat, "format", "f", "table", "Output format (table/json)")
	SuggestCmd.Flags().StringVar(&suggestDB, "db", "", "Execution database for workflow/folder domains")
}

func runSuggestCommand(cmd *cobra.Command, args []string) error {
	input := ""
	if len(args) > 0 {
		input = args[0]
	}
	cursor := suggestCursor
	if cursor < 0 {
		cursor = len(input)
	}

	var workflows, folders []string
	if suggestDB != "" {
		provider, err := domains.Open(suggestDB, logger.Logger)
		if err != nil {
			return err
		}
		defer provider.Close()

		ctx := context.Background()
		if workflows, err = provider.WorkflowNames(ctx); err != nil {
			return err
		}
		if folders, err = provider.FolderNames(ctx); err != nil {
			return err
		}
	}

	engine := querylang.NewEngine(workflows, folders)
	group := engine.Suggest(input, cursor)

	if suggestFormat == "json" {
		return displayJSON(map[string]any{
			"context": querylang.AnalyzeContext(input, cursor),
			"group":   group,
		})
	}

	if group == nil {
		pterm.Println("No suggestions (free text)")
		return nil
	}

	if group.FilterKey != "" {
		pterm.Printf("Values for %s:\n", pterm.LightCyan(group.FilterKey))
	} else {
		pterm.Println("Filter keys:")
	}
	for _, s := range group.Suggestions {
		preview := engine.Preview(s, input, cursor)
		if s.Value == "" {
			pterm.Printf("  %s\n", pterm.Gray(s.Label))
			continue
		}
		pterm.Printf("  %-24s %s\n", s.Value, pterm.Gray(preview))
	}
	return nil
}
