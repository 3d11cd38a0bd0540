package commands

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/runlens/runlens/querylang"
)

var parseFormat string

// ParseCmd parses a query and prints the structured result.
var ParseCmd = &cobra.Command{
	Use:   "parse [QUERY]",
	Short: "Parse a query and print its filters and API params",
	Long: `Parse a query and print its filters, free-text remainder, and the
flat parameter map handed to the execution-log API.

Examples:
  runlens parse 'level:error trigger:api'
  runlens parse 'cost:>0.01 refund issue' --format json`,
	Args: cobra.ArbitraryArgs,
	RunE: runParseCommand,
}

func init() {
	ParseCmd.Flags().StringVarP(&parseFormat, "format", "f", "table", "Output format (table/json)")
}

func runParseCommand(cmd *cobra.Command, args []string) error {
	query := joinArgs(args)
	parsed := querylang.ParseQuery(query)
	params := querylang.QueryToAPIParams(parsed)

	if parseFormat == "json" {
		return displayJSON(map[string]any{
			"filters":    parsed.Filters,
			"textSearch": parsed.TextSearch,
			"params":     params,
		})
	}

	if len(parsed.Filters) > 0 {
		rows := pterm.TableData{{"Field", "Operator", "Value"}}
		for _, f := range parsed.Filters {
			rows = append(rows, []string{f.Field, string(f.Operator), pterm.Sprintf("%v", f.Value)})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
			return err
		}
	} else {
		pterm.Println("No filters recognized")
	}

	if parsed.TextSearch != "" {
		pterm.Printf("Text search: %s\n", pterm.LightCyan(parsed.TextSearch))
	}

	if len(params) > 0 {
		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		pterm.Println()
		pterm.Println("API params:")
		for _, k := range keys {
			pterm.Printf("  %s = %s\n", k, params[k])
		}
	}

	if !querylang.ValidateQuery(query) {
		pterm.Warning.Println("Query is structurally incomplete and would be rejected on submit")
	}

	return nil
}

func displayJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
