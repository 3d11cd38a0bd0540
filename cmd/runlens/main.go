package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/runlens/runlens/cmd/runlens/commands"
	"github.com/runlens/runlens/logger"
)

var rootCmd = &cobra.Command{
	Use:   "runlens",
	Short: "runlens - execution log search query tools",
	Long: `runlens - query language tools for execution log search.

runlens parses free-form log search queries mixing field:value filters with
plain keywords, and serves context-aware autocomplete to the host UI.

Available commands:
  parse     - Parse a query and print its filters and API params
  suggest   - Print completions for a query at a cursor position
  validate  - Check a query for structural completeness
  serve     - Start the websocket suggest service

Examples:
  runlens parse 'level:error trigger:api payment'
  runlens suggest 'lev' --cursor 3
  runlens validate 'workflow:"Daily Sync" level:error'
  runlens serve --config runlens.toml`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if err := logger.Initialize(jsonLogs); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit structured JSON logs")

	rootCmd.AddCommand(commands.ParseCmd)
	rootCmd.AddCommand(commands.SuggestCmd)
	rootCmd.AddCommand(commands.ValidateCmd)
	rootCmd.AddCommand(commands.ServeCmd)
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
