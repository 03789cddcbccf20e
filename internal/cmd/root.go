package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "schemapilot",
	Short: "SchemaPilot - Simulated ERP schema and NL2SQL demo backend",
	Long: `SchemaPilot is a demo web backend that fronts a schema-ingestion and
natural-language-to-SQL workflow over a deterministic simulated ERP dataset.

The server can run fully simulated, proxy every operation to an external
workflow webhook, or run in a hybrid mode that persists uploaded documents
locally while proxying query operations.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
