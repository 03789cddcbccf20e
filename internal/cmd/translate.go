package cmd

import (
	"fmt"
	"strings"

	"github.com/matthieukhl/schemapilot/internal/nl2sql"
	"github.com/spf13/cobra"
)

var translateCmd = &cobra.Command{
	Use:   "translate [question]",
	Short: "Translate a natural-language question to SQL",
	Long: `Translate a natural-language question into the simulated SQL the
server would return, without starting the server.

Examples:
  schemapilot translate "total sales last month"
  schemapilot translate "orders count by region"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")

	fmt.Printf("❓ Question: %s\n", question)
	fmt.Printf("📄 SQL:      %s\n", nl2sql.Translate(question))
	return nil
}
