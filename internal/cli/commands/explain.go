package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/stepwise-labs/bodmas/internal/eval"
)

// NewExplainCommand creates the explain command.
func NewExplainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <expression>",
		Short: "Show the BODMAS simplification steps for an expression",
		Long: `Reduce an expression one precedence group at a time (brackets, exponents,
division/multiplication, addition/subtraction) and print every step.

The trace is best-effort: if a reduction cannot continue, the steps found so
far are still shown.`,
		Example: `  # Step-by-step reduction
  bodmas explain "(10 - 4) * 2 + 3"

  # Steps as JSON
  bodmas explain "24 / 3 / 2" -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(cmd, strings.Join(args, " "))
		},
	}
}

func runExplain(cmd *cobra.Command, expression string) error {
	trace := eval.Explain(expression)

	if getConfig().OutputFormat == "json" {
		return renderJSON(cmd.OutOrStdout(), trace)
	}

	renderTrace(cmd.OutOrStdout(), trace)
	return nil
}
