package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stepwise-labs/bodmas/internal/eval"
)

// NewSolveCommand creates the solve command.
func NewSolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <expression>",
		Short: "Evaluate an expression by BODMAS rules",
		Long: `Evaluate an arithmetic expression following the order of operations and
print its value. Supports + - * / and ** (or ^) with brackets.`,
		Example: `  # Multiplication binds before addition
  bodmas solve "2 + 3 * 4"

  # Quoting is optional, arguments are joined
  bodmas solve 2 + 3 '*' 4

  # JSON output
  bodmas solve "(2 + 3) * 4" -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, strings.Join(args, " "))
		},
	}
}

func runSolve(cmd *cobra.Command, expression string) error {
	answer, err := eval.Solve(expression)
	if err != nil {
		return err
	}

	if getConfig().OutputFormat == "json" {
		return renderJSON(cmd.OutOrStdout(), struct {
			Expression string     `json:"expression"`
			Answer     jsonNumber `json:"answer"`
		}{Expression: expression, Answer: jsonNumber(answer)})
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), eval.FormatNumber(answer))
	return nil
}
