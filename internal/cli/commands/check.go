package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stepwise-labs/bodmas/internal/eval"
	"github.com/stepwise-labs/bodmas/internal/tutor"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <expression> <answer>",
		Short: "Check an answer against the solved expression",
		Long: `Solve the expression and compare the given answer within a small
tolerance. Incorrect answers also print the worked steps.`,
		Example: `  # Correct
  bodmas check "2 + 3 * 4" 14

  # Incorrect, shows the steps
  bodmas check "2 + 3 * 4" 20`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			expression := strings.Join(args[:len(args)-1], " ")
			answer, err := strconv.ParseFloat(args[len(args)-1], 64)
			if err != nil {
				return fmt.Errorf("answer must be a number, got %q", args[len(args)-1])
			}
			return runCheck(cmd, expression, answer)
		},
	}
}

func runCheck(cmd *cobra.Command, expression string, answer float64) error {
	result, err := eval.Validate(expression, answer)
	if err != nil {
		return err
	}

	if getConfig().OutputFormat == "json" {
		return renderJSON(cmd.OutOrStdout(), struct {
			Expression    string     `json:"expression"`
			IsCorrect     bool       `json:"is_correct"`
			CorrectAnswer jsonNumber `json:"correct_answer"`
			StudentAnswer jsonNumber `json:"student_answer"`
			Feedback      string     `json:"feedback"`
		}{
			Expression:    expression,
			IsCorrect:     result.IsCorrect,
			CorrectAnswer: jsonNumber(result.CorrectAnswer),
			StudentAnswer: jsonNumber(result.StudentAnswer),
			Feedback:      tutor.Feedback(result),
		})
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), tutor.Feedback(result))
	if !result.IsCorrect {
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
		renderTrace(cmd.OutOrStdout(), eval.Explain(expression))
	}
	return nil
}
