package commands

import (
	"github.com/spf13/cobra"
)

// NewQuestionsCommand creates the questions command.
func NewQuestionsCommand() *cobra.Command {
	var difficulty string

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List the practice question catalogue",
		Long: `List the built-in practice questions, plus any loaded from a
questions file, with their difficulty, concept and answer.`,
		Example: `  # All questions
  bodmas questions

  # Only the hard ones
  bodmas questions --difficulty Hard`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuestions(cmd, difficulty)
		},
	}

	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "filter by difficulty (Easy, Medium, Hard)")
	_ = cmd.RegisterFlagCompletionFunc("difficulty", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"Easy", "Medium", "Hard"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runQuestions(cmd *cobra.Command, difficulty string) error {
	catalog, err := loadCatalog(getConfig())
	if err != nil {
		return err
	}

	questions := catalog.Questions()
	if difficulty != "" {
		filtered := questions[:0]
		for _, q := range questions {
			if q.Difficulty == difficulty {
				filtered = append(filtered, q)
			}
		}
		questions = filtered
	}

	if getConfig().OutputFormat == "json" {
		return renderJSON(cmd.OutOrStdout(), questions)
	}
	renderQuestions(cmd.OutOrStdout(), questions)
	return nil
}
