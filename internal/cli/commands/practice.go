package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/stepwise-labs/bodmas/internal/eval"
	"github.com/stepwise-labs/bodmas/internal/tutor"
)

// NewPracticeCommand creates the practice command.
func NewPracticeCommand() *cobra.Command {
	var difficulty string

	cmd := &cobra.Command{
		Use:   "practice",
		Short: "Start an interactive practice session",
		Long: `Work through the question catalogue interactively. Each question
is solved and checked with a small tolerance, and wrong answers
show the worked steps.`,
		Example: `  # Practice the whole catalogue
  bodmas practice

  # Easy questions only
  bodmas practice --difficulty Easy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPractice(cmd, difficulty)
		},
	}

	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "filter by difficulty (Easy, Medium, Hard)")

	return cmd
}

func runPractice(cmd *cobra.Command, difficulty string) error {
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
	if len(questions) == 0 {
		return fmt.Errorf("no questions found for difficulty %q", difficulty)
	}

	historyFile := filepath.Join(os.TempDir(), "bodmas_practice_history")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "answer> ",
		HistoryFile:     historyFile,
		AutoComplete:    newPracticeCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize practice session: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "BODMAS practice (%d questions)\n", len(questions))
	_, _ = fmt.Fprintln(out, "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(out)

	var correct, attempted int
	idx := 0
	for idx < len(questions) {
		q := questions[idx]
		_, _ = fmt.Fprintf(out, "Question %d of %d [%s]: %s = ?\n", idx+1, len(questions), q.Difficulty, q.Question)

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			quit := handlePracticeCommand(cmd, line, q, correct, attempted)
			if quit {
				break
			}
			if line == ".skip" {
				idx++
				_, _ = fmt.Fprintln(out)
			}
			continue
		}

		answer, err := strconv.ParseFloat(line, 64)
		if err != nil {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Please enter a number, or .skip to move on")
			continue
		}

		result, err := eval.Validate(q.Question, answer)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			idx++
			continue
		}

		attempted++
		_, _ = fmt.Fprintln(out, tutor.Feedback(result))
		if result.IsCorrect {
			correct++
		} else {
			renderTrace(out, eval.Explain(q.Question))
		}
		_, _ = fmt.Fprintln(out)
		idx++
	}

	printPracticeScore(out, correct, attempted)
	return nil
}

func handlePracticeCommand(cmd *cobra.Command, line string, q tutor.Question, correct, attempted int) bool {
	command := strings.ToLower(strings.Fields(line)[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printPracticeHelp(cmd.OutOrStdout())
		return false

	case ".steps":
		renderTrace(cmd.OutOrStdout(), eval.Explain(q.Question))
		return false

	case ".skip":
		answer, err := eval.Solve(q.Question)
		if err == nil {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Skipped. The answer was %s\n", eval.FormatNumber(answer))
		}
		return false

	case ".score":
		printPracticeScore(cmd.OutOrStdout(), correct, attempted)
		return false

	default:
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command: %s (type .help for commands)\n", command)
		return false
	}
}

func printPracticeScore(w io.Writer, correct, attempted int) {
	if attempted == 0 {
		_, _ = fmt.Fprintln(w, "No questions attempted")
		return
	}
	_, _ = fmt.Fprintf(w, "Score: %d of %d correct\n", correct, attempted)
}

func printPracticeHelp(w io.Writer) {
	help := `
Commands:
  .help    Show this help message
  .steps   Show the worked steps for the current question
  .skip    Reveal the answer and move to the next question
  .score   Show the running score
  .quit    Exit the session

Tips:
  - Answers are checked with a small tolerance, so 14.0 matches 14
  - Use arrow keys to navigate answer history
`
	_, _ = fmt.Fprintln(w, help)
}

func newPracticeCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".steps"),
		readline.PcItem(".skip"),
		readline.PcItem(".score"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
