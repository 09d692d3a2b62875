package tutor

import (
	"fmt"

	"github.com/stepwise-labs/bodmas/internal/eval"
)

// conceptHint is shown with incorrect answers. It mirrors the standing
// tutoring hint for precedence mistakes.
const conceptHint = "Remember BODMAS: solve brackets and orders before multiplication, division, addition and subtraction."

// Feedback turns a validation result into a learner-facing message.
func Feedback(res eval.ValidationResult) string {
	if res.IsCorrect {
		return "Excellent! Your answer is correct."
	}
	return fmt.Sprintf("Incorrect. Your answer: %s, correct answer: %s. %s",
		eval.FormatNumber(res.StudentAnswer), eval.FormatNumber(res.CorrectAnswer), conceptHint)
}
