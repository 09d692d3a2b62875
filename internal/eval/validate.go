package eval

import "math"

// AnswerTolerance is the absolute difference under which a student answer is
// accepted as correct, allowing for small floating point error.
const AnswerTolerance = 1e-4

// ValidationResult reports how a student answer compares to the solved value.
type ValidationResult struct {
	IsCorrect     bool    `json:"is_correct"`
	CorrectAnswer float64 `json:"correct_answer"`
	StudentAnswer float64 `json:"student_answer"`
}

// Validate solves the expression once and compares the student's answer
// against it within AnswerTolerance. A malformed expression returns an error
// matching ErrInvalidExpression.
func Validate(expression string, studentAnswer float64) (ValidationResult, error) {
	correct, err := Solve(expression)
	if err != nil {
		return ValidationResult{}, err
	}
	return ValidationResult{
		IsCorrect:     math.Abs(studentAnswer-correct) < AnswerTolerance,
		CorrectAnswer: correct,
		StudentAnswer: studentAnswer,
	}, nil
}
