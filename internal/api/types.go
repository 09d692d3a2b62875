package api

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/stepwise-labs/bodmas/internal/eval"
	"github.com/stepwise-labs/bodmas/internal/tutor"
)

// Number is a float64 whose JSON encoding tolerates the non-finite values
// the evaluator can produce. Division by zero yields +Inf, which
// encoding/json refuses to emit as a number, so it is encoded as the string
// "Infinity" instead.
type Number float64

// MarshalJSON encodes non-finite values as strings.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsInf(f, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Infinity"`), nil
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	}
	return json.Marshal(f)
}

// answer accepts a student answer supplied as either a JSON number or a
// numeric string, mirroring what web form clients actually send.
type answer struct {
	value float64
	set   bool
}

func (a *answer) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var err error
		if err = json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	a.value = v
	a.set = true
	return nil
}

type solveRequest struct {
	Expression string `json:"expression"`
}

type checkRequest struct {
	Expression string `json:"expression"`
	Answer     answer `json:"answer"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type questionsResponse struct {
	Success   bool             `json:"success"`
	Questions []tutor.Question `json:"questions"`
}

type solveResponse struct {
	Success    bool       `json:"success"`
	Expression string     `json:"expression"`
	Answer     Number     `json:"answer"`
	Steps      eval.Trace `json:"steps"`
}

type checkResponse struct {
	Success       bool       `json:"success"`
	AttemptID     string     `json:"attempt_id"`
	Expression    string     `json:"expression"`
	StudentAnswer Number     `json:"student_answer"`
	CorrectAnswer Number     `json:"correct_answer"`
	IsCorrect     bool       `json:"is_correct"`
	Steps         eval.Trace `json:"steps"`
	Feedback      string     `json:"feedback"`
}

type conceptResponse struct {
	Success bool          `json:"success"`
	Concept tutor.Concept `json:"concept"`
}

type stagesResponse struct {
	Success bool          `json:"success"`
	Stages  []tutor.Stage `json:"stages"`
}
