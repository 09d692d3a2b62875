package commands

import (
	"encoding/json"
	"io"
	"math"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/stepwise-labs/bodmas/internal/eval"
	"github.com/stepwise-labs/bodmas/internal/tutor"
)

// jsonNumber survives JSON encoding of the non-finite values division by
// zero can produce.
type jsonNumber float64

func (n jsonNumber) MarshalJSON() ([]byte, error) {
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

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderTrace prints a step trace as a table.
func renderTrace(w io.Writer, trace eval.Trace) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Step", "Expression", "Description"})
	for _, step := range trace {
		t.AppendRow(table.Row{step.Index, step.Expression, step.Description})
	}

	t.Render()
}

// renderQuestions prints the question catalogue as a table.
func renderQuestions(w io.Writer, questions []tutor.Question) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"ID", "Question", "Difficulty", "Concept", "Answer"})
	for _, q := range questions {
		t.AppendRow(table.Row{q.ID, q.Question, q.Difficulty, q.Concept, eval.FormatNumber(q.CorrectAnswer)})
	}

	t.Render()
}
