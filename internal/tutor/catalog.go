// Package tutor provides the static tutoring catalogue consumed by the CLI
// and web API: sample BODMAS questions, learn-this-concept texts, and
// feedback generation for checked answers.
package tutor

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/stepwise-labs/bodmas/internal/eval"
)

// Question is one practice question with its expected answer.
type Question struct {
	ID            int     `json:"id" yaml:"id"`
	Question      string  `json:"question" yaml:"question"`
	Difficulty    string  `json:"difficulty" yaml:"difficulty"`
	Concept       string  `json:"concept" yaml:"concept"`
	CorrectAnswer float64 `json:"correct_answer" yaml:"correct_answer"`
}

// Concept is the learning material for one BODMAS concept.
type Concept struct {
	Title          string   `json:"title" yaml:"title"`
	Description    string   `json:"description" yaml:"description"`
	Rule           string   `json:"rule" yaml:"rule"`
	Example        string   `json:"example" yaml:"example"`
	CommonMistakes []string `json:"common_mistakes" yaml:"common_mistakes"`
}

// Difficulty levels accepted for catalogue questions.
var validDifficulties = map[string]bool{
	"Easy":   true,
	"Medium": true,
	"Hard":   true,
}

// Catalog holds the question and concept catalogues. It may be reloaded from
// a YAML file while the API server is running, so reads take a lock.
type Catalog struct {
	mu        sync.RWMutex
	questions []Question
	concepts  map[string]Concept
}

// NewCatalog returns a catalogue populated with the built-in questions and
// concept texts.
func NewCatalog() *Catalog {
	return &Catalog{
		questions: builtinQuestions(),
		concepts:  builtinConcepts(),
	}
}

// questionsFile is the YAML shape of a questions override file.
type questionsFile struct {
	Questions []Question `yaml:"questions"`
}

// LoadFile replaces the question catalogue with the contents of a YAML file.
// Every question is checked against the evaluator: its expression must solve,
// and a supplied correct_answer must agree with the solved value. A zero
// correct_answer is filled in from the evaluator.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read questions file: %w", err)
	}

	var f questionsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse questions file %s: %w", path, err)
	}
	if len(f.Questions) == 0 {
		return fmt.Errorf("questions file %s contains no questions", path)
	}

	questions := make([]Question, 0, len(f.Questions))
	for i, q := range f.Questions {
		if q.ID == 0 {
			q.ID = i + 1
		}
		if q.Question == "" {
			return fmt.Errorf("question %d: expression is required", q.ID)
		}
		if q.Difficulty == "" {
			q.Difficulty = "Medium"
		}
		if !validDifficulties[q.Difficulty] {
			return fmt.Errorf("question %d: unknown difficulty %q", q.ID, q.Difficulty)
		}

		answer, err := eval.Solve(q.Question)
		if err != nil {
			return fmt.Errorf("question %d: %w", q.ID, err)
		}
		if q.CorrectAnswer == 0 {
			q.CorrectAnswer = answer
		} else if res, _ := eval.Validate(q.Question, q.CorrectAnswer); !res.IsCorrect {
			return fmt.Errorf("question %d: stated answer %v disagrees with evaluated %v",
				q.ID, q.CorrectAnswer, answer)
		}

		questions = append(questions, q)
	}

	c.mu.Lock()
	c.questions = questions
	c.mu.Unlock()
	return nil
}

// Questions returns a copy of the question catalogue.
func (c *Catalog) Questions() []Question {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// QuestionByID returns the question with the given id.
func (c *Catalog) QuestionByID(id int) (Question, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, q := range c.questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// ConceptByKey returns the learning material for a concept key.
func (c *Catalog) ConceptByKey(key string) (Concept, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	concept, ok := c.concepts[key]
	return concept, ok
}

// ConceptKeys returns the known concept keys in stage order.
func (c *Catalog) ConceptKeys() []string {
	return []string{
		ConceptBrackets,
		ConceptOrders,
		ConceptDivisionMultiplication,
		ConceptAdditionSubtraction,
	}
}

// Concept keys exposed by the learn endpoints.
const (
	ConceptBrackets               = "brackets"
	ConceptOrders                 = "orders"
	ConceptDivisionMultiplication = "division_multiplication"
	ConceptAdditionSubtraction    = "addition_subtraction"
)

func builtinQuestions() []Question {
	return []Question{
		{ID: 1, Question: "2 + 3 * 4", Difficulty: "Easy", Concept: "Multiplication before Addition", CorrectAnswer: 14},
		{ID: 2, Question: "(2 + 3) * 4", Difficulty: "Easy", Concept: "Brackets first", CorrectAnswer: 20},
		{ID: 3, Question: "10 - 2 * 3", Difficulty: "Medium", Concept: "Multiplication before Subtraction", CorrectAnswer: 4},
		{ID: 4, Question: "20 / 4 + 3", Difficulty: "Medium", Concept: "Division before Addition", CorrectAnswer: 8},
		{ID: 5, Question: "2 ** 3 + 4", Difficulty: "Medium", Concept: "Orders/Exponents first", CorrectAnswer: 12},
		{ID: 6, Question: "(10 - 4) * 2 + 3", Difficulty: "Hard", Concept: "Complex expression", CorrectAnswer: 15},
		{ID: 7, Question: "24 / 3 / 2", Difficulty: "Hard", Concept: "Division left to right", CorrectAnswer: 4},
		{ID: 8, Question: "2 * 3 + 4 * 5", Difficulty: "Hard", Concept: "Multiple operations", CorrectAnswer: 26},
	}
}

func builtinConcepts() map[string]Concept {
	return map[string]Concept{
		ConceptBrackets: {
			Title:       "Understanding Brackets",
			Description: "Brackets show which calculation to do first",
			Rule:        "Always solve what is inside brackets before doing anything else",
			Example:     "(2 + 3) * 4 = 5 * 4 = 20, NOT 2 + (3 * 4) = 2 + 12 = 14",
			CommonMistakes: []string{
				"Ignoring brackets",
				"Solving outside brackets first",
			},
		},
		ConceptOrders: {
			Title:       "Understanding Orders (Exponents)",
			Description: "Orders means powers, roots, and other similar operations",
			Rule:        "Solve exponents and powers before multiplication/division",
			Example:     "2 * 3 ** 2 = 2 * 9 = 18, NOT (2 * 3) ** 2 = 6 ** 2 = 36",
			CommonMistakes: []string{
				"Treating exponents as multiplication",
				"Wrong order of operations",
			},
		},
		ConceptDivisionMultiplication: {
			Title:       "Division and Multiplication",
			Description: "These operations have equal priority and are done left to right",
			Rule:        "Do multiplication and division from left to right, before addition/subtraction",
			Example:     "12 / 2 * 3 = 6 * 3 = 18, NOT 12 / (2 * 3) = 12 / 6 = 2",
			CommonMistakes: []string{
				"Wrong order",
				"Not going left to right",
			},
		},
		ConceptAdditionSubtraction: {
			Title:       "Addition and Subtraction",
			Description: "These are done last and from left to right",
			Rule:        "Do addition and subtraction from left to right, after all other operations",
			Example:     "10 - 2 + 3 = 8 + 3 = 11, NOT 10 - (2 + 3) = 10 - 5 = 5",
			CommonMistakes: []string{
				"Wrong order",
				"Not going left to right",
			},
		},
	}
}
