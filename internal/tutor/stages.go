package tutor

// Stage is one tier of the BODMAS precedence order. Higher precedence stages
// are applied first.
type Stage struct {
	Name       string `json:"name"`
	ConceptKey string `json:"concept"`
	Precedence int    `json:"precedence"`
}

// Stages returns the BODMAS stage table, highest precedence first.
func Stages() []Stage {
	return []Stage{
		{Name: "Brackets", ConceptKey: ConceptBrackets, Precedence: 4},
		{Name: "Orders", ConceptKey: ConceptOrders, Precedence: 3},
		{Name: "Division/Multiplication", ConceptKey: ConceptDivisionMultiplication, Precedence: 2},
		{Name: "Addition/Subtraction", ConceptKey: ConceptAdditionSubtraction, Precedence: 1},
	}
}
