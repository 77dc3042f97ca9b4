package tutor

// ErrorType is one concrete mistake pattern within a taxonomy category.
type ErrorType struct {
	Name   string `json:"name"`
	Remedy string `json:"remedy"`
}

// TaxonomyCategory groups related mistake patterns. Learners label wrong
// answers with one of these so error-category breakdowns stay comparable
// across sessions.
type TaxonomyCategory struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Types       []ErrorType `json:"types"`
}

// ErrorTaxonomy classifies wrong answers into three stages of solving a
// question: understanding what it says, reasoning about it, and executing
// under time pressure.
var ErrorTaxonomy = []TaxonomyCategory{
	{
		Name:        "Understanding",
		Description: "The question or passage was misread before any reasoning happened.",
		Types: []ErrorType{
			{Name: "Vocabulary gap", Remedy: "Keep a word list from missed questions and review it before each session."},
			{Name: "Sentence structure", Remedy: "Practice isolating the main clause of long sentences before processing modifiers."},
			{Name: "Missed the question stem", Remedy: "Read the stem first and restate in your own words what is being asked."},
		},
	},
	{
		Name:        "Reasoning",
		Description: "The text was understood but the logic went wrong.",
		Types: []ErrorType{
			{Name: "Scope shift", Remedy: "Check that the option talks about the same subject and degree as the argument."},
			{Name: "Reversed logic", Remedy: "Write the conclusion and evidence as an if-then chain and verify the direction."},
			{Name: "Attractive distractor", Remedy: "For the tempting wrong option, name the exact word that makes it fail."},
		},
	},
	{
		Name:        "Execution",
		Description: "Knowledge and logic were fine but the process broke down.",
		Types: []ErrorType{
			{Name: "Time pressure", Remedy: "Set a per-question time cap during practice and guess-and-flag past it."},
			{Name: "Careless misread", Remedy: "Underline negations and comparison words (not, except, unless, more than)."},
			{Name: "Second-guessing", Remedy: "Only change an answer when you can articulate a concrete reason the first one is wrong."},
		},
	},
}
