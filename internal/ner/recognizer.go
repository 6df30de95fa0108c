package ner

// Entity is a labeled span of text returned by a Recognizer.
type Entity struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

const (
	LabelPerson       = "person"
	LabelOrganization = "organization"
)

// Recognizer labels spans of text with semantic categories such as person
// or organization names. Implementations are expected to be stateless; a
// nil entity slice simply means nothing was recognized.
type Recognizer interface {
	Recognize(text string) ([]Entity, error)
}

// Static is a deterministic Recognizer that returns the same entities for
// every input. Useful in tests and offline runs.
type Static struct {
	Entities []Entity
}

func (s *Static) Recognize(text string) ([]Entity, error) {
	return s.Entities, nil
}

// Func adapts a function to the Recognizer interface.
type Func func(text string) ([]Entity, error)

func (f Func) Recognize(text string) ([]Entity, error) {
	return f(text)
}
