package model

// InputType defines how a question is answered
type InputType string

const (
	InputText   InputType = "text"   // Free text, interpreted by the extractor only
	InputChoice InputType = "choice" // One of Options; value feeds the calibrator
)

// Option is one selectable answer. Value is what gets stored in the AnswerMap.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Question is one entry of a track's fixed schedule
type Question struct {
	ID          int       `json:"id"`
	Text        string    `json:"text"`
	Subtext     string    `json:"subtext,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
	InputType   InputType `json:"inputType"`
	Options     []Option  `json:"options,omitempty"` // choice only
	Context     string    `json:"context"`           // label used in the answer transcript
}
