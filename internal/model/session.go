package model

import "time"

type SessionStatus string

const (
	SessionAnswering SessionStatus = "answering"
	SessionAnalyzing SessionStatus = "analyzing"
	SessionCompleted SessionStatus = "completed"
)

// QuizSession is one respondent's pass through a track's questions
type QuizSession struct {
	ID                string        `json:"id" bson:"_id,omitempty"`
	Track             Track         `json:"track" bson:"track"`
	Status            SessionStatus `json:"status" bson:"status"`
	DegreePreference  string        `json:"degreePreference,omitempty" bson:"degreePreference,omitempty"`
	SubjectPreference string        `json:"subjectPreference,omitempty" bson:"subjectPreference,omitempty"`
	CatalogID         string        `json:"catalogId,omitempty" bson:"catalogId,omitempty"` // custom catalog override
	Answers           AnswerMap     `json:"answers" bson:"-"`                               // stored separately, see cache.SessionCache
	CreatedAt         time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// StartSessionRequest is the body of POST /v1/sessions
type StartSessionRequest struct {
	Track             string `json:"track" validate:"required"`
	DegreePreference  string `json:"degreePreference,omitempty" validate:"max=120"`
	SubjectPreference string `json:"subjectPreference,omitempty" validate:"max=120"`
	CatalogID         string `json:"catalogId,omitempty"`
}

// StartSessionResponse carries the respondent token for later calls
type StartSessionResponse struct {
	Session   *QuizSession `json:"session"`
	Token     string       `json:"token"`
	Questions []Question   `json:"questions"`
}

// AnswerRequest is the body of PUT /v1/sessions/{id}/answers/{questionId}
type AnswerRequest struct {
	Answer string `json:"answer" validate:"required,max=2000"`
}
