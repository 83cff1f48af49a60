package model

import "time"

// Report is a completed analysis persisted per session
type Report struct {
	ID          string          `json:"id" bson:"_id,omitempty"`
	SessionID   string          `json:"sessionId" bson:"sessionId"`
	Track       Track           `json:"track" bson:"track"`
	Answers     AnswerMap       `json:"answers" bson:"answers"`
	Result      *AnalysisResult `json:"result" bson:"result"`
	Fallback    bool            `json:"fallback" bson:"fallback"` // result is the simulation template
	FailureNote string          `json:"failureNote,omitempty" bson:"failureNote,omitempty"`
	CatalogID   string          `json:"catalogId,omitempty" bson:"catalogId,omitempty"`
	CreatedAt   time.Time       `json:"createdAt" bson:"createdAt"`
}
