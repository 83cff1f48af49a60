package service

import (
	"context"
	"pathfinder/internal/model"
	"pathfinder/internal/repository"
	"time"

	"github.com/google/uuid"
)

// ReportService persists analysis outcomes as per-session reports
type ReportService struct {
	reportRepo repository.ReportRepo
}

// NewReportService creates a new report service
func NewReportService(reportRepo repository.ReportRepo) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

// Record stores the outcome of a session's analysis, replacing any earlier
// report for that session.
func (s *ReportService) Record(ctx context.Context, session *model.QuizSession, outcome *model.AnalysisOutcome) (*model.Report, error) {
	report := &model.Report{
		ID:          uuid.New().String(),
		SessionID:   session.ID,
		Track:       session.Track,
		Answers:     session.Answers.Clone(),
		Result:      outcome.Result,
		Fallback:    outcome.Fallback,
		FailureNote: outcome.FailureNote,
		CatalogID:   session.CatalogID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.reportRepo.Save(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// GetBySession returns the latest report of a session
func (s *ReportService) GetBySession(ctx context.Context, sessionID string) (*model.Report, error) {
	report, err := s.reportRepo.GetBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}
	return report, nil
}
