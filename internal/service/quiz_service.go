package service

import (
	"context"
	"errors"
	"fmt"
	"pathfinder/internal/cache"
	"pathfinder/internal/logger"
	"pathfinder/internal/model"
	"pathfinder/internal/quiz"
	"time"

	"github.com/google/uuid"
)

// Analyzer runs the recommendation pipeline for one request
type Analyzer interface {
	Analyze(ctx context.Context, req model.AnalysisRequest) (*model.AnalysisOutcome, error)
}

// QuizService manages a respondent's session from start to analysis
type QuizService struct {
	sessions cache.SessionCache
	results  cache.ResultCache
	reports  *ReportService
	analyzer Analyzer
	catalogs CatalogSource
	auth     *AuthService
	lockTTL  time.Duration
	log      *logger.Logger
}

// NewQuizService creates a new quiz service. lockTTL bounds how long a
// crashed analysis can keep a session claimed.
func NewQuizService(
	sessions cache.SessionCache,
	results cache.ResultCache,
	reports *ReportService,
	analyzer Analyzer,
	catalogs CatalogSource,
	auth *AuthService,
	lockTTL time.Duration,
	log *logger.Logger,
) *QuizService {
	return &QuizService{
		sessions: sessions,
		results:  results,
		reports:  reports,
		analyzer: analyzer,
		catalogs: catalogs,
		auth:     auth,
		lockTTL:  lockTTL,
		log:      log.With("component", "quiz"),
	}
}

// Start opens a session on a track and issues its respondent token
func (s *QuizService) Start(ctx context.Context, req model.StartSessionRequest) (*model.StartSessionResponse, error) {
	track, ok := model.ParseTrack(req.Track)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTrack, req.Track)
	}
	if req.CatalogID != "" {
		if _, err := s.catalogs.Resolve(ctx, req.CatalogID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	session := &model.QuizSession{
		ID:                uuid.New().String(),
		Track:             track,
		Status:            model.SessionAnswering,
		DegreePreference:  req.DegreePreference,
		SubjectPreference: req.SubjectPreference,
		CatalogID:         req.CatalogID,
		Answers:           model.AnswerMap{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	token, err := s.auth.GenerateRespondentToken(session.ID, track)
	if err != nil {
		return nil, err
	}

	s.log.Info("session started", "session", session.ID, "track", track, "catalog", req.CatalogID)
	return &model.StartSessionResponse{
		Session:   session,
		Token:     token,
		Questions: quiz.Questions(track),
	}, nil
}

// Get returns a session with its answers
func (s *QuizService) Get(ctx context.Context, id string) (*model.QuizSession, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// RecordAnswer stores the answer to one question, replacing any earlier
// answer to the same question. It is rejected while an analysis holds the
// session lock.
func (s *QuizService) RecordAnswer(ctx context.Context, id string, questionID int, raw string) (*model.QuizSession, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	answer, err := quiz.NormalizeAnswer(session.Track, questionID, raw)
	if err != nil {
		return nil, err
	}

	session.Answers[questionID] = answer
	session.UpdatedAt = time.Now().UTC()
	// Changed answers invalidate a stored result and any abandoned run.
	session.Status = model.SessionAnswering
	if err := s.sessions.SaveAnswer(ctx, session, questionID, answer); err != nil {
		if errors.Is(err, cache.ErrLocked) {
			return nil, ErrSessionLocked
		}
		return nil, fmt.Errorf("failed to save answer: %w", err)
	}
	return session, nil
}

// Submit runs the analysis for a fully answered session. A completed session
// returns its stored result without calling the models again.
func (s *QuizService) Submit(ctx context.Context, id string) (*model.AnalysisOutcome, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.Status == model.SessionCompleted {
		if outcome := s.stored(ctx, id); outcome != nil {
			return outcome, nil
		}
	}

	if missing := quiz.Missing(session.Track, session.Answers); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %v", quiz.ErrIncompleteAnswers, missing)
	}

	locked, err := s.sessions.Lock(ctx, id, s.lockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to lock session: %w", err)
	}
	if !locked {
		return nil, ErrAnalysisInProgress
	}
	// Cleanup must survive the caller going away.
	bg := context.WithoutCancel(ctx)
	defer func() {
		if err := s.sessions.Unlock(bg, id); err != nil {
			s.log.Warn("failed to unlock session", "session", id, "error", err)
		}
	}()

	// Answers recorded before the claim belong to this run; later ones are
	// refused until it ends.
	if session, err = s.Get(ctx, id); err != nil {
		return nil, err
	}
	if session.Status == model.SessionCompleted {
		if outcome := s.stored(ctx, id); outcome != nil {
			return outcome, nil
		}
	}
	s.setStatus(bg, session, model.SessionAnalyzing)

	outcome, err := s.analyzer.Analyze(ctx, model.AnalysisRequest{
		SessionID:         session.ID,
		Track:             session.Track,
		Answers:           session.Answers.Clone(),
		DegreePreference:  session.DegreePreference,
		SubjectPreference: session.SubjectPreference,
		CatalogID:         session.CatalogID,
	})
	if err != nil {
		s.setStatus(bg, session, model.SessionAnswering)
		return nil, err
	}

	if _, err := s.reports.Record(bg, session, outcome); err != nil {
		s.log.Error("failed to store report", "session", id, "error", err)
	}
	if err := s.results.Set(bg, id, outcome); err != nil {
		s.log.Warn("failed to cache result", "session", id, "error", err)
	}

	// A fallback leaves the session open so the respondent can retry.
	if outcome.Fallback {
		s.setStatus(bg, session, model.SessionAnswering)
	} else {
		s.setStatus(bg, session, model.SessionCompleted)
	}
	return outcome, nil
}

// stored returns the saved outcome of a completed session, from the cache
// first and then from its report.
func (s *QuizService) stored(ctx context.Context, id string) *model.AnalysisOutcome {
	if outcome, err := s.results.Get(ctx, id); err == nil && outcome != nil {
		outcome.Cached = true
		return outcome
	}

	report, err := s.reports.GetBySession(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrReportNotFound) {
			s.log.Warn("failed to load report", "session", id, "error", err)
		}
		return nil
	}
	return &model.AnalysisOutcome{
		Result:      report.Result,
		Fallback:    report.Fallback,
		FailureNote: report.FailureNote,
		Cached:      true,
	}
}

func (s *QuizService) setStatus(ctx context.Context, session *model.QuizSession, status model.SessionStatus) {
	session.Status = status
	session.UpdatedAt = time.Now().UTC()
	if err := s.sessions.Save(ctx, session); err != nil {
		s.log.Warn("failed to update session status", "session", session.ID, "status", status, "error", err)
	}
}
