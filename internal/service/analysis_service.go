package service

import (
	"context"
	"errors"
	"fmt"
	"pathfinder/internal/catalog"
	"pathfinder/internal/engine"
	"pathfinder/internal/logger"
	"pathfinder/internal/metrics"
	"pathfinder/internal/model"
	"pathfinder/internal/quiz"
	"time"
)

// AnalysisService runs the recommendation pipeline:
// calibrate, extract, merge, scout, narrate, repair.
type AnalysisService struct {
	extractor      Extractor
	narrator       Narrator
	catalogs       CatalogSource
	broadcaster    Broadcaster
	timeout        time.Duration
	candidateLimit int
	log            *logger.Logger
}

func NewAnalysisService(extractor Extractor, narrator Narrator, catalogs CatalogSource, timeout time.Duration, candidateLimit int, log *logger.Logger) *AnalysisService {
	if candidateLimit < 1 {
		candidateLimit = engine.DefaultCandidateLimit
	}
	return &AnalysisService{
		extractor:      extractor,
		narrator:       narrator,
		catalogs:       catalogs,
		broadcaster:    noopBroadcaster{},
		timeout:        timeout,
		candidateLimit: candidateLimit,
		log:            log.With("component", "analysis"),
	}
}

// SetBroadcaster sets the progress event sink
func (s *AnalysisService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// run is the state of one analysis.
type run struct {
	req      model.AnalysisRequest
	catalog  *catalog.Catalog
	programs []catalog.Program
	prefs    engine.Preferences
	calib    engine.Vector
}

// Analyze runs the pipeline for req under the configured deadline. A model
// failure yields a fallback outcome, not an error. Errors are
// ErrAnalysisStuck on deadline, ErrEmptyCatalog when there is nothing to
// rank, catalog lookup failures, or the caller's own cancellation.
func (s *AnalysisService) Analyze(ctx context.Context, req model.AnalysisRequest) (*model.AnalysisOutcome, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	r, err := s.prepare(ctx, req)
	if err != nil {
		if errors.Is(err, ErrEmptyCatalog) {
			metrics.RecordAnalysis(string(req.Track), metrics.OutcomeEmpty, time.Since(start))
		}
		return nil, err
	}
	log := s.log.With("session", req.SessionID, "track", req.Track, "catalog", req.CatalogID)

	s.emit(req.SessionID, model.StageStarted, fmt.Sprintf("%d programs", len(r.programs)))
	r.calib = engine.Calibrate(req.Answers)
	s.emit(req.SessionID, model.StageCalibrated, fmt.Sprintf("%d traits from choices", len(r.calib)))

	transcript := quiz.Transcript(req.Track, req.Answers)
	profile, err := s.extractor.Extract(ctx, transcript, req.Track)
	if err != nil {
		return s.fail(ctx, r, start, "extract", err, log)
	}
	s.emit(req.SessionID, model.StageExtracted, fmt.Sprintf("%d traits, %d keywords", len(profile.Traits), len(profile.Keywords)))

	merged := engine.Merge(r.calib, profile.Vector())
	ranked := engine.Scout(merged, profile.Keywords, r.programs, r.prefs)
	s.emit(req.SessionID, model.StageScouted, fmt.Sprintf("%d candidates ranked", len(ranked)))

	result, err := s.narrator.Narrate(ctx, NarrativeRequest{
		Track:             req.Track,
		Transcript:        transcript,
		Candidates:        engine.TopCandidates(ranked, s.candidateLimit),
		DegreePreference:  r.prefs.Degree,
		SubjectPreference: r.prefs.Subject,
		CustomCatalog:     req.CatalogID != "",
	})
	if err != nil {
		return s.fail(ctx, r, start, "narrate", err, log)
	}
	s.emit(req.SessionID, model.StageNarrated, "")

	engine.Repair(result, ranked, r.catalog)

	s.emit(req.SessionID, model.StageCompleted, result.Archetype.Title)
	if req.SessionID != "" {
		s.broadcaster.DisconnectSession(req.SessionID)
	}
	metrics.RecordAnalysis(string(req.Track), metrics.OutcomeCompleted, time.Since(start))
	log.Info("analysis completed", "duration", time.Since(start), "top", result.Recommendations[0].CourseName)
	return &model.AnalysisOutcome{Result: result}, nil
}

func (s *AnalysisService) prepare(ctx context.Context, req model.AnalysisRequest) (*run, error) {
	c, err := s.catalogs.Resolve(ctx, req.CatalogID)
	if err != nil {
		return nil, err
	}

	programs := c.Programs(req.Track)
	if req.CatalogID != "" {
		programs = c.Eligible()
	}
	if len(programs) == 0 {
		return nil, ErrEmptyCatalog
	}

	return &run{
		req:      req,
		catalog:  c,
		programs: programs,
		prefs: engine.Preferences{
			Degree:  req.DegreePreference,
			Subject: req.SubjectPreference,
		},
	}, nil
}

// fail turns a model failure into a fallback outcome, unless the failure was
// the deadline or the caller going away.
func (s *AnalysisService) fail(ctx context.Context, r *run, start time.Time, stage string, cause error, log *logger.Logger) (*model.AnalysisOutcome, error) {
	track := string(r.req.Track)
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		log.Warn("analysis stuck", "stage", stage, "error", cause)
		s.emit(r.req.SessionID, model.StageStuck, StuckMessage)
		metrics.RecordAnalysis(track, metrics.OutcomeStuck, time.Since(start))
		return nil, ErrAnalysisStuck
	case ctx.Err() != nil:
		return nil, ctx.Err()
	}

	log.Error("model call failed, serving fallback", "stage", stage, "error", cause)
	result := FallbackResult(r.req.Track, cause.Error())
	ranked := engine.Scout(engine.Merge(r.calib, nil), nil, r.programs, r.prefs)
	engine.Repair(result, ranked, r.catalog)

	s.emit(r.req.SessionID, model.StageFallback, cause.Error())
	metrics.RecordAnalysis(track, metrics.OutcomeFallback, time.Since(start))
	return &model.AnalysisOutcome{
		Result:      result,
		Fallback:    true,
		FailureNote: fmt.Sprintf("%s: %v", stage, cause),
	}, nil
}

func (s *AnalysisService) emit(sessionID string, stage model.AnalysisStage, detail string) {
	if sessionID == "" {
		return
	}
	s.broadcaster.BroadcastToSession(sessionID, MsgProgress, model.ProgressEvent{
		SessionID: sessionID,
		Stage:     stage,
		Detail:    detail,
	})
}
