package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")

	ErrInvalidTrack       = errors.New("unknown track")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionLocked      = errors.New("session is being analyzed")
	ErrReportNotFound     = errors.New("report not found")
	ErrCatalogNotFound    = errors.New("catalog not found")
	ErrEmptyCatalog       = errors.New("catalog has no programs for this track")
	ErrAIDisabled         = errors.New("gemini API key is not configured")
	ErrMalformedResponse  = errors.New("malformed model response")
	ErrAnalysisInProgress = errors.New("analysis already running for this session")

	// ErrAnalysisStuck is returned when the pipeline exceeds its deadline.
	// Unlike a model failure it carries no fallback result; callers should
	// offer a retry.
	ErrAnalysisStuck = errors.New("analysis deadline exceeded")
)

// StuckMessage is shown to respondents when ErrAnalysisStuck is returned.
const StuckMessage = "The analysis may take a moment, but it seems stuck. Please try again."
