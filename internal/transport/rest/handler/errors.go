package handler

import (
	"context"
	"errors"
	"net/http"
	"pathfinder/internal/quiz"
	"pathfinder/internal/service"
)

// writeServiceError maps service and quiz errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrAnalysisStuck):
		writeJSON(w, http.StatusGatewayTimeout, ErrorResponse{Error: service.StuckMessage, Retryable: true})
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrReportNotFound),
		errors.Is(err, service.ErrCatalogNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidTrack),
		errors.Is(err, quiz.ErrUnknownQuestion),
		errors.Is(err, quiz.ErrInvalidChoice),
		errors.Is(err, quiz.ErrEmptyAnswer),
		errors.Is(err, quiz.ErrIncompleteAnswers):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrSessionLocked),
		errors.Is(err, service.ErrAnalysisInProgress):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error(), Retryable: true})
	case errors.Is(err, service.ErrEmptyCatalog):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, context.Canceled):
		writeError(w, http.StatusServiceUnavailable, "request cancelled")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
