package handler

import (
	"net/http"
	"pathfinder/internal/service"
	"pathfinder/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
)

// ReportHandler handles report endpoints
type ReportHandler struct {
	reportSvc *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportSvc *service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// GetBySession handles GET /v1/sessions/{id}/report
//
// @Summary Stored report of a session
// @Tags quiz
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} model.Report
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/report [get]
func (h *ReportHandler) GetBySession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]
	if middleware.GetSessionID(r.Context()) != sessionID {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	report, err := h.reportSvc.GetBySession(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}
