package handler

import (
	"net/http"
	"pathfinder/internal/model"
	"pathfinder/internal/quiz"
	"pathfinder/internal/service"
	"strconv"

	"github.com/gorilla/mux"
)

// QuizHandler handles question and session endpoints
type QuizHandler struct {
	quizSvc *service.QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizSvc *service.QuizService) *QuizHandler {
	return &QuizHandler{quizSvc: quizSvc}
}

// Questions handles GET /v1/questions?track=
//
// @Summary Question schedule of a track
// @Tags quiz
// @Produce json
// @Param track query string true "12 or UG"
// @Success 200 {array} model.Question
// @Failure 400 {object} ErrorResponse
// @Router /questions [get]
func (h *QuizHandler) Questions(w http.ResponseWriter, r *http.Request) {
	track, ok := model.ParseTrack(r.URL.Query().Get("track"))
	if !ok {
		writeError(w, http.StatusBadRequest, service.ErrInvalidTrack.Error())
		return
	}
	writeJSON(w, http.StatusOK, quiz.Questions(track))
}

// Start handles POST /v1/sessions
//
// @Summary Start a quiz session
// @Tags quiz
// @Accept json
// @Produce json
// @Param body body model.StartSessionRequest true "Track and optional preferences"
// @Success 201 {object} model.StartSessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown custom catalog"
// @Router /sessions [post]
func (h *QuizHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req model.StartSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.quizSvc.Start(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Get handles GET /v1/sessions/{id}
//
// @Summary Session with its answers
// @Tags quiz
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} model.QuizSession
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [get]
func (h *QuizHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.quizSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// Answer handles PUT /v1/sessions/{id}/answers/{questionId}
//
// @Summary Record or replace one answer
// @Tags quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param questionId path int true "Question ID"
// @Param body body model.AnswerRequest true "Answer"
// @Success 200 {object} model.QuizSession
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Analysis running"
// @Router /sessions/{id}/answers/{questionId} [put]
func (h *QuizHandler) Answer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	questionID, err := strconv.Atoi(vars["questionId"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid question id")
		return
	}

	var req model.AnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := h.quizSvc.RecordAnswer(r.Context(), vars["id"], questionID, req.Answer)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// Analyze handles POST /v1/sessions/{id}/analyze
//
// @Summary Run the recommendation analysis
// @Description Returns the stored result for a completed session. A model failure yields a labelled fallback result; a timeout yields 504 with retryable set.
// @Tags quiz
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} model.AnalysisOutcome
// @Failure 400 {object} ErrorResponse "Unanswered questions"
// @Failure 409 {object} ErrorResponse "Analysis already running"
// @Failure 504 {object} ErrorResponse "Analysis stuck"
// @Router /sessions/{id}/analyze [post]
func (h *QuizHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.quizSvc.Submit(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}
