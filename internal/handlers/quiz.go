package handlers

import (
	"encoding/json"
	"net/http"

	"learnbuddy-backend/internal/models"
	"learnbuddy-backend/internal/services"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

func (h *QuizHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.GetQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	resp, err := h.quizService.GetQuestion(r.Context(), req.Email, req.Chapter)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *QuizHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	resp, err := h.quizService.SubmitAnswer(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *QuizHandler) SolveQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	resp, err := h.quizService.SolveQuestion(r.Context(), req.Chapter, req.Question)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *QuizHandler) ChatSolve(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	resp, err := h.quizService.ChatSolve(r.Context(), req.Question)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	// Routing failures ride a 200 with status "error" so the client can show
	// them inline in the chat.
	writeJSON(w, http.StatusOK, resp)
}
