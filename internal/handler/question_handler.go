package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/curious/backend/internal/model"
	"github.com/curious/backend/internal/repository"
	"github.com/curious/backend/internal/service"
	"github.com/curious/backend/pkg/auth"
)

// QuestionHandler exposes question broadcast, listing and answer export.
type QuestionHandler struct {
	questionService service.QuestionService
}

// NewQuestionHandler creates a QuestionHandler with the given service.
func NewQuestionHandler(questionService service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

type broadcastRequest struct {
	Text string `json:"text"`
}

// Broadcast handles POST /api/questions. Creates the question and queues an
// SMS to every contact of the logged-in account.
func (h *QuestionHandler) Broadcast(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req broadcastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	question, err := h.questionService.Broadcast(r.Context(), accountID, req.Text)
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid_question")
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusUnauthorized, "unknown_account")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "broadcast_failed")
	default:
		writeJSON(w, http.StatusCreated, question)
	}
}

type listQuestionsResponse struct {
	Questions []*model.Question `json:"questions"`
}

// List handles GET /api/me/questions, newest first.
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	questions, err := h.questionService.ListByAccount(r.Context(), accountID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if questions == nil {
		questions = []*model.Question{}
	}
	writeJSON(w, http.StatusOK, listQuestionsResponse{Questions: questions})
}

type questionDetailResponse struct {
	Question *model.Question `json:"question"`
	Answers  []*model.Answer `json:"answers"`
}

// ownedQuestion fetches the question and checks the session account owns it.
// On failure it writes the error response and returns nil.
func (h *QuestionHandler) ownedQuestion(w http.ResponseWriter, r *http.Request) *model.Question {
	accountID, ok := auth.AccountIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return nil
	}

	questionID := r.PathValue("id")
	question, err := h.questionService.Get(r.Context(), questionID)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "question_not_found")
		return nil
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "get_failed")
		return nil
	}
	if question.AccountID != accountID {
		// Do not reveal that the question exists
		writeError(w, http.StatusNotFound, "question_not_found")
		return nil
	}
	return question
}

// Get handles GET /api/questions/{id}: the question plus its answers.
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	question := h.ownedQuestion(w, r)
	if question == nil {
		return
	}

	answers, err := h.questionService.ListAnswers(r.Context(), question.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "get_failed")
		return
	}
	if answers == nil {
		answers = []*model.Answer{}
	}
	writeJSON(w, http.StatusOK, questionDetailResponse{Question: question, Answers: answers})
}

// Export handles GET /api/questions/{id}/export. Streams the answers as CSV.
func (h *QuestionHandler) Export(w http.ResponseWriter, r *http.Request) {
	question := h.ownedQuestion(w, r)
	if question == nil {
		return
	}

	var buf bytes.Buffer
	if err := h.questionService.ExportAnswersCSV(r.Context(), question.ID, &buf); err != nil {
		writeError(w, http.StatusInternalServerError, "export_failed")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "answers-"+question.ID+".csv"))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
