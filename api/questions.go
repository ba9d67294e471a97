package api

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/intervyou/intervyou/internal/interview"
)

const defaultQuestionCount = 5

type QuestionsHandler struct {
	selector *interview.Selector
}

func NewQuestionsHandler(selector *interview.Selector) *QuestionsHandler {
	return &QuestionsHandler{selector: selector}
}

type generateQuestionsRequest struct {
	Type  string `json:"type"`
	Role  string `json:"role"`
	Level string `json:"level"`
	Count int    `json:"count,omitempty"`
}

type generateQuestionsResponse struct {
	Questions []string `json:"questions"`
}

// GenerateQuestions picks up to count unseen questions for the caller. A
// short (or empty) result is valid when the user has already seen the rest
// of the corpus; a failed history read is an error, never an empty history.
func (h *QuestionsHandler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req generateQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Type == "" || req.Role == "" || req.Level == "" {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}
	if req.Count <= 0 {
		req.Count = defaultQuestionCount
	}

	questions, err := h.selector.SelectQuestions(r.Context(), userID, req.Type, req.Role, req.Level, req.Count)
	if err != nil {
		logger.Error("select questions", slog.Int64("user_id", userID), slog.Any("err", err))
		http.Error(w, "Failed to generate questions", http.StatusInternalServerError)
		return
	}

	writeJSON(w, generateQuestionsResponse{Questions: questions}, http.StatusOK)
}

type analyzeAnswerRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// AnalyzeAnswer scores a transcript against its question. The answer may be
// empty; scoring degrades gracefully and never fails.
func (h *QuestionsHandler) AnalyzeAnswer(w http.ResponseWriter, r *http.Request) {
	var req analyzeAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Question == "" {
		http.Error(w, "Missing question", http.StatusBadRequest)
		return
	}

	writeJSON(w, interview.Score(req.Question, req.Answer), http.StatusOK)
}
