package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/qri-io/jsonschema"

	"github.com/intervyou/intervyou/internal/models"
	"github.com/intervyou/intervyou/pkg/repository"
)

const maxSessionBody = 1 << 20 // 1MB

type SessionsHandler struct {
	sessionRepo repository.SessionRepo
	schema      *jsonschema.Schema
}

func NewSessionsHandler(sr repository.SessionRepo, schema *jsonschema.Schema) *SessionsHandler {
	return &SessionsHandler{sessionRepo: sr, schema: schema}
}

type createSessionRequest struct {
	Type         string                `json:"type"`
	Level        string                `json:"level"`
	Role         string                `json:"role"`
	Duration     int                   `json:"duration"`
	Score        int                   `json:"score"`
	Feedback     []models.FeedbackItem `json:"feedback"`
	Strengths    []string              `json:"strengths"`
	Improvements []string              `json:"improvements"`
}

func (h *SessionsHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxSessionBody))
	if err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	verrs, err := h.schema.ValidateBytes(r.Context(), body)
	if err != nil {
		http.Error(w, "Invalid json", http.StatusBadRequest)
		return
	}
	if len(verrs) > 0 {
		http.Error(w, fmt.Sprintf("Invalid session: %s", verrs[0].Message), http.StatusBadRequest)
		return
	}

	var req createSessionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	session := models.InterviewSession{
		UserID:       userID,
		Type:         req.Type,
		Level:        req.Level,
		Role:         req.Role,
		Duration:     req.Duration,
		Score:        req.Score,
		Feedback:     req.Feedback,
		Strengths:    req.Strengths,
		Improvements: req.Improvements,
	}

	if _, err := h.sessionRepo.CreateSession(r.Context(), &session); err != nil {
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	writeJSON(w, session, http.StatusCreated)
}

func (h *SessionsHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	q := r.URL.Query()

	// pagination: limit and offset params
	limit := 50
	if l := q.Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 500 {
			limit = v
		}
	}
	offset := 0
	if o := q.Get("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}

	sessions, err := h.sessionRepo.ListPageByUser(r.Context(), userID, limit, offset)
	if err != nil {
		http.Error(w, "Failed to list sessions", http.StatusInternalServerError)
		return
	}

	total, err := h.sessionRepo.CountByUser(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to count sessions", http.StatusInternalServerError)
		return
	}

	if sessions == nil {
		sessions = []models.InterviewSession{}
	}

	resp := map[string]any{
		"total":  total,
		"limit":  limit,
		"offset": offset,
		"items":  sessions,
	}

	writeJSON(w, resp, http.StatusOK)
}

func (h *SessionsHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "Missing id", http.StatusBadRequest)
		return
	}

	session, err := h.sessionRepo.GetSessionByID(r.Context(), userID, id)
	if err != nil {
		http.Error(w, "Failed to load session", http.StatusInternalServerError)
		return
	}
	if session == nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	writeJSON(w, session, http.StatusOK)
}

func (h *SessionsHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "Missing id", http.StatusBadRequest)
		return
	}

	if err := h.sessionRepo.DeleteSessionByID(r.Context(), userID, id); err != nil {
		http.Error(w, "Failed to delete session", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]bool{"ok": true}, http.StatusOK)
}
