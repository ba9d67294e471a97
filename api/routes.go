package api

import (
	"fmt"

	"github.com/gorilla/mux"

	"github.com/intervyou/intervyou/internal/config"
	"github.com/intervyou/intervyou/internal/db"
	"github.com/intervyou/intervyou/internal/interview"
	"github.com/intervyou/intervyou/internal/repository/sqlite"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, database *db.DB) (*mux.Router, error) {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware(cfg.CORSOrigin))
	r.Use(RecoveryMiddleware)

	// Repository
	repo := sqlite.New(database)

	// Question corpus and session payload schema are static; load them once.
	pool, err := interview.LoadPool()
	if err != nil {
		return nil, fmt.Errorf("load question pool: %w", err)
	}
	sessionSchema, err := LoadSessionSchema()
	if err != nil {
		return nil, fmt.Errorf("load session schema: %w", err)
	}

	selector := interview.NewSelector(pool, repo)

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(repo, cfg.JWTSecret, cfg.TokenDuration)
	questionsHandler := NewQuestionsHandler(selector)
	sessionsHandler := NewSessionsHandler(repo, sessionSchema)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/v1/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/v1/auth/login", authHandler.Login).Methods("POST")

	// API v1 Protected routes
	apiV1 := r.PathPrefix("/v1").Subrouter()
	apiV1.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))

	// Auth endpoints
	apiV1.HandleFunc("/auth/me", authHandler.Me).Methods("GET")

	// Question generation and answer analysis
	apiV1.HandleFunc("/ai/generate-questions", questionsHandler.GenerateQuestions).Methods("POST")
	apiV1.HandleFunc("/ai/analyze-answer", questionsHandler.AnalyzeAnswer).Methods("POST")

	// Session endpoints
	apiV1.HandleFunc("/sessions", sessionsHandler.CreateSession).Methods("POST")
	apiV1.HandleFunc("/sessions", sessionsHandler.ListSessions).Methods("GET")
	apiV1.HandleFunc("/sessions/{id}", sessionsHandler.GetSession).Methods("GET")
	apiV1.HandleFunc("/sessions/{id}", sessionsHandler.DeleteSession).Methods("DELETE")

	return r, nil
}
