// Package handler implements the JSON HTTP API: quiz flow, accounts,
// subscription management, and the analysis endpoints.
package handler

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pathfinder/internal/llm/prompts"
	"pathfinder/internal/model"
	"pathfinder/internal/quiz"
	"pathfinder/internal/store"
)

// AnalysisService is the slice of the LLM client the handlers need.
type AnalysisService interface {
	Analyze(ctx context.Context, variant prompts.Variant, profile string, maxSuggestions int) (*model.FullAnalysis, error)
	CompareCareers(ctx context.Context, profile string, careers []string) ([]model.CareerComparison, error)
	Testimonial(ctx context.Context, archetype, career string) (string, error)
	LearningPath(ctx context.Context, archetype, career string, skills []string) ([]model.LearningStep, error)
	InterviewQuestions(ctx context.Context, archetype, career string, growthAreas []string) ([]model.InterviewQuestion, error)
	Simulate(ctx context.Context, archetype, career string, growthAreas []string) (*model.CareerSimulation, error)
}

// Handler holds shared dependencies for HTTP handlers.
type Handler struct {
	store    *store.Store
	analysis AnalysisService
	bank     quiz.Bank
	config   model.AppConfig
}

// New creates a new Handler serving the built-in question bank.
func New(s *store.Store, a AnalysisService, cfg model.AppConfig) (*Handler, error) {
	return &Handler{store: s, analysis: a, bank: quiz.DefaultBank(), config: cfg}, nil
}

// Routes registers all HTTP routes.
func (h *Handler) Routes(r chi.Router) {
	r.Use(h.withUser)

	r.Post("/api/register", h.handleRegister)
	r.Post("/api/login", h.handleLogin)
	r.Post("/api/logout", h.handleLogout)
	r.Get("/api/plans", h.handlePlans)

	r.Get("/api/quiz", h.handleQuizResume)
	r.Post("/api/quiz/start", h.handleQuizStart)
	r.Post("/api/quiz/answer", h.handleQuizAnswer)
	r.Post("/api/quiz/next", h.handleQuizNext)
	r.Post("/api/quiz/restart", h.handleQuizRestart)

	r.Post("/api/analysis", h.handleAnalysis)
	r.Post("/api/analysis/compare", h.handleCompare)
	r.Post("/api/analysis/testimonial", h.handleTestimonial)
	r.Post("/api/analysis/learning-path", h.handleLearningPath)
	r.Post("/api/analysis/interview", h.handleInterview)
	r.Post("/api/analysis/simulation", h.handleSimulation)

	r.Group(func(r chi.Router) {
		r.Use(h.requireAuth)
		r.Get("/api/me", h.handleMe)
		r.Get("/api/results", h.handleResults)
		r.Post("/api/subscribe", h.handleSubscribe)
	})
}

const (
	sessionCookieName = "session"
	ownerCookieName   = "quiz_owner"
)

// withUser attaches the authenticated user to the request context when a
// valid session cookie is present. Requests without one pass through
// unauthenticated; individual routes decide whether that is acceptable.
func (h *Handler) withUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		authSess, err := h.store.GetAuthSession(cookie.Value)
		if err != nil {
			slog.Error("failed to get auth session", "error", err)
			next.ServeHTTP(w, r)
			return
		}
		if authSess == nil {
			next.ServeHTTP(w, r)
			return
		}

		user, err := h.store.GetUserByID(authSess.UserID)
		if err != nil || user == nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := model.ContextWithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAuth rejects requests that did not resolve to a user.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if model.UserFromContext(r.Context()) == nil {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ownerKey resolves the quiz-state owner for this request. Logged-in users
// own their state by account id; anonymous visitors get a random token in a
// long-lived cookie, minted on first use when create is true.
func (h *Handler) ownerKey(w http.ResponseWriter, r *http.Request, create bool) (string, error) {
	if user := model.UserFromContext(r.Context()); user != nil {
		return ownerForUser(user), nil
	}

	cookie, err := r.Cookie(ownerCookieName)
	if err == nil && cookie.Value != "" {
		return "anon:" + cookie.Value, nil
	}
	if !create {
		return "", nil
	}

	token, err := generateOwnerToken()
	if err != nil {
		return "", fmt.Errorf("generate owner token: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     ownerCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.config.SecureCookies,
	})
	return "anon:" + token, nil
}

func ownerForUser(u *model.User) string {
	return fmt.Sprintf("user:%d", u.ID)
}

func generateOwnerToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// recordEvent logs an analytics event without ever failing the request.
func (h *Handler) recordEvent(name, owner string) {
	if err := h.store.RecordEvent(name, owner); err != nil {
		slog.Warn("failed to record event", "event", name, "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON reads a request body into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
