package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	appI18n "pathfinder/internal/i18n"
	"pathfinder/internal/llm/prompts"
	"pathfinder/internal/model"
	"pathfinder/internal/subscription"
)

type analysisRequest struct {
	Profile string `json:"profile"`
}

func (h *Handler) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	var req analysisRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Profile) == "" {
		writeError(w, http.StatusBadRequest, "profile is required")
		return
	}

	user := model.UserFromContext(r.Context())
	access := subscription.Access(user)

	variant := prompts.VariantBasic
	if access.DetailedCareerInfo {
		variant = prompts.VariantFull
	}
	if user == nil && prompts.IsValidVariant(h.config.DefaultDepth) {
		variant = prompts.Variant(h.config.DefaultDepth)
	}

	ctx, cancel := h.llmContext(r)
	defer cancel()

	analysis, err := h.analysis.Analyze(ctx, variant, req.Profile, access.MaxCareerSuggestions)
	if err != nil {
		slog.Error("analysis failed", "error", err)
		writeError(w, http.StatusBadGateway, "analysis failed")
		return
	}

	owner, _ := h.ownerKey(w, r, false)
	h.recordEvent("analysis_requested", owner)

	if user != nil {
		if _, err := h.store.SaveResult(user.ID, analysis.Archetype.Name, *analysis); err != nil {
			slog.Error("failed to save result", "user_id", user.ID, "error", err)
		}
	}

	writeJSON(w, http.StatusOK, analysis)
}

type compareRequest struct {
	Profile string   `json:"profile"`
	Careers []string `json:"careers"`
}

func (h *Handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	if !h.requireFeature(w, r, func(a subscription.FeatureAccess) bool { return a.CareerComparison }) {
		return
	}

	var req compareRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Careers) < 2 {
		writeError(w, http.StatusBadRequest, "at least two careers are required")
		return
	}

	ctx, cancel := h.llmContext(r)
	defer cancel()

	comparisons, err := h.analysis.CompareCareers(ctx, req.Profile, req.Careers)
	if err != nil {
		slog.Error("career comparison failed", "error", err)
		writeError(w, http.StatusBadGateway, "career comparison failed")
		return
	}
	writeJSON(w, http.StatusOK, comparisons)
}

type careerRequest struct {
	Archetype   string   `json:"archetype"`
	Career      string   `json:"career"`
	Skills      []string `json:"skills,omitempty"`
	GrowthAreas []string `json:"growthAreas,omitempty"`
}

func (req careerRequest) validate() string {
	if strings.TrimSpace(req.Archetype) == "" {
		return "archetype is required"
	}
	if strings.TrimSpace(req.Career) == "" {
		return "career is required"
	}
	return ""
}

func (h *Handler) handleTestimonial(w http.ResponseWriter, r *http.Request) {
	if !h.requireFeature(w, r, func(a subscription.FeatureAccess) bool { return a.DetailedCareerInfo }) {
		return
	}

	req, ok := decodeCareerRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.llmContext(r)
	defer cancel()

	text, err := h.analysis.Testimonial(ctx, req.Archetype, req.Career)
	if err != nil {
		slog.Error("testimonial failed", "error", err)
		writeError(w, http.StatusBadGateway, "testimonial failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"testimonial": text})
}

func (h *Handler) handleLearningPath(w http.ResponseWriter, r *http.Request) {
	if !h.requireFeature(w, r, func(a subscription.FeatureAccess) bool { return a.LearningPaths }) {
		return
	}

	req, ok := decodeCareerRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.llmContext(r)
	defer cancel()

	steps, err := h.analysis.LearningPath(ctx, req.Archetype, req.Career, req.Skills)
	if err != nil {
		slog.Error("learning path failed", "error", err)
		writeError(w, http.StatusBadGateway, "learning path failed")
		return
	}
	writeJSON(w, http.StatusOK, steps)
}

func (h *Handler) handleInterview(w http.ResponseWriter, r *http.Request) {
	if !h.requireFeature(w, r, func(a subscription.FeatureAccess) bool { return a.InterviewPrep }) {
		return
	}

	req, ok := decodeCareerRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.llmContext(r)
	defer cancel()

	questions, err := h.analysis.InterviewQuestions(ctx, req.Archetype, req.Career, req.GrowthAreas)
	if err != nil {
		slog.Error("interview prep failed", "error", err)
		writeError(w, http.StatusBadGateway, "interview prep failed")
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

func (h *Handler) handleSimulation(w http.ResponseWriter, r *http.Request) {
	if !h.requireFeature(w, r, func(a subscription.FeatureAccess) bool { return a.CareerSimulation }) {
		return
	}

	req, ok := decodeCareerRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.llmContext(r)
	defer cancel()

	sim, err := h.analysis.Simulate(ctx, req.Archetype, req.Career, req.GrowthAreas)
	if err != nil {
		slog.Error("career simulation failed", "error", err)
		writeError(w, http.StatusBadGateway, "career simulation failed")
		return
	}
	writeJSON(w, http.StatusOK, sim)
}

// requireFeature enforces the plan gate for premium analysis endpoints,
// writing the paywall response itself when access is denied.
func (h *Handler) requireFeature(w http.ResponseWriter, r *http.Request, allowed func(subscription.FeatureAccess) bool) bool {
	user := model.UserFromContext(r.Context())
	if !allowed(subscription.Access(user)) {
		writeError(w, http.StatusForbidden, appI18n.T(r.Context(), "FeatureLocked"))
		return false
	}
	return true
}

func decodeCareerRequest(w http.ResponseWriter, r *http.Request) (careerRequest, bool) {
	var req careerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return req, false
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return req, false
	}
	return req, true
}

// llmContext bounds an analysis call by the configured timeout. The
// caller's context still applies, so closing the connection cancels the
// request either way.
func (h *Handler) llmContext(r *http.Request) (context.Context, context.CancelFunc) {
	if h.config.LLMTimeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), h.config.LLMTimeout)
}
