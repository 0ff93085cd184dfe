package handler

import (
	"log/slog"
	"net/http"

	"pathfinder/internal/model"
	"pathfinder/internal/subscription"
)

func (h *Handler) handlePlans(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, subscription.Plans)
}

func (h *Handler) handleResults(w http.ResponseWriter, r *http.Request) {
	user := model.UserFromContext(r.Context())
	results, err := h.store.ListResults(user.ID)
	if err != nil {
		slog.Error("failed to list results", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if results == nil {
		results = []model.Result{}
	}
	writeJSON(w, http.StatusOK, results)
}

type subscribeRequest struct {
	PlanID string `json:"planId"`
}

// handleSubscribe activates a plan on the account. Checkout is mocked, so
// the tier switches immediately with status "active".
func (h *Handler) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	plan, ok := subscription.PlanByID(req.PlanID)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown plan: "+req.PlanID)
		return
	}

	user := model.UserFromContext(r.Context())
	if err := h.store.UpdateSubscription(user.ID, string(plan.Tier), "active"); err != nil {
		slog.Error("failed to update subscription", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	updated, err := h.store.GetUserByID(user.ID)
	if err != nil || updated == nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.recordEvent("subscribe", ownerForUser(user))
	writeJSON(w, http.StatusOK, accountView(updated))
}
