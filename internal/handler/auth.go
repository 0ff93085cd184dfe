package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	appI18n "pathfinder/internal/i18n"
	"pathfinder/internal/model"
	"pathfinder/internal/subscription"
)

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// accountPayload is the account view returned by register, login, me, and
// subscribe. It never carries the password hash.
type accountPayload struct {
	ID         int64                      `json:"id"`
	Email      string                     `json:"email"`
	Name       string                     `json:"name"`
	Tier       subscription.Tier          `json:"tier"`
	TestsTaken int                        `json:"testsTaken"`
	Access     subscription.FeatureAccess `json:"access"`
}

func accountView(u *model.User) accountPayload {
	return accountPayload{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Tier:       subscription.CurrentTier(u),
		TestsTaken: u.TestsTaken,
		Access:     subscription.Access(u),
	}
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		writeError(w, http.StatusBadRequest, "a valid email is required")
		return
	}
	if len(req.Password) < 8 {
		writeError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	existing, err := h.store.GetUserByEmail(req.Email)
	if err != nil {
		slog.Error("failed to check email", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if existing != nil {
		writeError(w, http.StatusConflict, appI18n.T(r.Context(), "EmailTaken"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = req.Email
	}

	id, err := h.store.CreateUser(model.User{
		Email:        req.Email,
		Name:         name,
		PasswordHash: string(hash),
	})
	if err != nil {
		slog.Error("failed to create user", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	user, err := h.store.GetUserByID(id)
	if err != nil || user == nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if err := h.signIn(w, user); err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.recordEvent("signup", ownerForUser(user))
	writeJSON(w, http.StatusCreated, accountView(user))
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.store.GetUserByEmail(strings.TrimSpace(req.Email))
	if err != nil {
		slog.Error("failed to get user", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if user == nil {
		writeError(w, http.StatusUnauthorized, appI18n.T(r.Context(), "LoginError"))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, appI18n.T(r.Context(), "LoginError"))
		return
	}

	if err := h.signIn(w, user); err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.recordEvent("login", ownerForUser(user))
	writeJSON(w, http.StatusOK, accountView(user))
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookieName)
	if err == nil && cookie.Value != "" {
		_ = h.store.DeleteAuthSession(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.config.SecureCookies,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, accountView(model.UserFromContext(r.Context())))
}

// signIn creates an auth session and sets the cookie.
func (h *Handler) signIn(w http.ResponseWriter, user *model.User) error {
	token, err := h.store.CreateAuthSession(user.ID)
	if err != nil {
		slog.Error("failed to create auth session", "error", err)
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.config.SecureCookies,
	})
	return nil
}
