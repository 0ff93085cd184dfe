package model

import (
	"context"
	"time"
)

// User represents a registered account.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	Tier         string // subscription tier; empty means free
	TierStatus   string // active, canceled, past_due, trialing; empty means none
	TestsTaken   int
	CreatedAt    time.Time
}

// AuthSession represents an authentication session.
type AuthSession struct {
	ID        string
	UserID    int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

type userCtxKey struct{}

// ContextWithUser stores a user in the request context.
func ContextWithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, u)
}

// UserFromContext retrieves the authenticated user from context, or nil.
func UserFromContext(ctx context.Context) *User {
	u, _ := ctx.Value(userCtxKey{}).(*User)
	return u
}

// AppConfig holds runtime parameters set via CLI flags.
type AppConfig struct {
	SecureCookies bool   // Set Secure flag on cookies (disable for local dev)
	DefaultDepth  string // Analysis depth for anonymous callers (basic, full)
	LLMTimeout    time.Duration
}
