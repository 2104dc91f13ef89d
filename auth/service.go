package auth

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrLockedOut is returned without calling the backend while a lockout is active.
	ErrLockedOut = errors.New("too many failed login attempts, try again later")
	// ErrInvalidCredentials is a login the backend rejected.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrSessionExpired covers unknown, deleted and expired sessions.
	ErrSessionExpired = errors.New("session expired, please log in again")
)

// LoginRequest carries admin credentials. ClientKey identifies the console
// client the lockout applies to.
type LoginRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	ClientKey string `json:"-"`
}

// Principal is a logged-in admin. Token is the console bearer sent by the browser.
type Principal struct {
	SessionID     string    `json:"session_id"`
	Email         string    `json:"email"`
	Token         string    `json:"token"`
	ExpiresAt     time.Time `json:"expires_at"`
	UpstreamToken string    `json:"-"`
}

// LockoutStatus reports the lockout state of a client key.
type LockoutStatus struct {
	Locked            bool       `json:"locked"`
	FailedAttempts    int        `json:"failed_attempts"`
	RemainingAttempts int        `json:"remaining_attempts"`
	LockedUntil       *time.Time `json:"locked_until,omitempty"`
}

// LockedError wraps ErrLockedOut with the expiry.
type LockedError struct {
	Until time.Time
}

func (e *LockedError) Error() string { return ErrLockedOut.Error() }
func (e *LockedError) Unwrap() error { return ErrLockedOut }

// Service provides admin login, logout and session lookup.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*Principal, error)
	Logout(ctx context.Context, sessionID string) error
	Session(ctx context.Context, sessionID string) (*Principal, error)
	LockoutStatus(ctx context.Context, clientKey string) (*LockoutStatus, error)
	// PurgeExpiredSessions deletes expired sessions and their upstream tokens.
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}
