package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
)

// Repository persists console sessions and login lockouts.
type Repository interface {
	// GetLockout returns nil, nil when the key has no record.
	GetLockout(ctx context.Context, key string) (*entity.LoginLockout, error)
	// UpdateLockout applies fn to the record of key (a zero record when none
	// exists) and stores the result atomically with respect to other updates
	// of the same key.
	UpdateLockout(ctx context.Context, key string, fn func(l *entity.LoginLockout)) (*entity.LoginLockout, error)

	StoreSession(ctx context.Context, s *entity.AdminSession) (*entity.AdminSession, error)
	// GetSession returns nil, nil when no live record exists.
	GetSession(ctx context.Context, id uuid.UUID) (*entity.AdminSession, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error
	// DeleteExpiredSessions removes sessions that expired before now.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// Authenticator exchanges credentials for an upstream bearer token.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
}
