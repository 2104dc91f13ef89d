package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	authpkg "github.com/palepusrinivas/guava-adminpanel-sub002/auth"
	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
	"github.com/palepusrinivas/guava-adminpanel-sub002/form"
	"github.com/palepusrinivas/guava-adminpanel-sub002/logging"
)

type authService struct {
	repo       authpkg.Repository
	upstream   authpkg.Authenticator
	policy     authpkg.Policy
	sessionTTL time.Duration
	now        func() time.Time
	log        *zap.Logger
	keys       keyLocks
}

// Option configures the auth service.
type Option func(*authService)

// WithClock overrides the wall clock.
func WithClock(now func() time.Time) Option {
	return func(s *authService) { s.now = now }
}

// NewAuthService constructs an auth.Service.
func NewAuthService(repo authpkg.Repository, upstream authpkg.Authenticator, policy authpkg.Policy, sessionTTL time.Duration, log *zap.Logger, opts ...Option) authpkg.Service {
	s := &authService{
		repo:       repo,
		upstream:   upstream,
		policy:     policy,
		sessionTTL: sessionTTL,
		now:        time.Now,
		log:        log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *authService) Login(ctx context.Context, req authpkg.LoginRequest) (*authpkg.Principal, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := form.Validate(req); err != nil {
		return nil, err
	}
	log := logging.For(ctx, s.log).With(zap.String("action", "admin_login"), zap.String("client", req.ClientKey))

	reserved := false
	lock, err := s.updateLockout(ctx, req.ClientKey, func(l *entity.LoginLockout) {
		reserved = s.policy.Reserve(l, s.now())
	})
	if err != nil {
		return nil, err
	}
	if !reserved {
		log.Warn("login rejected while locked out")
		return nil, &authpkg.LockedError{Until: *lock.LockedUntil}
	}

	token, err := s.upstream.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, authpkg.ErrInvalidCredentials) {
			if _, rerr := s.updateLockout(ctx, req.ClientKey, s.policy.Release); rerr != nil {
				log.Warn("failed to release login attempt", zap.Error(rerr))
			}
			return nil, err
		}
		log.Info("login failed", zap.Int("failed_attempts", lock.FailedAttempts))
		if lock.Locked {
			return nil, &authpkg.LockedError{Until: *lock.LockedUntil}
		}
		return nil, err
	}

	if _, err := s.updateLockout(ctx, req.ClientKey, s.policy.RecordSuccess); err != nil {
		return nil, err
	}

	expiresAt := s.now().Add(s.sessionTTL)
	if exp, ok := authpkg.TokenExpiry(token); ok && exp.Before(expiresAt) {
		expiresAt = exp
	}
	sess, err := s.repo.StoreSession(ctx, &entity.AdminSession{
		ID:            uuid.New(),
		Email:         req.Email,
		UpstreamToken: token,
		ExpiresAt:     expiresAt,
	})
	if err != nil {
		return nil, err
	}
	log.Info("admin logged in", zap.String("session_id", sess.ID.String()))
	return principal(sess), nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return authpkg.ErrSessionExpired
	}
	return s.repo.DeleteSession(ctx, id)
}

func (s *authService) Session(ctx context.Context, sessionID string) (*authpkg.Principal, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, authpkg.ErrSessionExpired
	}
	sess, err := s.repo.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, authpkg.ErrSessionExpired
	}
	if !s.now().Before(sess.ExpiresAt) {
		if err := s.repo.DeleteSession(ctx, id); err != nil {
			logging.For(ctx, s.log).Warn("failed to delete expired session", zap.String("action", "session_expire"), zap.Error(err))
		}
		return nil, authpkg.ErrSessionExpired
	}
	return principal(sess), nil
}

func (s *authService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteExpiredSessions(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logging.For(ctx, s.log).Info("purged expired sessions", zap.String("action", "session_purge"), zap.Int64("count", n))
	}
	return n, nil
}

func (s *authService) LockoutStatus(ctx context.Context, clientKey string) (*authpkg.LockoutStatus, error) {
	lock, err := s.repo.GetLockout(ctx, clientKey)
	if err != nil {
		return nil, err
	}
	if lock == nil {
		lock = &entity.LoginLockout{Key: clientKey}
	}
	now := s.now()
	s.policy.Expire(lock, now)
	return s.policy.Status(lock, now), nil
}

// updateLockout serialises lockout changes of one key inside this process;
// the repository keeps them atomic across processes.
func (s *authService) updateLockout(ctx context.Context, key string, fn func(l *entity.LoginLockout)) (*entity.LoginLockout, error) {
	unlock := s.keys.lock(key)
	defer unlock()
	return s.repo.UpdateLockout(ctx, key, fn)
}

type keyLock struct {
	sync.Mutex
	refs int
}

// keyLocks hands out one mutex per key and forgets it once unused.
type keyLocks struct {
	mu sync.Mutex
	m  map[string]*keyLock
}

func (k *keyLocks) lock(key string) func() {
	k.mu.Lock()
	if k.m == nil {
		k.m = make(map[string]*keyLock)
	}
	l, ok := k.m[key]
	if !ok {
		l = &keyLock{}
		k.m[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.m, key)
		}
		k.mu.Unlock()
	}
}

func principal(sess *entity.AdminSession) *authpkg.Principal {
	return &authpkg.Principal{
		SessionID:     sess.ID.String(),
		Email:         sess.Email,
		Token:         sess.ID.String(),
		ExpiresAt:     sess.ExpiresAt,
		UpstreamToken: sess.UpstreamToken,
	}
}
