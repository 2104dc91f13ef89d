package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	authpkg "github.com/palepusrinivas/guava-adminpanel-sub002/auth"
	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
	"github.com/palepusrinivas/guava-adminpanel-sub002/form"
)

type memRepo struct {
	mu       sync.Mutex
	lockouts map[string]entity.LoginLockout
	sessions map[uuid.UUID]entity.AdminSession
}

func newMemRepo() *memRepo {
	return &memRepo{lockouts: map[string]entity.LoginLockout{}, sessions: map[uuid.UUID]entity.AdminSession{}}
}

func (r *memRepo) GetLockout(ctx context.Context, key string) (*entity.LoginLockout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lockouts[key]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r *memRepo) UpdateLockout(ctx context.Context, key string, fn func(l *entity.LoginLockout)) (*entity.LoginLockout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lockouts[key]
	if !ok {
		l = entity.LoginLockout{Key: key}
	}
	fn(&l)
	r.lockouts[key] = l
	return &l, nil
}

func (r *memRepo) StoreSession(ctx context.Context, s *entity.AdminSession) (*entity.AdminSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = *s
	return s, nil
}

func (r *memRepo) GetSession(ctx context.Context, id uuid.UUID) (*entity.AdminSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *memRepo) DeleteSession(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *memRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, sess := range r.sessions {
		if !now.Before(sess.ExpiresAt) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}

func (r *memRepo) sessionCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

type fakeAuthenticator struct {
	calls    int
	password string
}

func (f *fakeAuthenticator) Authenticate(ctx context.Context, email, password string) (string, error) {
	f.calls++
	if password != f.password {
		return "", authpkg.ErrInvalidCredentials
	}
	return "upstream-token", nil
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newService(repo *memRepo, up *fakeAuthenticator, c *clock) authpkg.Service {
	return NewAuthService(repo, up, authpkg.DefaultPolicy, 24*time.Hour, zap.NewNop(), WithClock(c.now))
}

func login(svc authpkg.Service, password string) (*authpkg.Principal, error) {
	return svc.Login(context.Background(), authpkg.LoginRequest{Email: "Admin@Ride.io", Password: password, ClientKey: "10.0.0.1"})
}

func TestLoginLockoutAfterFiveFailures(t *testing.T) {
	repo := newMemRepo()
	up := &fakeAuthenticator{password: "right"}
	c := &clock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	svc := newService(repo, up, c)

	for i := 0; i < 4; i++ {
		_, err := login(svc, "wrong")
		require.ErrorIs(t, err, authpkg.ErrInvalidCredentials)
	}
	_, err := login(svc, "wrong")
	var locked *authpkg.LockedError
	require.True(t, errors.As(err, &locked))
	assert.Equal(t, c.t.Add(15*time.Minute), locked.Until)

	stored := repo.lockouts["10.0.0.1"]
	assert.True(t, stored.Locked)
	require.NotNil(t, stored.LockedUntil)
	assert.Equal(t, 5, up.calls)

	c.t = c.t.Add(10 * time.Minute)
	_, err = login(svc, "right")
	require.ErrorIs(t, err, authpkg.ErrLockedOut)
	assert.Equal(t, 5, up.calls, "locked attempt must not reach the backend")

	c.t = c.t.Add(5 * time.Minute)
	p, err := login(svc, "right")
	require.NoError(t, err)
	assert.Equal(t, 6, up.calls)
	assert.Equal(t, "admin@ride.io", p.Email)
	assert.Equal(t, 0, repo.lockouts["10.0.0.1"].FailedAttempts)
}

func TestLoginSuccessCreatesSession(t *testing.T) {
	repo := newMemRepo()
	c := &clock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	svc := newService(repo, &fakeAuthenticator{password: "right"}, c)

	p, err := login(svc, "right")
	require.NoError(t, err)
	assert.Equal(t, p.SessionID, p.Token)
	assert.Equal(t, c.t.Add(24*time.Hour), p.ExpiresAt)

	got, err := svc.Session(context.Background(), p.Token)
	require.NoError(t, err)
	assert.Equal(t, "upstream-token", got.UpstreamToken)

	c.t = c.t.Add(25 * time.Hour)
	_, err = svc.Session(context.Background(), p.Token)
	require.ErrorIs(t, err, authpkg.ErrSessionExpired)
}

func TestLogoutDeletesSession(t *testing.T) {
	repo := newMemRepo()
	svc := newService(repo, &fakeAuthenticator{password: "right"}, &clock{t: time.Now()})

	p, err := login(svc, "right")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(context.Background(), p.Token))

	_, err = svc.Session(context.Background(), p.Token)
	require.ErrorIs(t, err, authpkg.ErrSessionExpired)
	_, err = svc.Session(context.Background(), "not-a-uuid")
	require.ErrorIs(t, err, authpkg.ErrSessionExpired)
}

func TestLoginValidatesBeforeCallingBackend(t *testing.T) {
	up := &fakeAuthenticator{password: "right"}
	svc := newService(newMemRepo(), up, &clock{t: time.Now()})

	_, err := svc.Login(context.Background(), authpkg.LoginRequest{Email: "nope", ClientKey: "k"})
	ve, ok := form.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "email")
	assert.Contains(t, ve.Fields, "password")
	assert.Zero(t, up.calls)
}

func TestLockoutStatusExpires(t *testing.T) {
	repo := newMemRepo()
	c := &clock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	svc := newService(repo, &fakeAuthenticator{password: "right"}, c)
	for i := 0; i < 5; i++ {
		_, _ = login(svc, "wrong")
	}

	st, err := svc.LockoutStatus(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, st.Locked)

	c.t = c.t.Add(16 * time.Minute)
	st, err = svc.LockoutStatus(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, st.Locked)
	assert.Equal(t, 5, st.RemainingAttempts)
}

// blockingAuthenticator rejects every password once release is closed.
type blockingAuthenticator struct {
	mu      sync.Mutex
	calls   int
	release chan struct{}
}

func (b *blockingAuthenticator) Authenticate(ctx context.Context, email, password string) (string, error) {
	b.mu.Lock()
	b.calls++
	b.mu.Unlock()
	<-b.release
	return "", authpkg.ErrInvalidCredentials
}

func TestConcurrentFailuresCannotExceedLimit(t *testing.T) {
	repo := newMemRepo()
	up := &blockingAuthenticator{release: make(chan struct{})}
	c := &clock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	svc := NewAuthService(repo, up, authpkg.DefaultPolicy, time.Hour, zap.NewNop(), WithClock(c.now))

	const attempts = 20
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		go func() {
			_, err := login(svc, "wrong")
			results <- err
		}()
	}

	// Everything past the limit is refused without reaching the backend.
	for i := 0; i < attempts-authpkg.DefaultPolicy.MaxAttempts; i++ {
		select {
		case err := <-results:
			require.ErrorIs(t, err, authpkg.ErrLockedOut)
		case <-time.After(5 * time.Second):
			t.Fatal("attempts over the limit were not refused")
		}
	}
	close(up.release)
	for i := 0; i < authpkg.DefaultPolicy.MaxAttempts; i++ {
		require.Error(t, <-results)
	}

	assert.Equal(t, authpkg.DefaultPolicy.MaxAttempts, up.calls)
	stored := repo.lockouts["10.0.0.1"]
	assert.Equal(t, authpkg.DefaultPolicy.MaxAttempts, stored.FailedAttempts)
	assert.True(t, stored.Locked)
}

type downAuthenticator struct{}

func (downAuthenticator) Authenticate(ctx context.Context, email, password string) (string, error) {
	return "", errors.New("dial tcp: connection refused")
}

func TestBackendErrorDoesNotCountAsFailure(t *testing.T) {
	repo := newMemRepo()
	svc := NewAuthService(repo, downAuthenticator{}, authpkg.DefaultPolicy, time.Hour, zap.NewNop())

	for i := 0; i < 7; i++ {
		_, err := login(svc, "whatever")
		require.Error(t, err)
		require.NotErrorIs(t, err, authpkg.ErrLockedOut)
	}
	assert.Equal(t, 0, repo.lockouts["10.0.0.1"].FailedAttempts)
}

func TestExpiredSessionsAreDeleted(t *testing.T) {
	repo := newMemRepo()
	c := &clock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	svc := newService(repo, &fakeAuthenticator{password: "right"}, c)

	first, err := login(svc, "right")
	require.NoError(t, err)
	_, err = login(svc, "right")
	require.NoError(t, err)
	require.Equal(t, 2, repo.sessionCount())

	c.t = c.t.Add(25 * time.Hour)
	_, err = svc.Session(context.Background(), first.Token)
	require.ErrorIs(t, err, authpkg.ErrSessionExpired)
	assert.Equal(t, 1, repo.sessionCount())

	n, err := svc.PurgeExpiredSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Zero(t, repo.sessionCount())
}
