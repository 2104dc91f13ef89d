package auth

import (
	"time"

	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
)

// Policy is the failed-login backoff: MaxAttempts consecutive failures lock the
// client key for Window.
type Policy struct {
	MaxAttempts int
	Window      time.Duration
}

// DefaultPolicy locks after five failures for fifteen minutes.
var DefaultPolicy = Policy{MaxAttempts: 5, Window: 15 * time.Minute}

// Expire clears a lockout whose expiry has passed. It reports whether l changed.
func (p Policy) Expire(l *entity.LoginLockout, now time.Time) bool {
	if !l.Locked || l.LockedUntil == nil || now.Before(*l.LockedUntil) {
		return false
	}
	l.Locked = false
	l.LockedUntil = nil
	l.FailedAttempts = 0
	return true
}

// IsLocked reports whether attempts are rejected at now.
func (p Policy) IsLocked(l *entity.LoginLockout, now time.Time) bool {
	return l.Locked && l.LockedUntil != nil && now.Before(*l.LockedUntil)
}

// RecordFailure counts one failed attempt and locks once the limit is reached.
func (p Policy) RecordFailure(l *entity.LoginLockout, now time.Time) {
	l.FailedAttempts++
	if l.FailedAttempts >= p.MaxAttempts {
		until := now.Add(p.Window)
		l.Locked = true
		l.LockedUntil = &until
	}
}

// Reserve counts an attempt before it is checked, so concurrent attempts can
// never exceed MaxAttempts. It reports false while the key is locked.
func (p Policy) Reserve(l *entity.LoginLockout, now time.Time) bool {
	p.Expire(l, now)
	if p.IsLocked(l, now) {
		return false
	}
	p.RecordFailure(l, now)
	return true
}

// Release gives back a reserved attempt the backend never judged.
func (p Policy) Release(l *entity.LoginLockout) {
	if l.FailedAttempts > 0 {
		l.FailedAttempts--
	}
	if l.Locked && l.FailedAttempts < p.MaxAttempts {
		l.Locked = false
		l.LockedUntil = nil
	}
}

// RecordSuccess resets the counter.
func (p Policy) RecordSuccess(l *entity.LoginLockout) {
	l.FailedAttempts = 0
	l.Locked = false
	l.LockedUntil = nil
}

// Status summarises l at now.
func (p Policy) Status(l *entity.LoginLockout, now time.Time) *LockoutStatus {
	s := &LockoutStatus{FailedAttempts: l.FailedAttempts}
	s.Locked = p.IsLocked(l, now)
	if s.Locked {
		until := *l.LockedUntil
		s.LockedUntil = &until
	}
	s.RemainingAttempts = p.MaxAttempts - l.FailedAttempts
	if s.RemainingAttempts < 0 || s.Locked {
		s.RemainingAttempts = 0
	}
	return s
}
