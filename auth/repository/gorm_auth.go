package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authpkg "github.com/palepusrinivas/guava-adminpanel-sub002/auth"
	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
)

// GormAuthRepo implements auth.Repository using GORM.
type GormAuthRepo struct {
	db *gorm.DB
}

func NewGormAuthRepo(db *gorm.DB) authpkg.Repository {
	return &GormAuthRepo{db: db}
}

func (r *GormAuthRepo) GetLockout(ctx context.Context, key string) (*entity.LoginLockout, error) {
	var l entity.LoginLockout
	if err := r.db.WithContext(ctx).First(&l, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

// UpdateLockout runs fn inside a transaction holding the row lock of key.
func (r *GormAuthRepo) UpdateLockout(ctx context.Context, key string, fn func(l *entity.LoginLockout)) (*entity.LoginLockout, error) {
	var l entity.LoginLockout
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// the row must exist before it can be locked
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).Create(&entity.LoginLockout{Key: key}).Error; err != nil {
			return err
		}
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&l, "key = ?", key).Error; err != nil {
			return err
		}
		fn(&l)
		return tx.Save(&l).Error
	})
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *GormAuthRepo) StoreSession(ctx context.Context, s *entity.AdminSession) (*entity.AdminSession, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (r *GormAuthRepo) GetSession(ctx context.Context, id uuid.UUID) (*entity.AdminSession, error) {
	var s entity.AdminSession
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// DeleteSession removes the row for good so the upstream token is not kept.
func (r *GormAuthRepo) DeleteSession(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&entity.AdminSession{}, "id = ?", id).Error
}

func (r *GormAuthRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Unscoped().Delete(&entity.AdminSession{}, "expires_at <= ?", now)
	return res.RowsAffected, res.Error
}
