package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"wetube_backend/internal/feature/auth/domain/entity"
	"wetube_backend/internal/feature/auth/usecase"
)

// sessionGorm is the SQL fallback for the Redis session store.
type sessionGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure sessionGorm implements SessionRepository.
var _ usecase.SessionRepository = (*sessionGorm)(nil)

// NewSessionGorm creates a new instance of sessionGorm.
func NewSessionGorm(db *gorm.DB) *sessionGorm {
	return &sessionGorm{db: db}
}

// Save inserts or replaces the session row.
func (r *sessionGorm) Save(ctx context.Context, s *entity.Session) error {
	model, err := SessionModelFromEntity(s)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(model).Error
}

// FindByID retrieves an unexpired session by its ID.
func (r *sessionGorm) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	var model SessionModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND expires_at > ?", id, time.Now()).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}
	return model.ToEntity()
}

// Delete removes the session row.
func (r *sessionGorm) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&SessionModel{}, "id = ?", id).Error
}

