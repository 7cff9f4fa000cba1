package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"classifieds_backend/internal/feature/auth/domain/entity"
	"classifieds_backend/internal/feature/auth/usecase"
)

// sessionPostgres is a Postgres implementation of the SessionRepository
// interface, used as the fallback when Redis is unavailable.
type sessionPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure sessionPostgres implements SessionRepository.
var _ usecase.SessionRepository = (*sessionPostgres)(nil)

// NewSessionPostgres creates a new instance of sessionPostgres.
func NewSessionPostgres(db *gorm.DB) *sessionPostgres {
	return &sessionPostgres{db: db}
}

// Create persists a new session to the database.
func (r *sessionPostgres) Create(ctx context.Context, session *entity.Session) error {
	model := SessionModelFromEntity(session)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID retrieves a session by its cookie value.
// Unlike Redis, Postgres has no TTL; expiry is enforced by the caller via
// Session.IsExpired, this method only reports what is stored.
func (r *sessionPostgres) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	var model SessionModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// Delete removes a session row. Deleting an unknown ID is a no-op.
func (r *sessionPostgres) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&SessionModel{}).Error
}
