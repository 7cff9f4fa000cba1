package usecase

import (
	"context"

	"classifieds_backend/internal/feature/auth/domain/entity"
)

// SessionRepository abstracts the server-side session store.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (platform/session, adapters).
type SessionRepository interface {
	// Create persists a new session to the storage.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its ID (session cookie value).
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// Delete removes a session from storage. Deleting an unknown ID is not
	// an error.
	Delete(ctx context.Context, id string) error
}
