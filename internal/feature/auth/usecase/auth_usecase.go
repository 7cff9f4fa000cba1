package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"classifieds_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the bcrypt work factor for new password hashes.
// The value 10 is carried over from the original deployment; changing it only
// affects newly created hashes, existing ones verify regardless.
const bcryptCost = 10

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// Returns ErrEmailAlreadyExists if a user with the same email exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the given email address.
	// Returns ErrUserNotFound if no user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the given ID.
	// Returns ErrUserNotFound if no user exists.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// authUsecase implements the credential and session business logic.
type authUsecase struct {
	users      UserRepository
	sessions   SessionRepository
	sessionTTL time.Duration
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, sessions SessionRepository, sessionTTL time.Duration) *authUsecase {
	return &authUsecase{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// Register creates a new account with a bcrypt-hashed password.
// The email/confirmation checks run first so the user gets the most specific
// form error; the duplicate check here is only the fast path, the unique index
// on users.email is the authoritative guard against concurrent registration.
func (u *authUsecase) Register(ctx context.Context, email, password, confirmPassword string) error {
	if email == "" || password == "" {
		return ErrMissingCredentials
	}
	if password != confirmPassword {
		return ErrPasswordMismatch
	}

	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{Email: email, Password: string(hashed)}
	return u.users.Create(ctx, user)
}

// Login verifies the submitted credentials and returns the matching user.
// It returns ErrUserNotFound for an unknown email and ErrWrongPassword when
// the hash comparison fails. Verification always goes through
// bcrypt.CompareHashAndPassword, never through re-hashing and string equality.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrWrongPassword
	}
	return user, nil
}

// EstablishSession creates a server-side session for the given user and
// returns it. The session principal is the full user row captured now; it is
// not refreshed for the lifetime of the session.
func (u *authUsecase) EstablishSession(ctx context.Context, user *entity.User, userAgent, ipAddress string) (*entity.Session, error) {
	id, err := newSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session id: %w", err)
	}

	now := time.Now()
	session := &entity.Session{
		ID:        id,
		UserID:    user.ID,
		Principal: *user,
		UserAgent: userAgent,
		IPAddress: ipAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(u.sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	return session, nil
}

// CurrentSession resolves a session cookie value to a live session.
// Expired sessions are deleted lazily and reported as ErrSessionNotFound.
func (u *authUsecase) CurrentSession(ctx context.Context, id string) (*entity.Session, error) {
	if id == "" {
		return nil, ErrSessionNotFound
	}
	session, err := u.sessions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.IsExpired() {
		_ = u.sessions.Delete(ctx, id)
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Logout destroys the session with the given ID.
func (u *authUsecase) Logout(ctx context.Context, id string) error {
	return u.sessions.Delete(ctx, id)
}

// newSessionID returns a 64-character hex string from a CSPRNG.
func newSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
