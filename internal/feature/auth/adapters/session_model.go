package adapters

import (
	"time"

	"classifieds_backend/internal/feature/auth/domain/entity"
)

// SessionModel is the GORM model for the sessions table. It is only used when
// Redis is unavailable and sessions fall back to Postgres.
//
// The principal columns duplicate the owning user row on purpose: the session
// carries the user snapshot captured at login, it does not join back to users.
type SessionModel struct {
	ID               string    `gorm:"primaryKey;size:64"`
	UserID           uint      `gorm:"index;not null"`
	PrincipalEmail   string    `gorm:"size:255;not null"`
	PrincipalHash    string    `gorm:"size:255;not null"`
	PrincipalCreated time.Time `gorm:"not null"`
	PrincipalUpdated time.Time `gorm:"not null"`
	UserAgent        string    `gorm:"size:512"`
	IPAddress        string    `gorm:"size:45"` // IPv6 max length
	CreatedAt        time.Time `gorm:"not null"`
	ExpiresAt        time.Time `gorm:"index;not null"`
}

// TableName returns the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}

// ToEntity converts the GORM model to a domain entity.
func (m *SessionModel) ToEntity() *entity.Session {
	return &entity.Session{
		ID:     m.ID,
		UserID: m.UserID,
		Principal: entity.User{
			ID:        m.UserID,
			Email:     m.PrincipalEmail,
			Password:  m.PrincipalHash,
			CreatedAt: m.PrincipalCreated,
			UpdatedAt: m.PrincipalUpdated,
		},
		UserAgent: m.UserAgent,
		IPAddress: m.IPAddress,
		CreatedAt: m.CreatedAt,
		ExpiresAt: m.ExpiresAt,
	}
}

// SessionModelFromEntity converts a domain entity to a GORM model.
func SessionModelFromEntity(s *entity.Session) *SessionModel {
	return &SessionModel{
		ID:               s.ID,
		UserID:           s.UserID,
		PrincipalEmail:   s.Principal.Email,
		PrincipalHash:    s.Principal.Password,
		PrincipalCreated: s.Principal.CreatedAt,
		PrincipalUpdated: s.Principal.UpdatedAt,
		UserAgent:        s.UserAgent,
		IPAddress:        s.IPAddress,
		CreatedAt:        s.CreatedAt,
		ExpiresAt:        s.ExpiresAt,
	}
}
