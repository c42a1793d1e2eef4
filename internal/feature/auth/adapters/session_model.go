package adapters

import (
	"encoding/json"
	"fmt"
	"time"

	"wetube_backend/internal/feature/auth/domain/entity"
)

// SessionModel is the GORM model for the sessions table.
type SessionModel struct {
	ID        string    `gorm:"primaryKey;size:64"`
	LoggedIn  bool      `gorm:"not null"`
	UserJSON  string    `gorm:"type:text"` // serialized entity.UserSnapshot
	CreatedAt time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
}

// TableName returns the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}

// ToEntity converts the GORM model to a domain entity.
func (m *SessionModel) ToEntity() (*entity.Session, error) {
	s := &entity.Session{
		ID:        m.ID,
		LoggedIn:  m.LoggedIn,
		CreatedAt: m.CreatedAt,
		ExpiresAt: m.ExpiresAt,
	}
	if m.UserJSON != "" {
		var snap entity.UserSnapshot
		if err := json.Unmarshal([]byte(m.UserJSON), &snap); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session user: %w", err)
		}
		s.User = &snap
	}
	return s, nil
}

// SessionModelFromEntity converts a domain entity to a GORM model.
func SessionModelFromEntity(s *entity.Session) (*SessionModel, error) {
	m := &SessionModel{
		ID:        s.ID,
		LoggedIn:  s.LoggedIn,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}
	if s.User != nil {
		data, err := json.Marshal(s.User)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal session user: %w", err)
		}
		m.UserJSON = string(data)
	}
	return m, nil
}
