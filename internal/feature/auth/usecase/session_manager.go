package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"wetube_backend/internal/feature/auth/domain/entity"
)

const (
	// defaultSessionTTL applies when the configured TTL is not positive.
	defaultSessionTTL = 14 * 24 * time.Hour

	sessionIDBytes = 32
)

// SessionManager binds authenticated users to sessions.
type SessionManager struct {
	sessions SessionRepository
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionManager creates a SessionManager storing sessions for ttl.
func NewSessionManager(sessions SessionRepository, ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionManager{sessions: sessions, ttl: ttl, now: time.Now}
}

// New returns an anonymous session that has not been persisted yet.
func (m *SessionManager) New() (*entity.Session, error) {
	buf := make([]byte, sessionIDBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate session id: %w", err)
	}
	now := m.now()
	return &entity.Session{
		ID:        hex.EncodeToString(buf),
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}, nil
}

// Load returns the stored session with id, or a new anonymous session when none is usable.
func (m *SessionManager) Load(ctx context.Context, id string) (*entity.Session, error) {
	if id == "" {
		return m.New()
	}
	s, err := m.sessions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return m.New()
		}
		return nil, err
	}
	if s.IsExpired() {
		return m.New()
	}
	return s, nil
}

// Establish marks the session as logged in with a snapshot of user and persists it.
func (m *SessionManager) Establish(ctx context.Context, s *entity.Session, user *entity.User) error {
	s.LoggedIn = true
	s.User = user.Snapshot()
	s.ExpiresAt = m.now().Add(m.ttl)
	return m.sessions.Save(ctx, s)
}

// Refresh replaces the user snapshot after the stored user changed.
func (m *SessionManager) Refresh(ctx context.Context, s *entity.Session, user *entity.User) error {
	if !s.IsAuthenticated() {
		return nil
	}
	s.User = user.Snapshot()
	return m.sessions.Save(ctx, s)
}

// Destroy deletes the session and clears its authentication state.
func (m *SessionManager) Destroy(ctx context.Context, s *entity.Session) error {
	s.LoggedIn = false
	s.User = nil
	return m.sessions.Delete(ctx, s.ID)
}
