package usecase

import (
	"context"

	"wetube_backend/internal/feature/auth/domain/entity"
)

// mockUserRepository is a mock implementation of UserRepository.
// Unset functions fall back to "not found" lookups and successful writes.
type mockUserRepository struct {
	CreateFunc                  func(ctx context.Context, user *entity.User) error
	FindByIDFunc                func(ctx context.Context, id string) (*entity.User, error)
	FindByEmailFunc             func(ctx context.Context, email string) (*entity.User, error)
	FindByUsernameFunc          func(ctx context.Context, username string) (*entity.User, error)
	FindLocalByUsernameFunc     func(ctx context.Context, username string) (*entity.User, error)
	ExistsByUsernameOrEmailFunc func(ctx context.Context, username, email string) (bool, error)
	UpdateProfileFunc           func(ctx context.Context, user *entity.User) error
	UpdatePasswordFunc          func(ctx context.Context, id, passwordHash string) error

	created []*entity.User
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		if err := m.CreateFunc(ctx, user); err != nil {
			return err
		}
	}
	if user.ID == "" {
		user.ID = entity.NewUserID()
	}
	m.created = append(m.created, user)
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) FindLocalByUsername(ctx context.Context, username string) (*entity.User, error) {
	if m.FindLocalByUsernameFunc != nil {
		return m.FindLocalByUsernameFunc(ctx, username)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	if m.ExistsByUsernameOrEmailFunc != nil {
		return m.ExistsByUsernameOrEmailFunc(ctx, username, email)
	}
	return false, nil
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, id, passwordHash)
	}
	return nil
}

// mockSessionRepository keeps sessions in a map.
type mockSessionRepository struct {
	SaveFunc func(ctx context.Context, s *entity.Session) error

	sessions map[string]*entity.Session
	deleted  []string
}

func newMockSessionRepository() *mockSessionRepository {
	return &mockSessionRepository{sessions: map[string]*entity.Session{}}
}

func (m *mockSessionRepository) Save(ctx context.Context, s *entity.Session) error {
	if m.SaveFunc != nil {
		if err := m.SaveFunc(ctx, s); err != nil {
			return err
		}
	}
	cp := *s
	m.sessions[s.ID] = &cp
	return nil
}

func (m *mockSessionRepository) FindByID(_ context.Context, id string) (*entity.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *mockSessionRepository) Delete(_ context.Context, id string) error {
	delete(m.sessions, id)
	m.deleted = append(m.deleted, id)
	return nil
}
