package usecase

import (
	"context"

	"wetube_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistent user store.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
// Username and email uniqueness is enforced by the store itself; writes violating it return ErrDuplicateUser.
type UserRepository interface {
	// Create persists a new user and assigns its ID when empty.
	Create(ctx context.Context, user *entity.User) error

	// FindByID returns ErrUserNotFound when no user has the ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail returns ErrUserNotFound when no user has the email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername returns ErrUserNotFound when no user has the username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindLocalByUsername only matches accounts with SocialOnly == false.
	FindLocalByUsername(ctx context.Context, username string) (*entity.User, error)

	// ExistsByUsernameOrEmail reports whether any user has the username or the email.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	// UpdateProfile writes name, email, username, location and avatar of the user.
	UpdateProfile(ctx context.Context, user *entity.User) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

// SessionRepository abstracts the persistence layer for session entities.
type SessionRepository interface {
	// Save creates or replaces the session until its ExpiresAt.
	Save(ctx context.Context, session *entity.Session) error

	// FindByID returns ErrSessionNotFound when the session is unknown or expired.
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// Delete removes the session. Deleting an unknown session is not an error.
	Delete(ctx context.Context, id string) error
}
