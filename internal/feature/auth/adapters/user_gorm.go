// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"wetube_backend/internal/feature/auth/domain/entity"
	"wetube_backend/internal/feature/auth/usecase"
)

// userGorm implements usecase.UserRepository on any GORM dialect.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure userGorm implements UserRepository.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm creates a new instance of userGorm.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create inserts the user and writes the generated ID and timestamps back into u.
// Unique violations on username or email return usecase.ErrDuplicateUser.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if u == nil {
		return errors.New("user is nil")
	}
	model := UserModelFromEntity(u)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		var vErr *usecase.ValidationError
		if errors.As(err, &vErr) {
			return vErr
		}
		if isDuplicateKey(err) {
			return usecase.ErrDuplicateUser
		}
		return err
	}
	u.ID = model.ID
	u.CreatedAt = model.CreatedAt
	u.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID retrieves a user by ID.
func (r *userGorm) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.first(ctx, "id = ?", id)
}

// FindByEmail retrieves a user by email.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.first(ctx, "email = ?", email)
}

// FindByUsername retrieves a user by username.
func (r *userGorm) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.first(ctx, "username = ?", username)
}

// FindLocalByUsername retrieves a user by username, excluding social-only accounts.
func (r *userGorm) FindLocalByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.first(ctx, "username = ? AND social_only = ?", username, false)
}

func (r *userGorm) first(ctx context.Context, query string, args ...any) (*entity.User, error) {
	var m UserModel
	if err := r.db.WithContext(ctx).Where(query, args...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// ExistsByUsernameOrEmail reports whether any user holds the username or the email.
func (r *userGorm) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&UserModel{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	return count > 0, err
}

// UpdateProfile writes the editable profile fields of u.
func (r *userGorm) UpdateProfile(ctx context.Context, u *entity.User) error {
	if err := validateRequired(u.Name, u.Username, u.Email); err != nil {
		return err
	}
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&UserModel{}).
		Where("id = ?", u.ID).
		Updates(map[string]any{
			"name":       u.Name,
			"email":      u.Email,
			"username":   u.Username,
			"location":   u.Location,
			"avatar_url": u.AvatarURL,
			"updated_at": now,
		})
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return usecase.ErrDuplicateUser
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	u.UpdatedAt = now
	return nil
}

// UpdatePassword replaces the stored password hash of the user with id.
func (r *userGorm) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	result := r.db.WithContext(ctx).
		Model(&UserModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"password_hash": passwordHash, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}
