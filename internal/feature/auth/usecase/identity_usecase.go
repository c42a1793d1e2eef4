package usecase

import (
	"context"
	"errors"
	"fmt"

	"wetube_backend/internal/feature/auth/domain/entity"
)

// SignupInput carries the fields submitted to the local signup form.
type SignupInput struct {
	Name      string
	Username  string
	Email     string
	Password  string
	Password2 string
	Location  string
}

// ProfileInput carries the editable profile fields.
// An empty AvatarURL keeps the current avatar.
type ProfileInput struct {
	Name      string
	Email     string
	Username  string
	Location  string
	AvatarURL string
}

// PasswordChangeInput carries the fields submitted to the change-password form.
type PasswordChangeInput struct {
	Old                     string
	NewPassword             string
	NewPasswordConfirmation string
}

// identityUsecase maps local credentials and provider profiles onto user records.
type identityUsecase struct {
	users  UserRepository
	hasher *PasswordHasher
}

// NewIdentityUsecase creates a new instance of identityUsecase.
func NewIdentityUsecase(users UserRepository, hasher *PasswordHasher) *identityUsecase {
	return &identityUsecase{users: users, hasher: hasher}
}

// ReconcileOAuthIdentity finds the user owning the profile's verified email or creates a social-only one.
// An existing user is returned unchanged; provider data is never merged into it.
func (u *identityUsecase) ReconcileOAuthIdentity(ctx context.Context, profile *entity.ProviderProfile) (*entity.User, error) {
	if !profile.HasVerifiedEmail() {
		return nil, ErrUnverifiedEmail
	}

	user, err := u.users.FindByEmail(ctx, profile.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	name := profile.Name
	if name == "" {
		name = profile.Handle
	}
	user = &entity.User{
		Name:       name,
		Username:   profile.Handle,
		Email:      profile.Email,
		AvatarURL:  profile.AvatarURL,
		Location:   profile.Location,
		SocialOnly: true,
	}
	if err := u.users.Create(ctx, user); err != nil {
		if !errors.Is(err, ErrDuplicateUser) {
			return nil, err
		}
		// A concurrent first login may have created the same email in between.
		if existing, findErr := u.users.FindByEmail(ctx, profile.Email); findErr == nil {
			return existing, nil
		}
		// A provider handle colliding with an existing username is reported as taken.
		return nil, ErrUsernameOrEmailTaken
	}
	return user, nil
}

// ReconcileLocalIdentity authenticates a username and password against a non-social account.
func (u *identityUsecase) ReconcileLocalIdentity(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := u.users.FindLocalByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	if !u.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrWrongPassword
	}
	return user, nil
}

// CreateLocalIdentity registers a user with a hashed local password.
func (u *identityUsecase) CreateLocalIdentity(ctx context.Context, in SignupInput) (*entity.User, error) {
	if in.Password != in.Password2 {
		return nil, ErrPasswordMismatch
	}
	if in.Password == "" {
		return nil, &ValidationError{Fields: []string{"password"}}
	}

	exists, err := u.users.ExistsByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check user existence: %w", err)
	}
	if exists {
		return nil, ErrUsernameOrEmailTaken
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Name:         in.Name,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hashed,
		Location:     in.Location,
	}
	// The existence check above is not atomic with the insert; the unique index decides races.
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicateUser) {
			return nil, ErrUsernameOrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies a profile edit for the user with id and returns the updated record.
// The new email and username may belong to the user itself but not to anyone else.
func (u *identityUsecase) UpdateProfile(ctx context.Context, id string, in ProfileInput) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	emailTaken, err := u.takenByOther(ctx, u.users.FindByEmail, in.Email, id)
	if err != nil {
		return nil, err
	}
	usernameTaken, err := u.takenByOther(ctx, u.users.FindByUsername, in.Username, id)
	if err != nil {
		return nil, err
	}
	if emailTaken || usernameTaken {
		return nil, ErrProfileConflict
	}

	user.Name = in.Name
	user.Email = in.Email
	user.Username = in.Username
	user.Location = in.Location
	if in.AvatarURL != "" {
		user.AvatarURL = in.AvatarURL
	}
	if err := u.users.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicateUser) {
			return nil, ErrProfileConflict
		}
		return nil, err
	}
	return user, nil
}

// takenByOther reports whether value is held by a user other than selfID.
func (u *identityUsecase) takenByOther(
	ctx context.Context,
	find func(context.Context, string) (*entity.User, error),
	value, selfID string,
) (bool, error) {
	other, err := find(ctx, value)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return other.ID != selfID, nil
}

// ChangePassword replaces the local password of the user with id.
// The caller is expected to destroy the current session on success.
func (u *identityUsecase) ChangePassword(ctx context.Context, id string, in PasswordChangeInput) error {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user.SocialOnly {
		return ErrSocialOnlyAccount
	}
	// FindByID may be served from a cache that carries no hash.
	local, err := u.users.FindLocalByUsername(ctx, user.Username)
	if err != nil {
		return fmt.Errorf("find local credentials: %w", err)
	}
	if local.ID != user.ID || !u.hasher.Verify(in.Old, local.PasswordHash) {
		return ErrIncorrectPassword
	}
	if in.Old == in.NewPassword {
		return ErrSamePassword
	}
	if in.NewPassword != in.NewPasswordConfirmation {
		return ErrPasswordConfirmation
	}

	hashed, err := u.hasher.Hash(in.NewPassword)
	if err != nil {
		return err
	}
	return u.users.UpdatePassword(ctx, id, hashed)
}

// GetProfile returns the user with id. Malformed ids are reported as ErrUserNotFound.
func (u *identityUsecase) GetProfile(ctx context.Context, id string) (*entity.User, error) {
	if !entity.IsUserID(id) {
		return nil, ErrUserNotFound
	}
	return u.users.FindByID(ctx, id)
}
