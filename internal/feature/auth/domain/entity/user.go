// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a local account.
// Accounts come from local signup or from the first OAuth login of an unseen email.
type User struct {
	// ID is a 24-character hex identifier generated at creation.
	ID string

	Name string

	// Username must be unique across all users.
	Username string

	// Email must be unique across all users.
	Email string

	// PasswordHash is the bcrypt hash of the local password.
	// It is empty for accounts created through an OAuth provider.
	PasswordHash string

	// SocialOnly is true when the account has no usable local password.
	SocialOnly bool

	AvatarURL string
	Location  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot copies the user into a session-safe value without the password hash.
func (u *User) Snapshot() *UserSnapshot {
	return &UserSnapshot{
		ID:         u.ID,
		Name:       u.Name,
		Username:   u.Username,
		Email:      u.Email,
		SocialOnly: u.SocialOnly,
		AvatarURL:  u.AvatarURL,
		Location:   u.Location,
	}
}

// UserSnapshot is the copy of a user held by a session.
// It is not refreshed automatically when the stored user changes.
type UserSnapshot struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	SocialOnly bool   `json:"socialOnly"`
	AvatarURL  string `json:"avatarUrl,omitempty"`
	Location   string `json:"location,omitempty"`
}
