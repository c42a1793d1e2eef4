package cache

import (
	"time"

	"wetube_backend/internal/feature/auth/domain/entity"
)

// cachedUser is the cached form of a user. The password hash is never cached.
type cachedUser struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	SocialOnly bool      `json:"socialOnly"`
	AvatarURL  string    `json:"avatarUrl,omitempty"`
	Location   string    `json:"location,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func newCachedUser(u *entity.User) cachedUser {
	return cachedUser{
		ID:         u.ID,
		Name:       u.Name,
		Username:   u.Username,
		Email:      u.Email,
		SocialOnly: u.SocialOnly,
		AvatarURL:  u.AvatarURL,
		Location:   u.Location,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func (c cachedUser) toEntity() *entity.User {
	return &entity.User{
		ID:         c.ID,
		Name:       c.Name,
		Username:   c.Username,
		Email:      c.Email,
		SocialOnly: c.SocialOnly,
		AvatarURL:  c.AvatarURL,
		Location:   c.Location,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
