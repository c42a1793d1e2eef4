package dto

import "wetube_backend/internal/feature/auth/domain/entity"

// ErrorResponse is the body of every 4xx/5xx answer.
type ErrorResponse struct {
	ErrorMessage string `json:"errorMessage"`
}

// ProfileResponse is the public view of a user returned by GET /users/:id.
type ProfileResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Location  string `json:"location,omitempty"`
}

// NewProfileResponse builds the public view of u.
func NewProfileResponse(u *entity.User) ProfileResponse {
	return ProfileResponse{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		AvatarURL: u.AvatarURL,
		Location:  u.Location,
	}
}
