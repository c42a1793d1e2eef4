package entity

import "time"

// Session is the server-side state bound to a browser by its session cookie.
type Session struct {
	ID        string        `json:"id"`         // 64-character hex string
	LoggedIn  bool          `json:"loggedIn"`
	User      *UserSnapshot `json:"user,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	ExpiresAt time.Time     `json:"expiresAt"`
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsAuthenticated returns true if a user has been bound to the session.
func (s *Session) IsAuthenticated() bool {
	return s.LoggedIn && s.User != nil
}
