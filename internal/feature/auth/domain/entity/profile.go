package entity

// ProviderProfile is the merged identity assertion returned by an OAuth provider.
type ProviderProfile struct {
	Provider  string // "github" or "kakao"
	Name      string
	Handle    string // provider login or nickname, used as the username of new accounts
	AvatarURL string
	Location  string

	// Email is the verified primary email, empty when the provider had none.
	Email         string
	EmailVerified bool
}

// HasVerifiedEmail reports whether the profile carries a usable email.
func (p *ProviderProfile) HasVerifiedEmail() bool {
	return p != nil && p.EmailVerified && p.Email != ""
}
