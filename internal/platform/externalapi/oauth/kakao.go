package oauth

import (
	"context"
	"net/http"
	"net/url"

	"wetube_backend/internal/feature/auth/domain/entity"
	"wetube_backend/internal/feature/auth/usecase"
	"wetube_backend/internal/platform/externalapi/oauth/dto"
)

// Kakao drives the Kakao Login flow.
type Kakao struct {
	cfg    ProviderConfig
	client *http.Client
}

// Compile-time check to ensure Kakao implements OAuthProvider.
var _ usecase.OAuthProvider = (*Kakao)(nil)

// NewKakao creates a Kakao provider with the given configuration and HTTP client.
func NewKakao(cfg ProviderConfig, client *http.Client) *Kakao {
	return &Kakao{cfg: cfg, client: client}
}

func (k *Kakao) Name() string { return KakaoProvider }

// AuthorizationURL returns the consent page URL.
func (k *Kakao) AuthorizationURL() string {
	q := url.Values{}
	q.Set("client_id", k.cfg.ClientID)
	q.Set("redirect_uri", k.cfg.RedirectURI)
	q.Set("response_type", "code")
	q.Set("scope", k.cfg.Scope)
	return authorizationURL(k.cfg.AuthorizeURL, q)
}

// Exchange trades the authorization code for an access token.
// Kakao requires the same redirect_uri that was used for the authorization request.
func (k *Kakao) Exchange(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("client_id", k.cfg.ClientID)
	form.Set("redirect_uri", k.cfg.RedirectURI)
	form.Set("code", code)
	if k.cfg.ClientSecret != "" {
		form.Set("client_secret", k.cfg.ClientSecret)
	}
	return exchangeCode(ctx, k.client, k.cfg, form)
}

// FetchProfile reads GET /v2/user/me. The email only counts as verified
// when Kakao reports it both valid and verified.
func (k *Kakao) FetchProfile(ctx context.Context, accessToken string) (*entity.ProviderProfile, error) {
	var user dto.KakaoUser
	if err := getJSON(ctx, k.client, KakaoProvider, k.cfg.APIBaseURL+"/v2/user/me", "Bearer "+accessToken, &user); err != nil {
		return nil, err
	}

	account := user.KakaoAccount
	nickname := firstNonEmpty(user.Properties.Nickname, account.Profile.Nickname)
	profile := &entity.ProviderProfile{
		Provider:  KakaoProvider,
		Name:      nickname,
		Handle:    nickname,
		AvatarURL: firstNonEmpty(user.Properties.ProfileImage, account.Profile.ProfileImageURL),
	}
	if account.IsEmailValid && account.IsEmailVerified && account.Email != "" {
		profile.Email = account.Email
		profile.EmailVerified = true
	}
	return profile, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
