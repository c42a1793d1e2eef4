package oauth

import (
	"context"
	"net/http"
	"net/url"

	"wetube_backend/internal/feature/auth/domain/entity"
	"wetube_backend/internal/feature/auth/usecase"
	"wetube_backend/internal/platform/externalapi/oauth/dto"
)

// GitHub drives the GitHub OAuth app flow.
type GitHub struct {
	cfg    ProviderConfig
	client *http.Client
}

// Compile-time check to ensure GitHub implements OAuthProvider.
var _ usecase.OAuthProvider = (*GitHub)(nil)

// NewGitHub creates a GitHub provider with the given configuration and HTTP client.
func NewGitHub(cfg ProviderConfig, client *http.Client) *GitHub {
	return &GitHub{cfg: cfg, client: client}
}

func (g *GitHub) Name() string { return GitHubProvider }

// AuthorizationURL returns the consent page URL. Signup on GitHub is disabled for the flow.
func (g *GitHub) AuthorizationURL() string {
	q := url.Values{}
	q.Set("client_id", g.cfg.ClientID)
	q.Set("allow_signup", "false")
	q.Set("scope", g.cfg.Scope)
	return authorizationURL(g.cfg.AuthorizeURL, q)
}

// Exchange trades the authorization code for an access token.
func (g *GitHub) Exchange(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("client_id", g.cfg.ClientID)
	form.Set("client_secret", g.cfg.ClientSecret)
	form.Set("code", code)
	return exchangeCode(ctx, g.client, g.cfg, form)
}

// FetchProfile joins GET /user with the primary verified entry of GET /user/emails.
// /user does not reliably expose a verified email, hence the second call.
func (g *GitHub) FetchProfile(ctx context.Context, accessToken string) (*entity.ProviderProfile, error) {
	auth := "token " + accessToken

	var user dto.GitHubUser
	if err := getJSON(ctx, g.client, GitHubProvider, g.cfg.APIBaseURL+"/user", auth, &user); err != nil {
		return nil, err
	}
	var emails []dto.GitHubEmail
	if err := getJSON(ctx, g.client, GitHubProvider, g.cfg.APIBaseURL+"/user/emails", auth, &emails); err != nil {
		return nil, err
	}

	profile := &entity.ProviderProfile{
		Provider:  GitHubProvider,
		Name:      user.Name,
		Handle:    user.Login,
		AvatarURL: user.AvatarURL,
		Location:  user.Location,
	}
	for _, e := range emails {
		if e.Primary && e.Verified {
			profile.Email = e.Email
			profile.EmailVerified = true
			break
		}
	}
	return profile, nil
}
