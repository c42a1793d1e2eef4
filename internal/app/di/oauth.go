package di

import (
	"wetube_backend/internal/feature/auth/usecase"
	"wetube_backend/internal/platform/externalapi/oauth"
	infrahttp "wetube_backend/internal/platform/http"
)

// NewOAuthProviders creates the GitHub and Kakao providers sharing one HTTP client.
func NewOAuthProviders(cfg oauth.Config) []usecase.OAuthProvider {
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return []usecase.OAuthProvider{
		oauth.NewGitHub(cfg.GitHub(), httpClient),
		oauth.NewKakao(cfg.Kakao(), httpClient),
	}
}
