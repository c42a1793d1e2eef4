// Package oauth implements the authorization-code flow against GitHub and Kakao.
package oauth

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const productionEnv = "production"

// ProviderConfig describes one OAuth provider.
type ProviderConfig struct {
	Name         string
	ClientID     string
	ClientSecret string
	AuthorizeURL string
	TokenURL     string
	APIBaseURL   string // base of the user-info endpoints, e.g. "https://api.github.com"
	RedirectURI  string // empty when the provider uses the URI registered with the app
	Scope        string
}

// Config holds the provider credentials and endpoints loaded from the environment.
type Config struct {
	Environment string        `env:"APP_ENV" envDefault:"development"`
	Timeout     time.Duration `env:"OAUTH_HTTP_TIMEOUT" envDefault:"10s"`

	GitHubClientID     string `env:"GH_CLIENT"`
	GitHubClientSecret string `env:"GH_SECRET"`
	GitHubAuthorizeURL string `env:"GH_AUTHORIZE_URL" envDefault:"https://github.com/login/oauth/authorize"`
	GitHubTokenURL     string `env:"GH_TOKEN_URL" envDefault:"https://github.com/login/oauth/access_token"`
	GitHubAPIBaseURL   string `env:"GH_API_BASE_URL" envDefault:"https://api.github.com"`

	KakaoClientID         string `env:"KAKAO_CLIENT"`
	KakaoClientSecret     string `env:"KAKAO_SECRET"`
	KakaoRedirectURI      string `env:"KAKAO_REDIRECT_URI"`
	KakaoLocalRedirectURI string `env:"KAKAO_LOCAL_REDIRECT_URI" envDefault:"http://localhost:4000/users/kakao/finish"`
	KakaoAuthorizeURL     string `env:"KAKAO_AUTHORIZE_URL" envDefault:"https://kauth.kakao.com/oauth/authorize"`
	KakaoTokenURL         string `env:"KAKAO_TOKEN_URL" envDefault:"https://kauth.kakao.com/oauth/token"`
	KakaoAPIBaseURL       string `env:"KAKAO_API_BASE_URL" envDefault:"https://kapi.kakao.com"`
}

// LoadConfig loads OAuth configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse oauth config: %w", err)
	}
	return cfg, nil
}

// GitHub returns the GitHub provider configuration.
func (c Config) GitHub() ProviderConfig {
	return ProviderConfig{
		Name:         GitHubProvider,
		ClientID:     c.GitHubClientID,
		ClientSecret: c.GitHubClientSecret,
		AuthorizeURL: c.GitHubAuthorizeURL,
		TokenURL:     c.GitHubTokenURL,
		APIBaseURL:   c.GitHubAPIBaseURL,
		Scope:        "read:user user:email",
	}
}

// Kakao returns the Kakao provider configuration with the redirect URI of the current environment.
func (c Config) Kakao() ProviderConfig {
	return ProviderConfig{
		Name:         KakaoProvider,
		ClientID:     c.KakaoClientID,
		ClientSecret: c.KakaoClientSecret,
		AuthorizeURL: c.KakaoAuthorizeURL,
		TokenURL:     c.KakaoTokenURL,
		APIBaseURL:   c.KakaoAPIBaseURL,
		RedirectURI:  c.kakaoRedirectURI(),
		Scope:        "profile_nickname,profile_image,account_email",
	}
}

func (c Config) kakaoRedirectURI() string {
	if c.Environment == productionEnv {
		return c.KakaoRedirectURI
	}
	return c.KakaoLocalRedirectURI
}
