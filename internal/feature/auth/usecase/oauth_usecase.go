package usecase

import (
	"context"
	"fmt"

	"wetube_backend/internal/feature/auth/domain/entity"
)

// OAuthProvider performs the authorization-code flow against one identity provider.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (platform/externalapi/oauth).
type OAuthProvider interface {
	// Name is the route segment identifying the provider, e.g. "github".
	Name() string

	// AuthorizationURL returns the provider consent page to redirect the browser to.
	AuthorizationURL() string

	// Exchange trades an authorization code for an access token.
	Exchange(ctx context.Context, code string) (string, error)

	// FetchProfile returns the merged profile of the token's owner.
	FetchProfile(ctx context.Context, accessToken string) (*entity.ProviderProfile, error)
}

// OAuthIdentityReconciler maps a provider profile onto a local user.
type OAuthIdentityReconciler interface {
	ReconcileOAuthIdentity(ctx context.Context, profile *entity.ProviderProfile) (*entity.User, error)
}

// oauthUsecase runs the provider flow and hands the resulting profile to the reconciler.
type oauthUsecase struct {
	providers  map[string]OAuthProvider
	identities OAuthIdentityReconciler
}

// NewOAuthUsecase creates a new instance of oauthUsecase serving the given providers.
func NewOAuthUsecase(identities OAuthIdentityReconciler, providers ...OAuthProvider) *oauthUsecase {
	byName := make(map[string]OAuthProvider, len(providers))
	for _, p := range providers {
		byName[p.Name()] = p
	}
	return &oauthUsecase{providers: byName, identities: identities}
}

// AuthorizationURL returns the consent page URL of the named provider.
func (u *oauthUsecase) AuthorizationURL(provider string) (string, error) {
	p, ok := u.providers[provider]
	if !ok {
		return "", ErrUnknownProvider
	}
	return p.AuthorizationURL(), nil
}

// Login exchanges code with the named provider and resolves the profile to a user.
// Failures are not retried.
func (u *oauthUsecase) Login(ctx context.Context, provider, code string) (*entity.User, error) {
	p, ok := u.providers[provider]
	if !ok {
		return nil, ErrUnknownProvider
	}
	if code == "" {
		return nil, ErrMissingAuthorization
	}

	token, err := p.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%s token exchange: %w", provider, err)
	}
	profile, err := p.FetchProfile(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%s profile: %w", provider, err)
	}
	return u.identities.ReconcileOAuthIdentity(ctx, profile)
}
