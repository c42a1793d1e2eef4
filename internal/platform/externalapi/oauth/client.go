package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"wetube_backend/internal/platform/externalapi/oauth/dto"
)

// Provider names, also used as route segments.
const (
	GitHubProvider = "github"
	KakaoProvider  = "kakao"
)

// ErrNoAccessToken is returned when the token endpoint answers without an access token.
var ErrNoAccessToken = errors.New("oauth: token response has no access_token")

// authorizationURL appends the encoded params to base. Keys are sorted by url.Values.Encode.
func authorizationURL(base string, params url.Values) string {
	return base + "?" + params.Encode()
}

// exchangeCode posts form to the token endpoint and returns the access token.
func exchangeCode(ctx context.Context, client *http.Client, cfg ProviderConfig, form url.Values) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	res, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer closeBody(res)

	var body dto.TokenResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		if res.StatusCode >= 400 {
			return "", fmt.Errorf("%s token http %d", cfg.Name, res.StatusCode)
		}
		return "", fmt.Errorf("%s: decode token response: %w", cfg.Name, err)
	}
	if body.AccessToken == "" {
		if body.Error != "" {
			return "", fmt.Errorf("%w: %s: %s %s", ErrNoAccessToken, cfg.Name, body.Error, body.ErrorDescription)
		}
		return "", fmt.Errorf("%w: %s", ErrNoAccessToken, cfg.Name)
	}
	return body.AccessToken, nil
}

// getJSON performs an authenticated GET and decodes the JSON body into out.
func getJSON(ctx context.Context, client *http.Client, providerName, endpoint, authorization string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", authorization)
	req.Header.Set("Accept", "application/json")

	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer closeBody(res)

	if res.StatusCode >= 400 {
		return fmt.Errorf("%s http %d", providerName, res.StatusCode)
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode %s: %w", providerName, endpoint, err)
	}
	return nil
}

func closeBody(res *http.Response) {
	if err := res.Body.Close(); err != nil {
		slog.Warn("failed to close response body", "error", err)
	}
}
