// Package dto defines the provider response bodies decoded by the oauth client.
package dto

// TokenResponse is the body returned by a provider token endpoint.
// Failures such as an expired code come back in the same body with Error set.
type TokenResponse struct {
	AccessToken      string `json:"access_token"`
	TokenType        string `json:"token_type"`
	Scope            string `json:"scope"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}
