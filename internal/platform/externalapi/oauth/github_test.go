package oauth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newGitHubServer serves the token and user-info endpoints with the given email list body.
func newGitHubServer(t *testing.T, tokenBody, emailsBody string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/login/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "gh-client", r.PostForm.Get("client_id"))
		assert.Equal(t, "gh-secret", r.PostForm.Get("client_secret"))
		assert.Equal(t, "the-code", r.PostForm.Get("code"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(tokenBody))
	})
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token gho_123", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"login":"octocat","name":"The Octocat","avatar_url":"https://avatars.example/o.png","location":"San Francisco"}`))
	})
	mux.HandleFunc("/user/emails", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token gho_123", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(emailsBody))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestGitHub(server *httptest.Server) *GitHub {
	return NewGitHub(ProviderConfig{
		Name:         GitHubProvider,
		ClientID:     "gh-client",
		ClientSecret: "gh-secret",
		AuthorizeURL: server.URL + "/login/oauth/authorize",
		TokenURL:     server.URL + "/login/oauth/access_token",
		APIBaseURL:   server.URL,
		Scope:        "read:user user:email",
	}, server.Client())
}

func TestGitHub_AuthorizationURL(t *testing.T) {
	t.Parallel()

	g := NewGitHub(Config{GitHubClientID: "gh-client", GitHubAuthorizeURL: "https://github.com/login/oauth/authorize"}.GitHub(), &http.Client{})

	got := g.AuthorizationURL()

	assert.Equal(t, "https://github.com/login/oauth/authorize?allow_signup=false&client_id=gh-client&scope=read%3Auser+user%3Aemail", got)
	assert.Equal(t, got, g.AuthorizationURL(), "URL must be deterministic")
}

func TestGitHub_Exchange(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		server := newGitHubServer(t, `{"access_token":"gho_123","token_type":"bearer","scope":"read:user,user:email"}`, `[]`)

		token, err := newTestGitHub(server).Exchange(context.Background(), "the-code")

		require.NoError(t, err)
		assert.Equal(t, "gho_123", token)
	})

	t.Run("expired code reported in a 200 body", func(t *testing.T) {
		t.Parallel()
		server := newGitHubServer(t, `{"error":"bad_verification_code","error_description":"The code passed is incorrect or expired."}`, `[]`)

		_, err := newTestGitHub(server).Exchange(context.Background(), "the-code")

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNoAccessToken))
		assert.Contains(t, err.Error(), "bad_verification_code")
	})

	t.Run("non-json error status", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := newTestGitHub(server).Exchange(context.Background(), "the-code")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "github token http 502")
	})
}

func TestGitHub_FetchProfile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		emails        string
		expectedEmail string
		verified      bool
	}{
		{
			name:          "primary verified entry selected",
			emails:        `[{"email":"other@x.com","primary":false,"verified":true},{"email":"octo@x.com","primary":true,"verified":true}]`,
			expectedEmail: "octo@x.com",
			verified:      true,
		},
		{
			name:   "all entries unverified",
			emails: `[{"email":"octo@x.com","primary":true,"verified":false},{"email":"o2@x.com","primary":false,"verified":false}]`,
		},
		{
			name:   "verified but not primary",
			emails: `[{"email":"o2@x.com","primary":false,"verified":true}]`,
		},
		{
			name:   "no emails",
			emails: `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			server := newGitHubServer(t, `{}`, tt.emails)

			profile, err := newTestGitHub(server).FetchProfile(context.Background(), "gho_123")

			require.NoError(t, err)
			assert.Equal(t, GitHubProvider, profile.Provider)
			assert.Equal(t, "The Octocat", profile.Name)
			assert.Equal(t, "octocat", profile.Handle)
			assert.Equal(t, "https://avatars.example/o.png", profile.AvatarURL)
			assert.Equal(t, "San Francisco", profile.Location)
			assert.Equal(t, tt.expectedEmail, profile.Email)
			assert.Equal(t, tt.verified, profile.EmailVerified)
			assert.Equal(t, tt.verified, profile.HasVerifiedEmail())
		})
	}
}

func TestGitHub_FetchProfile_HTTPError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newTestGitHub(server).FetchProfile(context.Background(), "gho_123")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "github http 401")
}

func TestGitHub_Exchange_ContextCanceled(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := newTestGitHub(server).Exchange(ctx, "the-code")

	assert.Error(t, err)
}

func TestAuthorizationURL_EncodesParams(t *testing.T) {
	t.Parallel()

	got := authorizationURL("https://p.example/auth", url.Values{"b": {"2"}, "a": {"1 1"}})

	assert.Equal(t, "https://p.example/auth?a=1+1&b=2", got)
}
