package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wetube_backend/internal/feature/auth/domain/entity"
	jwtmw "wetube_backend/internal/platform/jwt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type mockLoader struct {
	LoadFunc func(ctx context.Context, id string) (*entity.Session, error)
}

func (m *mockLoader) Load(ctx context.Context, id string) (*entity.Session, error) {
	return m.LoadFunc(ctx, id)
}

func authenticated() *entity.Session {
	return &entity.Session{
		ID:        "sid",
		LoggedIn:  true,
		User:      &entity.UserSnapshot{ID: entity.NewUserID(), Username: "alice"},
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func anonymous() *entity.Session {
	return &entity.Session{ID: "anon", ExpiresAt: time.Now().Add(time.Hour)}
}

func TestLoad(t *testing.T) {
	signer := jwtmw.NewSigner("secret", time.Hour)
	token, err := signer.Sign("sid")
	require.NoError(t, err)

	var gotID string
	loader := &mockLoader{LoadFunc: func(ctx context.Context, id string) (*entity.Session, error) {
		gotID = id
		return authenticated(), nil
	}}

	router := gin.New()
	router.Use(jwtmw.CookieSessionID(signer, CookieName), Load(loader))
	router.GET("/", func(c *gin.Context) {
		s := FromContext(c)
		require.NotNil(t, s)
		c.String(http.StatusOK, s.User.Username)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", w.Body.String())
	assert.Equal(t, "sid", gotID)
}

func TestLoad_StoreError(t *testing.T) {
	loader := &mockLoader{LoadFunc: func(ctx context.Context, id string) (*entity.Session, error) {
		return nil, errors.New("redis down")
	}}

	router := gin.New()
	router.Use(Load(loader))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"errorMessage":"internal server error"}`, w.Body.String())
}

func TestFromContext_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Nil(t, FromContext(c))
}

func TestGuards(t *testing.T) {
	tests := []struct {
		name             string
		guard            gin.HandlerFunc
		session          *entity.Session
		expectedStatus   int
		expectedLocation string
	}{
		{"protector lets logged-in through", Protector(), authenticated(), http.StatusOK, ""},
		{"protector redirects anonymous", Protector(), anonymous(), http.StatusFound, "/login"},
		{"protector redirects missing session", Protector(), nil, http.StatusFound, "/login"},
		{"public-only lets anonymous through", PublicOnly(), anonymous(), http.StatusOK, ""},
		{"public-only redirects logged-in", PublicOnly(), authenticated(), http.StatusFound, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(func(c *gin.Context) {
				if tt.session != nil {
					c.Set(ContextSession, tt.session)
				}
			}, tt.guard)
			router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedLocation, w.Header().Get("Location"))
		})
	}
}

func TestCookies_WriteAndClear(t *testing.T) {
	signer := jwtmw.NewSigner("secret", time.Hour)
	cookies := NewCookies(signer, true)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	require.NoError(t, cookies.Write(c, authenticated()))

	res := w.Result()
	defer res.Body.Close()
	require.Len(t, res.Cookies(), 1)
	cookie := res.Cookies()[0]
	assert.Equal(t, CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Greater(t, cookie.MaxAge, 0)

	id, err := signer.Parse(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "sid", id)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	cookies.Clear(c)

	res2 := w.Result()
	defer res2.Body.Close()
	require.Len(t, res2.Cookies(), 1)
	assert.Equal(t, "", res2.Cookies()[0].Value)
	assert.Less(t, res2.Cookies()[0].MaxAge, 0)
}
