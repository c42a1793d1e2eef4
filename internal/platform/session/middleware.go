// Package session wires sessions into gin: the Redis store, the request-scoped
// session loader, the signed session cookie and the route guards.
package session

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wetube_backend/internal/feature/auth/domain/entity"
	jwtmw "wetube_backend/internal/platform/jwt"
)

const (
	// ContextSession is the gin context key holding *entity.Session.
	ContextSession = "session"

	// CookieName is the name of the session cookie.
	CookieName = "wetube_sid"
)

// Loader resolves a session ID to a session. Unknown IDs yield a new anonymous session.
type Loader interface {
	Load(ctx context.Context, id string) (*entity.Session, error)
}

// TokenSigner signs session IDs for the cookie.
type TokenSigner interface {
	Sign(sessionID string) (string, error)
}

// Load returns a Gin middleware that puts the current session into the context.
// It expects jwtmw.CookieSessionID to run first.
func Load(sessions Loader) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := sessions.Load(c.Request.Context(), jwtmw.SessionID(c))
		if err != nil {
			slog.Error("failed to load session", "error", err, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"errorMessage": "internal server error"})
			return
		}
		c.Set(ContextSession, s)
		c.Next()
	}
}

// FromContext returns the session stored by Load, or nil.
func FromContext(c *gin.Context) *entity.Session {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil
	}
	s, _ := v.(*entity.Session)
	return s
}

// Protector lets only logged-in sessions through; others are sent to /login.
func Protector() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s := FromContext(c); s == nil || !s.IsAuthenticated() {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// PublicOnly lets only anonymous sessions through; logged-in users are sent to /.
func PublicOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s := FromContext(c); s != nil && s.IsAuthenticated() {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Cookies writes and clears the signed session cookie.
type Cookies struct {
	signer TokenSigner
	secure bool
}

// NewCookies creates a Cookies writer. secure marks the cookie HTTPS-only.
func NewCookies(signer TokenSigner, secure bool) *Cookies {
	return &Cookies{signer: signer, secure: secure}
}

// Write sets the cookie for s, expiring with the session.
func (k *Cookies) Write(c *gin.Context, s *entity.Session) error {
	token, err := k.signer.Sign(s.ID)
	if err != nil {
		return err
	}
	maxAge := int(time.Until(s.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, maxAge, "/", "", k.secure, true)
	return nil
}

// Clear expires the cookie on the client.
func (k *Cookies) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", k.secure, true)
}
