package jwtmw

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ContextSessionID is the gin context key holding the verified session ID.
const ContextSessionID = "sessionID"

// SessionIDParser verifies a cookie token and returns the session ID.
type SessionIDParser interface {
	Parse(token string) (string, error)
}

// CookieSessionID returns a Gin middleware that verifies the session cookie
// and stores the session ID in the context. A missing or tampered cookie
// is not an error; the request continues without a session ID.
func CookieSessionID(parser SessionIDParser, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(cookieName)
		if err != nil || raw == "" {
			c.Next()
			return
		}

		id, err := parser.Parse(raw)
		if err != nil {
			slog.Warn("discarding invalid session cookie", "error", err, "remote_addr", c.ClientIP())
			c.Next()
			return
		}

		c.Set(ContextSessionID, id)
		c.Next()
	}
}

// SessionID returns the verified session ID stored by CookieSessionID.
func SessionID(c *gin.Context) string {
	return c.GetString(ContextSessionID)
}
