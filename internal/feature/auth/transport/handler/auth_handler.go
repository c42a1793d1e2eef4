package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"wetube_backend/internal/feature/auth/transport/http/dto"
	"wetube_backend/internal/feature/auth/usecase"
)

// AuthHandler handles signup, local and OAuth login, and logout.
type AuthHandler struct {
	identities IdentityUsecase
	oauth      OAuthUsecase
	sessions   SessionManager
	cookies    SessionCookies
	session    SessionFromContext
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(
	identities IdentityUsecase,
	oauth OAuthUsecase,
	sessions SessionManager,
	cookies SessionCookies,
	session SessionFromContext,
) *AuthHandler {
	return &AuthHandler{
		identities: identities,
		oauth:      oauth,
		sessions:   sessions,
		cookies:    cookies,
		session:    session,
	}
}

// Join handles POST /join.
// - 400 with the reconciler's message on mismatch, conflict or store validation failure
// - 302 to /login on success
func (h *AuthHandler) Join(c *gin.Context) {
	var req dto.JoinReq
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "signup", err)
		return
	}

	user, err := h.identities.CreateLocalIdentity(c.Request.Context(), usecase.SignupInput{
		Name:      req.Name,
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Password2: req.Password2,
		Location:  req.Location,
	})
	if err != nil {
		respondError(c, "signup", err)
		return
	}

	slog.Info("user signup successful", "user_id", user.ID, "username", user.Username, "remote_addr", c.ClientIP())
	c.Redirect(http.StatusFound, "/login")
}

// Login handles POST /login.
// - 400 "An account with this username does not exists." or "Wrong password"
// - 302 to / with the session cookie on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "login", err)
		return
	}

	user, err := h.identities.ReconcileLocalIdentity(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, "login", err)
		return
	}

	s, ok := requireSession(c, h.session)
	if !ok {
		return
	}
	if err := h.sessions.Establish(c.Request.Context(), s, user); err != nil {
		respondError(c, "login", err)
		return
	}
	if err := h.cookies.Write(c, s); err != nil {
		respondError(c, "login", err)
		return
	}

	slog.Info("user login successful", "user_id", user.ID, "username", user.Username, "remote_addr", c.ClientIP())
	c.Redirect(http.StatusFound, "/")
}

// Logout handles GET /users/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	s, ok := requireLoggedIn(c, h.session)
	if !ok {
		return
	}
	if err := h.sessions.Destroy(c.Request.Context(), s); err != nil {
		respondError(c, "logout", err)
		return
	}
	h.cookies.Clear(c)
	c.Redirect(http.StatusFound, "/")
}

// StartOAuth returns the handler of GET /users/<provider>/start, which redirects to the consent page.
func (h *AuthHandler) StartOAuth(provider string) gin.HandlerFunc {
	return func(c *gin.Context) {
		url, err := h.oauth.AuthorizationURL(provider)
		if err != nil {
			slog.Warn("oauth start failed", "provider", provider, "error", err)
			c.Redirect(http.StatusFound, "/login")
			return
		}
		c.Redirect(http.StatusFound, url)
	}
}

// FinishOAuth returns the handler of GET /users/<provider>/finish.
// Every failure of the provider flow ends on /login without a message.
func (h *AuthHandler) FinishOAuth(provider string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := h.oauth.Login(c.Request.Context(), provider, c.Query("code"))
		if err != nil {
			slog.Warn("oauth login failed", "provider", provider, "error", err, "remote_addr", c.ClientIP())
			c.Redirect(http.StatusFound, "/login")
			return
		}

		s, ok := requireSession(c, h.session)
		if !ok {
			return
		}
		if err := h.sessions.Establish(c.Request.Context(), s, user); err != nil {
			slog.Error("failed to establish session", "provider", provider, "error", err)
			c.Redirect(http.StatusFound, "/login")
			return
		}
		if err := h.cookies.Write(c, s); err != nil {
			slog.Error("failed to write session cookie", "provider", provider, "error", err)
			c.Redirect(http.StatusFound, "/login")
			return
		}

		slog.Info("oauth login successful", "provider", provider, "user_id", user.ID, "remote_addr", c.ClientIP())
		c.Redirect(http.StatusFound, "/")
	}
}
