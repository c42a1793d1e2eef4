// Package handler provides the HTTP handlers of the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"wetube_backend/internal/feature/auth/domain/entity"
	"wetube_backend/internal/feature/auth/transport/http/dto"
	"wetube_backend/internal/feature/auth/usecase"
)

// IdentityUsecase defines the account operations used by the handlers.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type IdentityUsecase interface {
	ReconcileLocalIdentity(ctx context.Context, username, password string) (*entity.User, error)
	CreateLocalIdentity(ctx context.Context, in usecase.SignupInput) (*entity.User, error)
	UpdateProfile(ctx context.Context, id string, in usecase.ProfileInput) (*entity.User, error)
	ChangePassword(ctx context.Context, id string, in usecase.PasswordChangeInput) error
	GetProfile(ctx context.Context, id string) (*entity.User, error)
}

// OAuthUsecase runs the provider login flow.
type OAuthUsecase interface {
	AuthorizationURL(provider string) (string, error)
	Login(ctx context.Context, provider, code string) (*entity.User, error)
}

// SessionManager binds users to the request session.
type SessionManager interface {
	Establish(ctx context.Context, s *entity.Session, user *entity.User) error
	Refresh(ctx context.Context, s *entity.Session, user *entity.User) error
	Destroy(ctx context.Context, s *entity.Session) error
}

// SessionCookies writes the session cookie.
type SessionCookies interface {
	Write(c *gin.Context, s *entity.Session) error
	Clear(c *gin.Context)
}

// AvatarStore persists an uploaded avatar and returns its URL.
type AvatarStore interface {
	Save(c *gin.Context, file *multipart.FileHeader) (string, error)
	Remove(url string) error
}

// SessionFromContext returns the session the session middleware stored on the request.
type SessionFromContext func(c *gin.Context) *entity.Session

// userError reports whether err carries a message meant for the user.
func userError(err error) bool {
	var vErr *usecase.ValidationError
	switch {
	case errors.As(err, &vErr),
		errors.Is(err, usecase.ErrPasswordMismatch),
		errors.Is(err, usecase.ErrUsernameOrEmailTaken),
		errors.Is(err, usecase.ErrAccountNotFound),
		errors.Is(err, usecase.ErrWrongPassword),
		errors.Is(err, usecase.ErrProfileConflict),
		errors.Is(err, usecase.ErrSocialOnlyAccount),
		errors.Is(err, usecase.ErrIncorrectPassword),
		errors.Is(err, usecase.ErrSamePassword),
		errors.Is(err, usecase.ErrPasswordConfirmation),
		errors.Is(err, usecase.ErrPasswordTooLong):
		return true
	}
	return false
}

// respondError writes the status and message for a usecase error.
func respondError(c *gin.Context, op string, err error) {
	switch {
	case userError(err):
		slog.Warn(op+" rejected", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{ErrorMessage: err.Error()})
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{ErrorMessage: "User not found."})
	default:
		slog.Error(op+" failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{ErrorMessage: "internal server error"})
	}
}

func badRequest(c *gin.Context, op string, err error) {
	slog.Warn(op+" validation failed", "error", err, "remote_addr", c.ClientIP())
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{ErrorMessage: "invalid request"})
}

// requireSession aborts with 500 when the session loader did not run.
func requireSession(c *gin.Context, from SessionFromContext) (*entity.Session, bool) {
	s := from(c)
	if s == nil {
		slog.Error("no session in request context", "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{ErrorMessage: "internal server error"})
		return nil, false
	}
	return s, true
}

// requireLoggedIn is requireSession for routes behind the protector.
// A session without a user is sent to /login.
func requireLoggedIn(c *gin.Context, from SessionFromContext) (*entity.Session, bool) {
	s, ok := requireSession(c, from)
	if !ok {
		return nil, false
	}
	if !s.IsAuthenticated() {
		c.Redirect(http.StatusFound, "/login")
		return nil, false
	}
	return s, true
}
