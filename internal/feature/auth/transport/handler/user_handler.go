package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"wetube_backend/internal/feature/auth/transport/http/dto"
	"wetube_backend/internal/feature/auth/usecase"
)

// UserHandler handles profile edit, password change and profile view.
type UserHandler struct {
	identities IdentityUsecase
	sessions   SessionManager
	cookies    SessionCookies
	avatars    AvatarStore
	session    SessionFromContext
}

// NewUserHandler creates a new instance of UserHandler.
func NewUserHandler(
	identities IdentityUsecase,
	sessions SessionManager,
	cookies SessionCookies,
	avatars AvatarStore,
	session SessionFromContext,
) *UserHandler {
	return &UserHandler{
		identities: identities,
		sessions:   sessions,
		cookies:    cookies,
		avatars:    avatars,
		session:    session,
	}
}

// GetEdit handles GET /users/edit and returns the session's user snapshot.
func (h *UserHandler) GetEdit(c *gin.Context) {
	s, ok := requireLoggedIn(c, h.session)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.User)
}

// PostEdit handles POST /users/edit.
// The optional multipart file "avatar" replaces the current avatar.
func (h *UserHandler) PostEdit(c *gin.Context) {
	s, ok := requireLoggedIn(c, h.session)
	if !ok {
		return
	}

	var req dto.EditProfileReq
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "profile edit", err)
		return
	}

	in := usecase.ProfileInput{
		Name:     req.Name,
		Email:    req.Email,
		Username: req.Username,
		Location: req.Location,
	}
	if file, err := c.FormFile("avatar"); err == nil {
		url, err := h.avatars.Save(c, file)
		if err != nil {
			respondError(c, "profile edit", err)
			return
		}
		in.AvatarURL = url
	}

	user, err := h.identities.UpdateProfile(c.Request.Context(), s.User.ID, in)
	if err != nil {
		if in.AvatarURL != "" {
			if rmErr := h.avatars.Remove(in.AvatarURL); rmErr != nil {
				slog.Warn("failed to remove rejected avatar", "avatar_url", in.AvatarURL, "error", rmErr)
			}
		}
		respondError(c, "profile edit", err)
		return
	}
	if err := h.sessions.Refresh(c.Request.Context(), s, user); err != nil {
		respondError(c, "profile edit", err)
		return
	}

	slog.Info("profile updated", "user_id", user.ID, "username", user.Username)
	c.Redirect(http.StatusFound, "/users/edit")
}

// GetChangePassword handles GET /users/change-password.
// Social-only accounts have no password and are sent back to /.
func (h *UserHandler) GetChangePassword(c *gin.Context) {
	s, ok := requireLoggedIn(c, h.session)
	if !ok {
		return
	}
	if s.User.SocialOnly {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.JSON(http.StatusOK, s.User)
}

// PostChangePassword handles POST /users/change-password.
// On success the session is destroyed and the user has to log in again.
func (h *UserHandler) PostChangePassword(c *gin.Context) {
	s, ok := requireLoggedIn(c, h.session)
	if !ok {
		return
	}

	var req dto.ChangePasswordReq
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "password change", err)
		return
	}

	userID := s.User.ID
	err := h.identities.ChangePassword(c.Request.Context(), userID, usecase.PasswordChangeInput{
		Old:                     req.Old,
		NewPassword:             req.NewPassword,
		NewPasswordConfirmation: req.NewPasswordConfirmation,
	})
	if err != nil {
		respondError(c, "password change", err)
		return
	}

	if err := h.sessions.Destroy(c.Request.Context(), s); err != nil {
		respondError(c, "password change", err)
		return
	}
	h.cookies.Clear(c)

	slog.Info("password changed", "user_id", userID)
	c.Redirect(http.StatusFound, "/login")
}

// See handles GET /users/:id.
func (h *UserHandler) See(c *gin.Context) {
	user, err := h.identities.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "profile view", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProfileResponse(user))
}
