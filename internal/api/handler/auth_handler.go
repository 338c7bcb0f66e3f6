package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fpdual/dual-admin/internal/api/metrics"
	"github.com/fpdual/dual-admin/internal/core/domain"
	"github.com/fpdual/dual-admin/internal/core/ports"
)

// AuthHandler handles login and password changes.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"   validate:"required"`
}

// sessionUser is the public profile returned with a session: never the
// hash, and only the fields the client needs to route the user.
type sessionUser struct {
	ID                 int64  `json:"id"`
	Username           string `json:"username"`
	Role               string `json:"role"`
	MustChangePassword bool   `json:"must_change_password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  sessionUser `json:"user"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword" validate:"required,min=4"`
}

type changePasswordResponse struct {
	User sessionUser `json:"user"`
}

func toSessionUser(u *domain.User) sessionUser {
	return sessionUser{
		ID:                 u.ID,
		Username:           u.Username,
		Role:               u.Role,
		MustChangePassword: u.MustChangePassword,
	}
}

// Login authenticates by username or email and returns a signed token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Identifier, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{Token: token, User: toSessionUser(user)})
}

// ChangePassword updates the target user's password. Non-admins may only
// change their own and must present the current password; admins may
// reset anyone's without it.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	targetID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authService.ChangePassword(c.Request().Context(), claims, targetID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, changePasswordResponse{User: toSessionUser(user)})
}
