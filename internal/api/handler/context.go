package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fpdual/dual-admin/internal/core/domain"
)

// ctxClaims extracts the identity injected by the Auth middleware. The
// presence of a role proves the middleware ran; handlers on protected
// routes fail fast with 401 rather than proceeding without an identity.
func ctxClaims(c echo.Context) (domain.Claims, error) {
	userID, _ := c.Get("user_id").(int64)
	role, _ := c.Get("role").(string)
	if userID == 0 || role == "" {
		return domain.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return domain.Claims{UserID: userID, Role: role}, nil
}

// pathID parses the named path parameter as a numeric id; a non-numeric
// value is a 404, matching what a lookup for it would return.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	return id, nil
}
