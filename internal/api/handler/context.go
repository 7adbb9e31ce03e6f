package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eduplatform/education-api/internal/api/middleware"
	"github.com/eduplatform/education-api/internal/core/domain"
)

// currentUser returns the identity injected by the Auth middleware. A route
// wired without Auth gets a 401 rather than a nil dereference.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := middleware.Identity(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	return user, nil
}

// bindAndValidate binds the request body into req and runs the registered
// validator. Malformed payloads are 400, invalid ones 422.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}
