package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eduplatform/education-api/internal/core/domain"
	"github.com/eduplatform/education-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login exchanges credentials for a bearer access token.
//
// @Summary      Login
// @Tags         usuarios
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        username  formData  string  false  "Account email (form login)"
// @Param        password  formData  string  true   "Password"
// @Success      200       {object}  tokenResponse
// @Failure      400       {object}  errorResponse
// @Router       /usuarios/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	result, err := h.authService.Login(c.Request().Context(), req.identifier(), req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid credentials"})
		}
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
	})
}

// Authenticated returns the identity the bearer token resolves to.
//
// @Summary      Current user
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /usuarios/authenticate [get]
func (h *AuthHandler) Authenticated(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
