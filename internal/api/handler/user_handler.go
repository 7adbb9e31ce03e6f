package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/eduplatform/education-api/internal/api/metrics"
	"github.com/eduplatform/education-api/internal/core/domain"
	"github.com/eduplatform/education-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	users    ports.UserService
	articles ports.ArticleService
}

func NewUserHandler(users ports.UserService, articles ports.ArticleService) *UserHandler {
	return &UserHandler{users: users, articles: articles}
}

// Signup creates a new user account.
//
// @Summary      Register a new user
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /usuarios/signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.users.Register(c.Request().Context(), ports.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Admin:     req.Admin,
	})
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.WithLabelValues(strconv.FormatBool(user.Admin)).Inc()

	return c.JSON(http.StatusCreated, user)
}

// List handles GET /usuarios.
//
// @Summary      List users
// @Tags         usuarios
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /usuarios [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /usuarios/:id and embeds the user's articles.
//
// @Summary      Get a user with their articles
// @Tags         usuarios
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  userWithArticlesResponse
// @Failure      404  {object}  errorResponse
// @Router       /usuarios/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.users.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	articles, err := h.articles.ListByUser(ctx, user.ID)
	if err != nil {
		return err
	}
	if articles == nil {
		articles = []*domain.Article{}
	}

	return c.JSON(http.StatusOK, userWithArticlesResponse{User: user, Articles: articles})
}

// Update handles PUT /usuarios/:id. Only administrators may grant the
// administrator flag; anyone may send it unchanged.
//
// @Summary      Update a user
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      202   {object}  domain.User
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /usuarios/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.Admin != nil && *req.Admin && !caller.Admin {
		return domain.ErrForbidden
	}

	user, err := h.users.Update(c.Request().Context(), c.Param("id"), req.toUpdate())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusAccepted, user)
}

// Delete handles DELETE /usuarios/:id.
//
// @Summary      Delete a user
// @Tags         usuarios
// @Security     BearerAuth
// @Param        id   path  string  true  "User ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /usuarios/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.users.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
