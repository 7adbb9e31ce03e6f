package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eduplatform/education-api/internal/core/domain"
	"github.com/eduplatform/education-api/internal/core/ports"
)

// ArticleHandler handles HTTP requests for articles.
type ArticleHandler struct {
	service ports.ArticleService
}

func NewArticleHandler(service ports.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// List handles GET /artigos.
//
// @Summary      List articles
// @Tags         artigos
// @Produce      json
// @Success      200  {array}  domain.Article
// @Router       /artigos [get]
func (h *ArticleHandler) List(c echo.Context) error {
	articles, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if articles == nil {
		articles = []*domain.Article{}
	}
	return c.JSON(http.StatusOK, articles)
}

// Get handles GET /artigos/:id.
//
// @Summary      Get an article
// @Tags         artigos
// @Produce      json
// @Param        id   path      string  true  "Article ID"
// @Success      200  {object}  domain.Article
// @Failure      404  {object}  errorResponse
// @Router       /artigos/{id} [get]
func (h *ArticleHandler) Get(c echo.Context) error {
	article, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// Create handles POST /artigos. The caller becomes the author.
//
// @Summary      Publish an article
// @Tags         artigos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createArticleRequest  true  "Article"
// @Success      201   {object}  domain.Article
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /artigos [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	author, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createArticleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	article, err := h.service.Create(c.Request().Context(), ports.CreateArticleInput{
		Title:       req.Title,
		Description: req.Description,
		SourceURL:   req.SourceURL,
		AuthorID:    author.ID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, article)
}

// Update handles PUT /artigos/:id. The caller takes over ownership.
//
// @Summary      Update an article
// @Tags         artigos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Article ID"
// @Param        body  body      updateArticleRequest  true  "Fields to change"
// @Success      202   {object}  domain.Article
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /artigos/{id} [put]
func (h *ArticleHandler) Update(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateArticleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	article, err := h.service.Update(c.Request().Context(), c.Param("id"), actor, req.toUpdate())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusAccepted, article)
}

// Delete handles DELETE /artigos/:id.
//
// @Summary      Delete an article
// @Tags         artigos
// @Security     BearerAuth
// @Param        id   path  string  true  "Article ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /artigos/{id} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
