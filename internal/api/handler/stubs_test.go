package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eduplatform/education-api/internal/api/middleware"
	"github.com/eduplatform/education-api/internal/core/domain"
	"github.com/eduplatform/education-api/internal/core/ports"
)

type stubAuthService struct {
	loginFn func(ctx context.Context, email, password string) (*ports.LoginResult, error)
}

func (s *stubAuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	panic("not used by handlers")
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) ResolveIdentity(ctx context.Context, token string) (*domain.User, error) {
	panic("not used by handlers")
}

type stubUserService struct {
	registerFn func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error)
	getFn      func(ctx context.Context, id string) (*domain.User, error)
	listFn     func(ctx context.Context) ([]*domain.User, error)
	updateFn   func(ctx context.Context, id string, update domain.UserUpdate) (*domain.User, error)
	deleteFn   func(ctx context.Context, id string) error
}

func (s *stubUserService) Register(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubUserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) Update(ctx context.Context, id string, update domain.UserUpdate) (*domain.User, error) {
	return s.updateFn(ctx, id, update)
}

func (s *stubUserService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type stubArticleService struct {
	createFn     func(ctx context.Context, input ports.CreateArticleInput) (*domain.Article, error)
	getFn        func(ctx context.Context, id string) (*domain.Article, error)
	listFn       func(ctx context.Context) ([]*domain.Article, error)
	listByUserFn func(ctx context.Context, userID string) ([]*domain.Article, error)
	updateFn     func(ctx context.Context, id string, actor *domain.User, update domain.ArticleUpdate) (*domain.Article, error)
	deleteFn     func(ctx context.Context, id string) error
}

func (s *stubArticleService) Create(ctx context.Context, input ports.CreateArticleInput) (*domain.Article, error) {
	return s.createFn(ctx, input)
}

func (s *stubArticleService) Get(ctx context.Context, id string) (*domain.Article, error) {
	return s.getFn(ctx, id)
}

func (s *stubArticleService) List(ctx context.Context) ([]*domain.Article, error) {
	return s.listFn(ctx)
}

func (s *stubArticleService) ListByUser(ctx context.Context, userID string) ([]*domain.Article, error) {
	return s.listByUserFn(ctx, userID)
}

func (s *stubArticleService) Update(ctx context.Context, id string, actor *domain.User, update domain.ArticleUpdate) (*domain.Article, error) {
	return s.updateFn(ctx, id, actor, update)
}

func (s *stubArticleService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type stubCourseService struct {
	createFn func(ctx context.Context, c domain.Course) (*domain.Course, error)
	getFn    func(ctx context.Context, id string) (*domain.Course, error)
	listFn   func(ctx context.Context) ([]*domain.Course, error)
	updateFn func(ctx context.Context, id string, update domain.CourseUpdate) (*domain.Course, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubCourseService) Create(ctx context.Context, c domain.Course) (*domain.Course, error) {
	return s.createFn(ctx, c)
}

func (s *stubCourseService) Get(ctx context.Context, id string) (*domain.Course, error) {
	return s.getFn(ctx, id)
}

func (s *stubCourseService) List(ctx context.Context) ([]*domain.Course, error) {
	return s.listFn(ctx)
}

func (s *stubCourseService) Update(ctx context.Context, id string, update domain.CourseUpdate) (*domain.Course, error) {
	return s.updateFn(ctx, id, update)
}

func (s *stubCourseService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

// newContext builds an echo context with the validator installed. A non-nil
// caller is injected the way the Auth middleware does it.
func newContext(method, target, body string, caller *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if caller != nil {
		c.Set(middleware.IdentityKey, caller)
		c.Set(middleware.UserIDKey, caller.ID)
		c.Set(middleware.RoleKey, caller.Role())
	}
	return c, rec
}

func withParam(c echo.Context, name, value string) echo.Context {
	c.SetParamNames(name)
	c.SetParamValues(value)
	return c
}
