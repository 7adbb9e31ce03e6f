package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/eduplatform/education-api/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{domain.ErrInvalidCredentials, http.StatusBadRequest, "invalid credentials"},
		{fmt.Errorf("resolve: %w", domain.ErrUnauthenticated), http.StatusUnauthorized, "unauthenticated"},
		{domain.ErrForbidden, http.StatusForbidden, "forbidden"},
		{fmt.Errorf("get user: %w", domain.ErrUserNotFound), http.StatusNotFound, "user not found"},
		{domain.ErrArticleNotFound, http.StatusNotFound, "article not found"},
		{domain.ErrCourseNotFound, http.StatusNotFound, "course not found"},
		{domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{echo.NewHTTPError(http.StatusUnprocessableEntity, "email is required"), http.StatusUnprocessableEntity, "email is required"},
	}

	for _, tc := range cases {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		var body errorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Error != tc.msg {
			t.Fatalf("%v: expected %q, got %q", tc.err, tc.msg, body.Error)
		}
	}
}

func TestHTTPErrorHandler_UnauthorizedChallenge(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrUnauthenticated, c)

	if rec.Header().Get("WWW-Authenticate") != "Bearer" {
		t.Fatalf("expected bearer challenge header")
	}
}

func TestHTTPErrorHandler_UnexpectedErrorIsLoggedNotLeaked(t *testing.T) {
	var logs bytes.Buffer
	log := zerolog.New(&logs)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/artigos", nil), rec)

	NewHTTPErrorHandler(log)(errors.New("mongo: connection reset"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "mongo") {
		t.Fatalf("internal detail leaked: %s", rec.Body.String())
	}
	if !strings.Contains(logs.String(), "connection reset") {
		t.Fatalf("expected cause in logs, got %q", logs.String())
	}
}
