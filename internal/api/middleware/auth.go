package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eduplatform/education-api/internal/core/domain"
)

// Context keys set by Auth.
const (
	IdentityKey = "identity"
	UserIDKey   = "user_id"
	RoleKey     = "role"
)

// IdentityResolver turns a bearer token into the user it was issued for.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, token string) (*domain.User, error)
}

// Auth resolves the bearer token of every request and injects the identity
// into the context. Requests without a usable token never reach next.
func Auth(resolver IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request())
			if !ok {
				return unauthenticated(c)
			}

			user, err := resolver.ResolveIdentity(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthenticated) {
					return unauthenticated(c)
				}
				return err
			}

			c.Set(IdentityKey, user)
			c.Set(UserIDKey, user.ID)
			c.Set(RoleKey, user.Role())

			return next(c)
		}
	}
}

// Identity returns the user injected by Auth.
func Identity(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(IdentityKey).(*domain.User)
	return user, ok && user != nil
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func unauthenticated(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
}
