package ports

import (
	"context"

	"github.com/eduplatform/education-api/internal/core/domain"
)

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches hash. A malformed hash is a mismatch.
	Verify(password, hash string) bool
}

// TokenIssuer signs access tokens for a subject.
type TokenIssuer interface {
	IssueAccessToken(subject string) (string, error)
}

// TokenVerifier validates an access token and returns its subject.
type TokenVerifier interface {
	ParseAccessToken(token string) (string, error)
}

// LoginResult is what a successful login hands back to the transport layer.
type LoginResult struct {
	AccessToken string
	TokenType   string
	User        *domain.User
}

type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	ResolveIdentity(ctx context.Context, token string) (*domain.User, error)
}
