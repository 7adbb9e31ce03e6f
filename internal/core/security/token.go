package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/eduplatform/education-api/internal/core/domain"
)

// DefaultAccessTTL is seven days.
const DefaultAccessTTL = 10080 * time.Minute

// AccessClaims is the payload of an access token.
type AccessClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HMAC-signed access tokens. It is
// immutable after construction and safe for concurrent use.
type TokenManager struct {
	secret []byte
	method *jwt.SigningMethodHMAC
	ttl    time.Duration
	now    func() time.Time
}

// TokenOption customises a TokenManager.
type TokenOption func(*TokenManager)

// WithClock replaces the wall clock used for issuing and verifying tokens.
func WithClock(now func() time.Time) TokenOption {
	return func(m *TokenManager) {
		if now != nil {
			m.now = now
		}
	}
}

// NewTokenManager validates the signing configuration once so that a bad
// secret or algorithm fails at startup instead of on every request.
func NewTokenManager(secret, algorithm string, ttl time.Duration, opts ...TokenOption) (*TokenManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: signing secret is empty", domain.ErrConfiguration)
	}
	if algorithm == "" {
		algorithm = jwt.SigningMethodHS256.Alg()
	}
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported signing algorithm %q", domain.ErrConfiguration, algorithm)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("%w: access token ttl must be positive", domain.ErrConfiguration)
	}

	m := &TokenManager{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// TTL returns the lifetime of issued access tokens.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// IssueAccessToken signs a token for subject, valid from now until now+TTL.
func (m *TokenManager) IssueAccessToken(subject string) (string, error) {
	now := m.now().UTC()
	claims := AccessClaims{
		Type: domain.AccessTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(m.method, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// ParseAccessToken verifies signature, algorithm, expiry and type of token
// and returns its subject. Every failure wraps domain.ErrUnauthenticated.
func (m *TokenManager) ParseAccessToken(token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("%w: empty token", domain.ErrUnauthenticated)
	}

	claims := &AccessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{m.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return m.now().UTC() }),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
	}
	if !parsed.Valid {
		return "", fmt.Errorf("%w: token not valid", domain.ErrUnauthenticated)
	}
	if claims.Type != domain.AccessTokenType {
		return "", fmt.Errorf("%w: unexpected token type %q", domain.ErrUnauthenticated, claims.Type)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", domain.ErrUnauthenticated)
	}
	return claims.Subject, nil
}

// IsExpired reports whether err was caused by an expired token.
func IsExpired(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired)
}
