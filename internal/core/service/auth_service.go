package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/eduplatform/education-api/internal/core/domain"
	"github.com/eduplatform/education-api/internal/core/ports"
	"github.com/eduplatform/education-api/internal/core/security"
)

// TokenManager is the pair of token capabilities the auth flow needs.
type TokenManager interface {
	ports.TokenIssuer
	ports.TokenVerifier
}

// AuthRecorder receives the outcome of login attempts and token checks.
type AuthRecorder interface {
	LoginAttempt(result string)
	TokenVerification(result string)
}

type nopRecorder struct{}

func (nopRecorder) LoginAttempt(string)      {}
func (nopRecorder) TokenVerification(string) {}

// AuthService implements credential authentication, token issuance and
// token-based identity resolution.
type AuthService struct {
	users    ports.UserRepository
	hasher   ports.PasswordHasher
	tokens   TokenManager
	cache    ports.IdentityCache
	recorder AuthRecorder
	log      zerolog.Logger

	// dummyHash is verified against when the identifier is unknown so that
	// both failure paths cost one hash computation.
	dummyHash string
}

// AuthOption customises an AuthService.
type AuthOption func(*AuthService)

// WithIdentityCache puts cache in front of the user lookup done per request.
func WithIdentityCache(cache ports.IdentityCache) AuthOption {
	return func(s *AuthService) { s.cache = cache }
}

// WithAuthRecorder reports login and verification outcomes to r.
func WithAuthRecorder(r AuthRecorder) AuthOption {
	return func(s *AuthService) {
		if r != nil {
			s.recorder = r
		}
	}
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens TokenManager, log zerolog.Logger, opts ...AuthOption) *AuthService {
	s := &AuthService{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		recorder: nopRecorder{},
		log:      log,
	}
	for _, opt := range opts {
		opt(s)
	}
	if h, err := hasher.Hash("timing-equalizer"); err == nil {
		s.dummyHash = h
	}
	return s
}

// Authenticate returns the user owning email when password matches.
// Unknown emails and wrong passwords both yield domain.ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.hasher.Verify(password, s.dummyHash)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// Login authenticates the credentials and issues an access token for the user.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			s.recorder.LoginAttempt("invalid_credentials")
		} else {
			s.recorder.LoginAttempt("error")
		}
		return nil, err
	}

	token, err := s.tokens.IssueAccessToken(user.ID)
	if err != nil {
		s.recorder.LoginAttempt("error")
		return nil, fmt.Errorf("login: %w", err)
	}

	s.recorder.LoginAttempt("success")
	s.log.Info().Str("user_id", user.ID).Msg("user logged in")

	return &ports.LoginResult{
		AccessToken: token,
		TokenType:   domain.TokenTypeBearer,
		User:        user,
	}, nil
}

// ResolveIdentity verifies token and loads the user it was issued for.
// Any token problem, or a subject that no longer exists, is reported as
// domain.ErrUnauthenticated.
func (s *AuthService) ResolveIdentity(ctx context.Context, token string) (*domain.User, error) {
	subject, err := s.tokens.ParseAccessToken(token)
	if err != nil {
		if security.IsExpired(err) {
			s.recorder.TokenVerification("expired")
		} else {
			s.recorder.TokenVerification("invalid")
		}
		s.log.Debug().Err(err).Msg("access token rejected")
		return nil, domain.ErrUnauthenticated
	}

	if s.cache != nil {
		user, ok, err := s.cache.Get(ctx, subject)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", subject).Msg("identity cache read failed")
		} else if ok {
			s.recorder.TokenVerification("success")
			return user, nil
		}
	}

	user, err := s.users.FindByID(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recorder.TokenVerification("unknown_subject")
			return nil, domain.ErrUnauthenticated
		}
		s.recorder.TokenVerification("error")
		return nil, fmt.Errorf("resolve identity: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, user); err != nil {
			s.log.Warn().Err(err).Str("user_id", subject).Msg("identity cache write failed")
		}
	}

	s.recorder.TokenVerification("success")
	return user, nil
}
