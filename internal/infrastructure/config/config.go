package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sethvargo/go-envconfig"

	"github.com/eduplatform/education-api/internal/core/domain"
)

// Config is built once at startup and passed to the components that need
// it. Nothing reads the environment after Load returns.
type Config struct {
	Port      string `env:"PORT,       default=8000"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	APIPrefix string `env:"API_STR,    default=/api"`

	Auth  AuthConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type AuthConfig struct {
	JWTSecret           string        `env:"JWT_SECRET"`
	Algorithm           string        `env:"ALGORITHM,             default=HS256"`
	AccessExpireMinutes int           `env:"ACCESS_EXPIRE_MINUTES, default=10080"`
	BcryptCost          int           `env:"BCRYPT_COST,           default=10"`
	IdentityCacheTTL    time.Duration `env:"IDENTITY_CACHE_TTL,    default=1m"`
}

// AccessTTL is the access token lifetime.
func (a AuthConfig) AccessTTL() time.Duration {
	return time.Duration(a.AccessExpireMinutes) * time.Minute
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=faculdade"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig
// and validates it.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom is Load with an explicit variable source.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports settings the process cannot start with. All failures
// wrap domain.ErrConfiguration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return fmt.Errorf("%w: JWT_SECRET is required", domain.ErrConfiguration)
	}
	if _, ok := jwt.GetSigningMethod(c.Auth.Algorithm).(*jwt.SigningMethodHMAC); !ok {
		return fmt.Errorf("%w: ALGORITHM %q is not an HMAC algorithm", domain.ErrConfiguration, c.Auth.Algorithm)
	}
	if c.Auth.AccessExpireMinutes <= 0 {
		return fmt.Errorf("%w: ACCESS_EXPIRE_MINUTES must be positive", domain.ErrConfiguration)
	}
	if !strings.HasPrefix(c.APIPrefix, "/") {
		return fmt.Errorf("%w: API_STR must start with '/'", domain.ErrConfiguration)
	}
	return nil
}

// IsDevelopment reports whether the process runs in a development environment.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}
