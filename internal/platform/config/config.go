package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process level configuration.
type Server struct {
	Addr           string
	Environment    string
	AdminToken     string
	JWTSigningKey  string
	JWTIssuer      string
	JWTAudience    string
	TokenTTL       time.Duration
	RequestTimeout time.Duration
	MaxBodyBytes   int64
	AuditBuffer    int

	// RateLimit is the number of requests one client IP may issue within
	// RateLimitWindow. Zero disables rate limiting.
	RateLimit       int
	RateLimitWindow time.Duration
}

// FromEnv builds a Server config from environment variables so main stays
// lean. Every value has a development default; secrets must be overridden
// in production.
func FromEnv() Server {
	cfg := Server{
		Addr:           envOr("ATTESTRY_ADDR", ":8080"),
		Environment:    envOr("ATTESTRY_ENV", "dev"),
		AdminToken:     envOr("ATTESTRY_ADMIN_TOKEN", "dev-admin-token-change-in-production"),
		JWTSigningKey:  envOr("ATTESTRY_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		JWTIssuer:      envOr("ATTESTRY_JWT_ISSUER", "https://attestry.local"),
		JWTAudience:    envOr("ATTESTRY_JWT_AUDIENCE", "attestry-api"),
		TokenTTL:       durationOr("ATTESTRY_TOKEN_TTL", time.Hour),
		RequestTimeout: durationOr("ATTESTRY_REQUEST_TIMEOUT", 30*time.Second),
		MaxBodyBytes:   int64Or("ATTESTRY_MAX_BODY_BYTES", 1<<20),
		AuditBuffer:    intOr("ATTESTRY_AUDIT_BUFFER", 256),

		RateLimit:       intOr("ATTESTRY_RATE_LIMIT", 300),
		RateLimitWindow: durationOr("ATTESTRY_RATE_LIMIT_WINDOW", time.Minute),
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func intOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func int64Or(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
