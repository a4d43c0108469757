package credential

import (
	"context"
	"errors"
	"fmt"
	"staytrack/config"
	"staytrack/shared/constant"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissing   = errors.New("bearer credential is missing")
	ErrMalformed = errors.New("bearer credential is not a JWT")
)

// Source resolves the bearer token for a single outbound call.
type Source interface {
	Token(ctx context.Context) (string, error)
}

// Static is a fixed token, typically read from configuration.
type Static string

func (s Static) Token(_ context.Context) (string, error) {
	if s == "" {
		return "", ErrMissing
	}

	return string(s), nil
}

type contextSource struct{}

func (contextSource) Token(ctx context.Context) (string, error) {
	token, _ := ctx.Value(constant.ContextKeyToken).(string)
	if token == "" {
		return "", ErrMissing
	}

	return token, nil
}

// FromContext reads the token placed on the context by WithToken.
func FromContext() Source {
	return contextSource{}
}

// WithToken attaches a per-call token to ctx.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, constant.ContextKeyToken, token)
}

// Chain returns the first token any of its sources can provide.
type Chain []Source

func (c Chain) Token(ctx context.Context) (string, error) {
	for _, source := range c {
		token, err := source.Token(ctx)
		if err == nil {
			return token, nil
		}

		if !errors.Is(err, ErrMissing) {
			return "", err
		}
	}

	return "", ErrMissing
}

// New prefers the token of the console request being served and falls back to
// the configured API token for background work such as warm starts.
func New(cfg *config.Config) Source {
	return Chain{FromContext(), Static(cfg.API.Token)}
}

// Claims is the subset of a session token the console displays.
type Claims struct {
	Subject   string    `json:"subject"`
	Username  string    `json:"username,omitempty"`
	Role      string    `json:"role,omitempty"`
	IssuedAt  time.Time `json:"issued_at,omitzero"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// Expired reports whether the token carried an expiry that has passed. Tokens
// without an exp claim never expire locally; the server stays authoritative.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// Inspect decodes a JWT without verifying its signature. The console cannot hold
// the server's secret, so the result is informational only.
func Inspect(token string) (Claims, error) {
	mapClaims := jwt.MapClaims{}

	if _, _, err := jwt.NewParser().ParseUnverified(token, mapClaims); err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	claims := Claims{
		Subject:  firstString(mapClaims, "sub", "id", "userId", "_id"),
		Username: firstString(mapClaims, "username", "email"),
		Role:     firstString(mapClaims, "role"),
	}

	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}

	return claims, nil
}

func firstString(claims jwt.MapClaims, keys ...string) string {
	for _, key := range keys {
		if value, ok := claims[key].(string); ok && value != "" {
			return value
		}
	}

	return ""
}

// ExtractTokenFromHeader extracts the bearer token from an Authorization header.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is required")
	}

	if !strings.HasPrefix(authHeader, constant.BearerPrefix) {
		return "", errors.New("authorization header must start with 'Bearer '")
	}

	token := strings.TrimSpace(authHeader[len(constant.BearerPrefix):])
	if token == "" {
		return "", ErrMissing
	}

	return token, nil
}
