package helpers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/joshua-takyi/eventconnect/internal/models"
)

const TokenIssuerName = "eventconnect"

var ErrInvalidToken = errors.New("invalid or expired token")

// TokenIssuer signs session tokens with an HMAC secret. When a JWKS URL is
// configured, tokens signed by that key set are accepted as well.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	jwks   *keyfunc.JWKS
	now    func() time.Time
}

func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, ttl: ttl, now: time.Now}
}

// WithJWKS fetches the remote key set and keeps it refreshed in the
// background until Close.
func (ti *TokenIssuer) WithJWKS(ctx context.Context, url string, logger *slog.Logger) error {
	jwks, err := keyfunc.Get(url, keyfunc.Options{
		Ctx:             ctx,
		RefreshInterval: time.Hour,
		RefreshErrorHandler: func(err error) {
			logger.Warn("JWKS refresh failed", "url", url, "error", err)
		},
	})
	if err != nil {
		return fmt.Errorf("failed to load JWKS: %w", err)
	}
	ti.jwks = jwks
	return nil
}

func (ti *TokenIssuer) TTL() time.Duration { return ti.ttl }

// Issue signs a token for u and returns it with its expiry.
func (ti *TokenIssuer) Issue(u models.User) (string, time.Time, error) {
	now := ti.now()
	exp := now.Add(ti.ttl)
	claims := TokenClaims{
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			Issuer:    TokenIssuerName,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ti.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %v", err)
	}
	return signed, exp, nil
}

// Parse validates a token and returns its claims.
func (ti *TokenIssuer) Parse(tokenStr string) (*TokenClaims, error) {
	claims, err := ti.parse(tokenStr, ti.hmacKey)
	if err == nil {
		return claims, nil
	}
	if ti.jwks != nil {
		if claims, jwksErr := ti.parse(tokenStr, ti.jwks.Keyfunc); jwksErr == nil {
			return claims, nil
		}
	}
	return nil, err
}

func (ti *TokenIssuer) parse(tokenStr string, keyFunc jwt.Keyfunc) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &TokenClaims{}, keyFunc,
		jwt.WithTimeFunc(ti.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (ti *TokenIssuer) hmacKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
	}
	return ti.secret, nil
}

// Close stops the JWKS refresh goroutine, if any.
func (ti *TokenIssuer) Close() {
	if ti.jwks != nil {
		ti.jwks.EndBackground()
	}
}
