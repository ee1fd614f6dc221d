package helpers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joshua-takyi/eventconnect/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issuedAt = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestIssuer(secret string) *TokenIssuer {
	ti := NewTokenIssuer([]byte(secret), time.Hour)
	ti.now = func() time.Time { return issuedAt }
	return ti
}

var planner = models.User{
	ID:    models.SeedPlannerID,
	Email: "planner@eventconnect.com",
	Name:  "Planner User",
	Role:  models.RolePlanner,
}

func TestIssueAndParse(t *testing.T) {
	ti := newTestIssuer("s3cret")

	tok, exp, err := ti.Issue(planner)
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(time.Hour), exp)

	claims, err := ti.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, planner.ID, claims.Subject)
	assert.Equal(t, planner.Email, claims.Email)
	assert.Equal(t, models.RolePlanner, claims.Role)
	assert.Equal(t, TokenIssuerName, claims.Issuer)
}

func TestParseRejects(t *testing.T) {
	ti := newTestIssuer("s3cret")
	tok, _, err := ti.Issue(planner)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := newTestIssuer("other").Parse(tok)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		late := newTestIssuer("s3cret")
		late.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
		_, err := late.Parse(tok)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ti.Parse("not.a.token")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing subject", func(t *testing.T) {
		anon, _, err := ti.Issue(models.User{Email: "nobody@example.com", Role: models.RoleUser})
		require.NoError(t, err)
		_, err = ti.Parse(anon)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("no expiry", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{
			Role:             models.RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{Subject: models.SeedAdminID},
		})
		signed, err := raw.SignedString([]byte("s3cret"))
		require.NoError(t, err)
		_, err = ti.Parse(signed)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodNone, TokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   models.SeedAdminID,
				ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
			},
		})
		signed, err := raw.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = ti.Parse(signed)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestCloseWithoutJWKS(t *testing.T) {
	assert.NotPanics(t, newTestIssuer("s3cret").Close)
}
