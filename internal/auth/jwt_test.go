package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShopService/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.GenerateToken(42, domain.RoleManager)
	require.NoError(t, err)

	principal, err := issuer.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), principal.UserID)
	assert.Equal(t, domain.RoleManager, principal.Role)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-a", time.Hour).GenerateToken(1, domain.RoleShop)
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret-b", time.Hour).VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Expired(t *testing.T) {
	issuer := NewTokenIssuer("secret", -time.Hour)

	token, err := issuer.GenerateToken(1, domain.RoleManager)
	require.NoError(t, err)

	_, err = issuer.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Garbage(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	_, err := issuer.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_UnknownRoleClaim(t *testing.T) {
	secret := []byte("secret")
	now := time.Now()

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":    issuer,
		"aud":    audience,
		"userId": float64(1),
		"role":   "admin",
		"iat":    now.Unix(),
		"exp":    now.Add(time.Hour).Unix(),
	})
	token, err := raw.SignedString(secret)
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret", time.Hour).VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidClaims)
}

func TestVerifyToken_MissingUserID(t *testing.T) {
	secret := []byte("secret")
	now := time.Now()

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":  issuer,
		"aud":  audience,
		"role": "manager",
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
	})
	token, err := raw.SignedString(secret)
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret", time.Hour).VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidClaims)
}
