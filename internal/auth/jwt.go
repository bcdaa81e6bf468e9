package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-ShopService/internal/domain"
)

const (
	issuer   = "shop-manager"
	audience = "mobile"
)

var (
	// ErrInvalidToken is returned for malformed, expired or mis-signed tokens.
	ErrInvalidToken = errors.New("auth: invalid or expired token")

	// ErrInvalidClaims is returned when the token payload is missing the
	// expected claims.
	ErrInvalidClaims = errors.New("auth: invalid token claims")
)

// Principal identifies an authenticated manager or shop.
type Principal struct {
	UserID int64
	Role   domain.Role
}

// TokenIssuer creates and verifies JWT tokens for the manager/shop API.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a token issuer with the given HMAC secret and
// token lifetime.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// GenerateToken signs a token for the given principal.
func (t *TokenIssuer) GenerateToken(userID int64, role domain.Role) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":    issuer,
		"aud":    audience,
		"userId": userID,
		"role":   string(role),
		"iat":    now.Unix(),
		"exp":    now.Add(t.ttl).Unix(),
	})

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken parses and validates a token, returning the principal it
// identifies. The role claim must belong to the closed role set.
func (t *TokenIssuer) VerifyToken(tokenString string) (*Principal, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidClaims
	}

	rawUserID, ok := claims["userId"].(float64)
	if !ok || rawUserID <= 0 {
		return nil, fmt.Errorf("%w: userId missing", ErrInvalidClaims)
	}

	rawRole, ok := claims["role"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: role missing", ErrInvalidClaims)
	}
	role, err := domain.ParseRole(rawRole)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidClaims, err)
	}

	return &Principal{UserID: int64(rawUserID), Role: role}, nil
}
