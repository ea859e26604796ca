package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenIssuer mints and verifies session tokens. A token is an HS256 JWT over
// (user_id, login_id, exp). The login_id claim must match the value stored on
// the user row, so rotating a user's login id invalidates every outstanding
// token without server-side session state.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("token secret is empty")
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}, nil
}

// NewLoginID generates the per-user opaque identifier embedded in tokens.
func NewLoginID() string {
	return uuid.NewString()
}

func (t *TokenIssuer) Issue(userID uint, loginID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"login_id": loginID,
		"exp":      time.Now().Add(t.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks signature and expiry and returns the embedded identity.
func (t *TokenIssuer) Verify(tokenString string) (userID uint, loginID string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.secret, nil
	})

	if err != nil || !token.Valid {
		return 0, "", fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", fmt.Errorf("invalid token claims")
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, "", fmt.Errorf("invalid user id claim")
	}

	loginID, ok = claims["login_id"].(string)
	if !ok || loginID == "" {
		return 0, "", fmt.Errorf("invalid login id claim")
	}

	return uint(userIDFloat), loginID, nil
}
