package mock

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pharmastore/p/domain"
)

// tokenTTL bounds a session's lifetime.
const tokenTTL = 24 * time.Hour

// sessionClaims is the signed claim set embedded in every session token.
// Tokens are HMAC-signed even in the mock path so nothing can come to rely
// on their content being forgeable.
type sessionClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

func mintToken(user domain.User, secret string) (string, error) {
	claims := sessionClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// parseToken returns the claims iff the token decodes, is HS256-signed with
// secret and has not expired. Every decode failure reads as invalid.
func parseToken(tokenString, secret string) (*sessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
