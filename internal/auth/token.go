package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	// CookieName is the cookie carrying the session token.
	CookieName = "token"

	// UserKey is the gin context key holding the verified claims.
	UserKey = "user"

	// TokenTTL is the fixed session token lifetime.
	TokenTTL = time.Hour
)

// IssueToken signs the client-supplied payload as HS256 claims with a fixed
// expiry. The payload shape is not validated; whatever the client sends
// becomes the claims.
func IssueToken(payload map[string]any, secret string) (string, error) {
	claims := jwt.MapClaims{}
	for key, value := range payload {
		claims[key] = value
	}
	claims["exp"] = jwt.NewNumericDate(time.Now().Add(TokenTTL))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}
