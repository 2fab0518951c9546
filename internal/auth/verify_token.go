package auth

import (
	"fmt"
	"net/http"

	"bitbucket.org/crgw/stayzen-backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// VerifyToken reads the session token from the request cookie and verifies
// it. Verified claims end up in the gin context under UserKey. Authorization
// rules on top of the claims (like the email match on the bookings list)
// belong to the route, not here.
func VerifyToken(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(CookieName)
		if err != nil {
			middleware.HandleError(ctx, http.StatusUnauthorized, "not authorized", err)
			return
		}

		parsed, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !parsed.Valid {
			middleware.HandleError(ctx, http.StatusUnauthorized, "unauthorized access", err)
			return
		}

		claims, ok := parsed.Claims.(jwt.MapClaims)
		if !ok {
			middleware.HandleError(ctx, http.StatusUnauthorized, "unauthorized access", nil)
			return
		}

		ctx.Set(UserKey, claims)
	}
}
