package middlewares

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	jwthandling "github.com/kenzieke/sleepwell-backend/pkg/jwt-handling"
	"github.com/gin-gonic/gin"
)

const (
	HeaderAuthorization = "Authorization"
)

// GetAndValidateWellnessUserJWT extracts the JWT from the Authorization
// header and validates it. On success the parsed claims are stored on the
// context under "validatedToken".
func GetAndValidateWellnessUserJWT(tokenSignKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractToken(c)
		if err != nil {
			slog.Warn("no Authorization token found")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		parsedToken, ok, err := jwthandling.ValidateWellnessUserToken(token, tokenSignKey)
		if err != nil || !ok {
			errMsg := "token invalid"
			if err != nil {
				errMsg = err.Error()
			}
			slog.Warn("token validation failed", slog.String("error", errMsg))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "error during token validation"})
			c.Abort()
			return
		}
		c.Set("token", token)
		c.Set("validatedToken", parsedToken)
	}
}

func extractToken(c *gin.Context) (string, error) {
	req := c.Request

	var token string
	tokens, ok := req.Header[HeaderAuthorization]
	if ok && len(tokens) > 0 {
		token = tokens[0]
		token = strings.TrimPrefix(token, "Bearer ")
		if len(token) == 0 {
			return token, errors.New("no token found in Authorization header")
		}
	} else {
		return token, errors.New("no Authorization header found")
	}
	return token, nil
}
