package jwthandling

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Information a token encodes
type WellnessUserClaims struct {
	InstanceID string `json:"instance_id,omitempty"`
	SessionID  string `json:"session_id,omitempty"`
	jwt.RegisteredClaims
}

func GenerateNewWellnessUserToken(
	expiresIn time.Duration,
	userID string,
	instanceID string,
	sessionID string,
	secretKey string,
) (tokenString string, err error) {
	claims := WellnessUserClaims{
		instanceID,
		sessionID,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   userID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err = token.SignedString([]byte(secretKey))
	return
}

func ValidateWellnessUserToken(tokenString string, secretKey string) (claims *WellnessUserClaims, valid bool, err error) {
	token, err := jwt.ParseWithClaims(tokenString, &WellnessUserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if token == nil {
		return
	}
	claims, valid = token.Claims.(*WellnessUserClaims)
	valid = valid && token.Valid
	return
}
