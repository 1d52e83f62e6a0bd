package utils

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

const SessionCookieName = "session"

const sessionLifetime = 24 * time.Hour

// GenerateSessionToken signs a token carrying only the logged_in flag.
// There is a single admin identity, so no subject claim exists.
func GenerateSessionToken(secret string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"logged_in": true,
		"iat":       now.Unix(),
		"exp":       now.Add(sessionLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken reports whether tokenString is a valid admin
// session.
func ParseSessionToken(secret, tokenString string) error {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return errors.New("invalid token")
	}

	loggedIn, ok := claims["logged_in"].(bool)
	if !ok || !loggedIn {
		return errors.New("session is not logged in")
	}
	return nil
}
