package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Login checks the admin credentials and returns a signed session token.
// The credentials are a single configured pair compared in plaintext.
func Login(username, password string) (string, error) {
	if username != cfg.AdminUsername || password != cfg.AdminPassword {
		return "", fmt.Errorf("invalid credentials")
	}

	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(time.Hour * 72).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ValidateToken checks an admin session token
func ValidateToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return fmt.Errorf("invalid token")
	}
	return nil
}
