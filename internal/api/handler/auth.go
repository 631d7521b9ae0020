package handler

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"wheely/backend/internal/config"
)

// generateJWT mints a session token for an authenticated account.
func generateJWT(accountID int, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"account_id": accountID,
		"exp":        time.Now().Add(config.TokenValidity).Unix(),
		"iss":        config.TokenIssuer,
		"jti":        uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// validateJWT parses a session token and returns the account id it was
// issued to.
func validateJWT(tokenString string, secret []byte) (int, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}
	// JSON numbers decode as float64.
	id, ok := claims["account_id"].(float64)
	if !ok || id <= 0 {
		return 0, errors.New("token carries no account id")
	}
	return int(id), nil
}
