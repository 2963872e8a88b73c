package services

import (
	"time"

	"studybuddy/utils"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken issues a signed access token for the user.
func GenerateToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"iss":     "studybuddy",
		"iat":     now.Unix(),
		"exp":     now.Add(time.Duration(utils.JWTExpirationTime) * time.Second).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(utils.JWTSecretKey))
}

// GenerateRefreshToken issues a signed refresh token for the user.
func GenerateRefreshToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"type":    "refresh",
		"iss":     "studybuddy",
		"iat":     now.Unix(),
		"exp":     now.Add(time.Duration(utils.RefreshTokenExpirationTime) * time.Second).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(utils.JWTSecretKey))
}
