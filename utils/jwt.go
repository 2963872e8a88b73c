package utils

import (
	"log"
	"os"
	"strconv"
)

var (
	JWTSecretKey               string
	JWTExpirationTime          int64
	RefreshTokenExpirationTime int64
)

// InitJWT loads the JWT signing configuration from the environment.
func InitJWT() {
	if os.Getenv("GO_ENV") == "test" {
		if os.Getenv("JWT_SECRET_KEY") == "" {
			os.Setenv("JWT_SECRET_KEY", "test_secret_key")
		}
		if os.Getenv("JWT_EXPIRATION_TIME") == "" {
			os.Setenv("JWT_EXPIRATION_TIME", "3600")
		}
		if os.Getenv("REFRESH_TOKEN_EXPIRATION_TIME") == "" {
			os.Setenv("REFRESH_TOKEN_EXPIRATION_TIME", "604800")
		}
	}

	JWTSecretKey = os.Getenv("JWT_SECRET_KEY")
	if JWTSecretKey == "" {
		log.Fatal("JWT Secret Key not set")
	}

	var err error
	JWTExpirationTime, err = strconv.ParseInt(os.Getenv("JWT_EXPIRATION_TIME"), 10, 64)
	if err != nil {
		log.Fatal("Error parsing JWT expiration time")
	}

	RefreshTokenExpirationTime, err = strconv.ParseInt(os.Getenv("REFRESH_TOKEN_EXPIRATION_TIME"), 10, 64)
	if err != nil {
		log.Fatal("Error parsing refresh token expiration time")
	}
}
