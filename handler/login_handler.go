package handler

import (
	"errors"
	"log"

	"studybuddy/middleware"
	"studybuddy/model"
	"studybuddy/repository"
	"studybuddy/services"
	"studybuddy/usecase"
	"studybuddy/utils"

	"github.com/gin-gonic/gin"
)

func LoginHandler(c *gin.Context, usersService *usecase.UsersService, sessionRepo *repository.SessionRepo) {
	var loginReq model.LoginRequest
	if err := c.ShouldBindJSON(&loginReq); err != nil {
		utils.BadRequest(c, "Invalid Request")
		return
	}

	user, err := usersService.Authenticate(c, loginReq.Username, loginReq.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			utils.Unauthorized(c, "Invalid username or password")
			return
		}
		utils.InternalError(c, "Login failed")
		return
	}

	// Accounts created before profiles existed get one here.
	profile, err := usersService.EnsureProfile(c, user)
	if err != nil {
		utils.InternalError(c, "Failed to load profile")
		return
	}

	token, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}
	refreshToken, err := services.GenerateRefreshToken(user.UserID)
	if err != nil {
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	if err := middleware.CreateSession(c, user.UserID, sessionRepo); err != nil {
		log.Printf("Warning: failed to create session for %s: %v", user.UserID, err)
	}

	utils.Success(c, gin.H{
		"message": "Login successful",
		"token":   token,
		"refresh": refreshToken,
		"profile": profile,
	})
}
