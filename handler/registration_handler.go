package handler

import (
	"strings"

	"studybuddy/model"
	"studybuddy/services"
	"studybuddy/usecase"
	"studybuddy/utils"

	"github.com/gin-gonic/gin"
)

func RegistrationHandler(c *gin.Context, usersService *usecase.UsersService) {
	var req model.User
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	if err := utils.Validate.Struct(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}
	if !utils.ValidatePassword(req.Password) {
		utils.BadRequest(c, "Password must be at least 6 characters with a number and a special character")
		return
	}

	user, err := usersService.CreateUser(c, req.Username, req.Email, req.Password)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			utils.Conflict(c, "Username or email already exists")
			return
		}
		utils.BadRequest(c, "Invalid request")
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

	utils.Created(c, gin.H{
		"user_id": user.UserID,
		"token":   token,
		"refresh": refreshToken,
	})
}
