package handler

import (
	"errors"

	"studybuddy/repository"
	"studybuddy/usecase"
	"studybuddy/utils"

	"github.com/gin-gonic/gin"
)

func GetProfileHandler(c *gin.Context, usersService *usecase.UsersService) {
	profile, err := usersService.GetProfile(c, c.GetString("user_id"))
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			utils.NotFound(c, "Profile not found")
			return
		}
		utils.InternalError(c, "Failed to fetch profile")
		return
	}

	utils.Success(c, profile)
}

func MarkIntroSeenHandler(c *gin.Context, usersService *usecase.UsersService) {
	if err := usersService.MarkIntroSeen(c, c.GetString("user_id")); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			utils.NotFound(c, "Profile not found")
			return
		}
		utils.InternalError(c, "Failed to update profile")
		return
	}

	utils.Success(c, gin.H{"message": "Intro marked as seen"})
}

func UpdateDisplayNameHandler(c *gin.Context, usersService *usecase.UsersService) {
	var req struct {
		DisplayName string `json:"display_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Display name is required")
		return
	}

	if err := usersService.UpdateDisplayName(c, c.GetString("user_id"), req.DisplayName); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			utils.NotFound(c, "Profile not found")
			return
		}
		utils.InternalError(c, "Failed to update profile")
		return
	}

	utils.Success(c, gin.H{"message": "Profile updated"})
}
