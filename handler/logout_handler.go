package handler

import (
	"studybuddy/repository"
	"studybuddy/utils"

	"github.com/gin-gonic/gin"
)

func LogoutHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	sessionID, err := c.Cookie("session_id")
	if err == nil && sessionID != "" {
		if err := sessionRepo.DeleteSession(sessionID); err != nil {
			utils.InternalError(c, "Failed to end session")
			return
		}
	}

	c.SetCookie("session_id", "", -1, "/", "", true, true)
	utils.Success(c, gin.H{"message": "Logged out"})
}
