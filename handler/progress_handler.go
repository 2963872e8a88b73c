package handler

import (
	"errors"
	"strconv"

	"studybuddy/dto"
	"studybuddy/usecase"
	"studybuddy/utils"

	"github.com/gin-gonic/gin"
)

func AddMinutesHandler(c *gin.Context, progressService *usecase.ProgressService) {
	var req dto.AddMinutesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if err := progressService.AddMinutes(c, c.GetString("user_id"), req.Minutes); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Progress recorded"})
}

func RecordQuizDoneHandler(c *gin.Context, progressService *usecase.ProgressService) {
	if err := progressService.RecordQuizDone(c, c.GetString("user_id")); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Quiz recorded"})
}

func ProgressSummaryHandler(c *gin.Context, progressService *usecase.ProgressService) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil {
		utils.BadRequest(c, "Invalid days parameter")
		return
	}

	summary, err := progressService.Summary(c, c.GetString("user_id"), days)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidRange) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, "Failed to compute progress summary")
		return
	}

	utils.Success(c, summary)
}
