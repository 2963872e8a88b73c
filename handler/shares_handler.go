package handler

import (
	"errors"

	"studybuddy/dto"
	"studybuddy/repository"
	"studybuddy/usecase"
	"studybuddy/utils"

	"github.com/gin-gonic/gin"
)

func ShareNoteHandler(c *gin.Context, sharesService *usecase.SharesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	var req dto.ShareNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	share, err := sharesService.ShareNote(c, userID, noteID, req.Email, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNoteNotFound):
			utils.NotFound(c, "Note not found")
		case errors.Is(err, usecase.ErrRecipientNotFound):
			utils.NotFound(c, err.Error())
		default:
			utils.BadRequest(c, err.Error())
		}
		return
	}

	utils.Created(c, share)
}

func ListSharedWithMeHandler(c *gin.Context, sharesService *usecase.SharesService) {
	shares, err := sharesService.ListSharedWithMe(c, c.GetString("user_id"))
	if err != nil {
		utils.InternalError(c, "Failed to fetch shared notes")
		return
	}

	utils.Success(c, shares)
}

func ListNoteSharesHandler(c *gin.Context, sharesService *usecase.SharesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	shares, err := sharesService.ListNoteShares(c, noteID, userID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch shares")
		return
	}

	utils.Success(c, shares)
}

func RevokeShareHandler(c *gin.Context, sharesService *usecase.SharesService) {
	shareID := c.Param("shareId")
	userID := c.GetString("user_id")

	if err := sharesService.RevokeShare(c, shareID, userID); err != nil {
		if errors.Is(err, repository.ErrShareNotFound) {
			utils.NotFound(c, "Share not found")
			return
		}
		utils.InternalError(c, "Failed to revoke share")
		return
	}

	utils.Success(c, gin.H{"message": "Share revoked"})
}
