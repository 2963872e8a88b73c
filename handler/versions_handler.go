package handler

import (
	"errors"

	"studybuddy/dto"
	"studybuddy/repository"
	"studybuddy/usecase"
	"studybuddy/utils"

	"github.com/gin-gonic/gin"
)

func ListVersionsHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	versions, err := notesService.ListVersions(c, noteID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		utils.InternalError(c, "Failed to fetch versions")
		return
	}

	utils.Success(c, versions)
}

func RestoreVersionHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	versionID := c.Param("versionId")
	userID := c.GetString("user_id")

	note, err := notesService.RestoreVersion(c, noteID, versionID, userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNoteNotFound):
			utils.NotFound(c, "Note not found")
		case errors.Is(err, repository.ErrVersionNotFound):
			utils.NotFound(c, "Version not found")
		default:
			utils.InternalError(c, "Failed to restore version")
		}
		return
	}

	utils.Success(c, dto.ToNoteResponse(note))
}
