package handler

import (
	"errors"
	"time"

	"studybuddy/dto"
	"studybuddy/repository"
	"studybuddy/usecase"
	"studybuddy/utils"

	"github.com/gin-gonic/gin"
)

func ListNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := c.GetString("user_id")

	notes, err := notesService.ListNotes(c, userID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch notes")
		return
	}

	utils.Success(c, dto.ToNoteResponses(notes))
}

func GetNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	note, err := notesService.GetNote(c, noteID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		utils.InternalError(c, "Failed to fetch note")
		return
	}

	utils.Success(c, dto.ToNoteResponse(note))
}

func CreateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := notesService.CreateNote(c, c.GetString("user_id"), &req)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Created(c, dto.ToNoteResponse(note))
}

func UpdateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := notesService.UpdateNote(c, noteID, userID, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, dto.ToNoteResponse(note))
}

func DeleteNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	if err := notesService.DeleteNote(c, noteID, userID); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		utils.InternalError(c, "Failed to delete note")
		return
	}

	utils.Success(c, gin.H{"message": "Note deleted successfully"})
}

func SearchNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := c.GetString("user_id")

	opts := repository.SearchOptions{
		UserID:   userID,
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Tags:     c.QueryArray("tags"),
		SortBy:   c.Query("sort_by"),
	}

	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			utils.BadRequest(c, "Invalid from date")
			return
		}
		opts.DateFrom = t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			utils.BadRequest(c, "Invalid to date")
			return
		}
		// Include the whole day.
		opts.DateTo = t.AddDate(0, 0, 1)
	}

	notes, err := notesService.SearchNotes(c, opts)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, dto.ToNoteResponses(notes))
}

func ListCategoriesHandler(c *gin.Context, notesService *usecase.NotesService) {
	categories, err := notesService.ListCategories(c, c.GetString("user_id"))
	if err != nil {
		utils.InternalError(c, "Failed to fetch categories")
		return
	}

	utils.Success(c, categories)
}
