package handler

import (
	"encoding/json"

	"studybuddy/dto"
	"studybuddy/usecase"
	"studybuddy/utils"

	"github.com/gin-gonic/gin"
)

// respondAI maps a tagged AI result onto the HTTP response. Structured
// payloads pass through as raw JSON so the client sees exactly what
// the model produced.
func respondAI(c *gin.Context, result usecase.AIResult, key string) {
	switch result.Kind {
	case usecase.AIText:
		utils.Success(c, gin.H{key: result.Text})
	case usecase.AIStructured:
		utils.Success(c, gin.H{key: json.RawMessage(result.Data)})
	default:
		utils.BadGateway(c, result.Err)
	}
}

func ChatHandler(c *gin.Context, aiService *usecase.AIService) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Prompt is required")
		return
	}

	respondAI(c, aiService.Chat(c, req.Prompt), "response")
}

func ImproveNoteHandler(c *gin.Context, aiService *usecase.AIService) {
	var req dto.ImproveNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Note content is required")
		return
	}

	respondAI(c, aiService.ImproveNote(c, req.NoteTitle, req.NoteContent), "result")
}

func GenerateQuizHandler(c *gin.Context, aiService *usecase.AIService) {
	var req dto.GenerateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Note content is required")
		return
	}

	result := aiService.GenerateQuiz(c, req.NoteContent, req.Subject, req.QuestionCount, req.QuestionTypes)
	respondAI(c, result, "questions")
}

func GenerateExamHandler(c *gin.Context, aiService *usecase.AIService) {
	var req dto.GenerateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Notes are required")
		return
	}

	result := aiService.GenerateExam(c, req.NoteContents, req.Subject, req.QuestionCount, req.Difficulty)
	respondAI(c, result, "questions")
}

func GenerateFlashcardsHandler(c *gin.Context, aiService *usecase.AIService) {
	var req dto.GenerateFlashcardsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Note content is required")
		return
	}

	respondAI(c, aiService.GenerateFlashcards(c, req.NoteContent, req.CardCount), "flashcards")
}
