package dto

type ChatRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type ImproveNoteRequest struct {
	NoteTitle   string `json:"noteTitle" binding:"required"`
	NoteContent string `json:"noteContent" binding:"required"`
}

type ImproveNoteResponse struct {
	ImprovedText string `json:"improvedText"`
	Suggestions  string `json:"suggestions"`
	Feedback     string `json:"feedback"`
}

type GenerateQuizRequest struct {
	NoteContent   string   `json:"noteContent" binding:"required"`
	Subject       string   `json:"subject"`
	QuestionCount int      `json:"questionCount"`
	QuestionTypes []string `json:"questionTypes"`
}

type GenerateExamRequest struct {
	NoteContents  []string `json:"noteContents" binding:"required,min=1"`
	Subject       string   `json:"subject"`
	QuestionCount int      `json:"questionCount"`
	Difficulty    string   `json:"difficulty"`
}

type GenerateFlashcardsRequest struct {
	NoteContent string `json:"noteContent" binding:"required"`
	CardCount   int    `json:"cardCount"`
}
