package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"studybuddy/config"
	"studybuddy/utils"
)

// ChatFallback is returned to the client when the upstream model
// cannot be reached during a chat turn.
const ChatFallback = "Undskyld, der opstod en fejl i kommunikationen med AI-assistenten. Prøv venligst igen."

var (
	ErrEmptyPrompt     = errors.New("prompt is required")
	ErrUpstreamFailure = errors.New("upstream model request failed")
	ErrUnparsableReply = errors.New("could not parse model reply")
)

var (
	jsonObjectPattern = regexp.MustCompile(`\{[\s\S]*\}`)
	jsonArrayPattern  = regexp.MustCompile(`\[[\s\S]*\]`)
)

// AIResult is the single outcome type of every AI capability. Exactly
// one shape is populated, decided at the upstream boundary: plain
// text, parsed structured data, or an error message fit for display.
type AIResult struct {
	Kind AIResultKind
	Text string          // Kind == AIText
	Data json.RawMessage // Kind == AIStructured
	Err  string          // Kind == AIError
}

type AIResultKind int

const (
	AIText AIResultKind = iota
	AIStructured
	AIError
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

type AIService struct {
	Config config.AIConfig
	Client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		Config: cfg,
		Client: &http.Client{Timeout: cfg.Timeout},
	}
}

// complete sends one system+user exchange to the upstream
// OpenAI-compatible API and returns the raw reply text.
func (svc *AIService) complete(ctx context.Context, system string, user string, maxTokens int) (string, error) {
	if svc.Config.APIKey == "" {
		return "", errors.New("AI API key not configured")
	}

	body, err := json.Marshal(chatCompletionRequest{
		Model: svc.Config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	url := strings.TrimSuffix(svc.Config.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+svc.Config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := svc.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("%w: %s", ErrUpstreamFailure, parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", ErrUpstreamFailure)
	}

	return parsed.Choices[0].Message.Content, nil
}

// parseStructured extracts JSON from a model reply. Models sometimes
// wrap the payload in prose or code fences, so a direct parse is
// followed by a bracket-matching fallback.
func parseStructured(reply string, wantArray bool) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(reply)
	if json.Valid([]byte(trimmed)) {
		return json.RawMessage(trimmed), nil
	}

	pattern := jsonObjectPattern
	if wantArray {
		pattern = jsonArrayPattern
	}
	if match := pattern.FindString(reply); match != "" && json.Valid([]byte(match)) {
		return json.RawMessage(match), nil
	}

	return nil, ErrUnparsableReply
}

// Chat answers a free-form study question. On transport failure the
// result carries a user-facing fallback message rather than an
// internal error.
func (svc *AIService) Chat(ctx context.Context, prompt string) AIResult {
	if strings.TrimSpace(prompt) == "" {
		return AIResult{Kind: AIError, Err: ErrEmptyPrompt.Error()}
	}

	const system = "You are a helpful AI study mentor. Provide clear, educational responses to help students learn and understand concepts better. Keep responses concise but informative."

	reply, err := svc.complete(ctx, system, prompt, 500)
	if err != nil {
		utils.TrackAICall("chat", "error")
		return AIResult{Kind: AIText, Text: ChatFallback}
	}

	utils.TrackAICall("chat", "success")
	return AIResult{Kind: AIText, Text: reply}
}

// ImproveNote rewrites a note for structure and clarity and explains
// what changed.
func (svc *AIService) ImproveNote(ctx context.Context, noteTitle string, noteContent string) AIResult {
	if strings.TrimSpace(noteContent) == "" {
		return AIResult{Kind: AIError, Err: "note content is required"}
	}

	const system = "You are an experienced study coach who helps students improve their note-taking. Always return valid JSON."

	prompt := fmt.Sprintf(`Analyze and improve the following study note. Provide:

1. An improved version with better structure, clarity, and completeness
2. Specific suggestions for what was improved
3. Constructive feedback on the original note

Note Title: %s

Original Content:
%s

Return a JSON object with:
{
  "improvedText": "the improved note content",
  "suggestions": "list of specific improvements made",
  "feedback": "constructive feedback for the student"
}

Return only valid JSON.`, noteTitle, noteContent)

	return svc.structured(ctx, "improve_note", system, prompt, 2000, false)
}

// GenerateQuiz produces quiz questions from note content.
func (svc *AIService) GenerateQuiz(ctx context.Context, noteContent string, subject string, questionCount int, questionTypes []string) AIResult {
	if strings.TrimSpace(noteContent) == "" {
		return AIResult{Kind: AIError, Err: "note content is required"}
	}
	if questionCount <= 0 {
		questionCount = 5
	}
	if len(questionTypes) == 0 {
		questionTypes = []string{"multiple_choice", "true_false"}
	}

	const system = "You are a helpful assistant that creates educational quiz questions. Always return valid JSON."

	prompt := fmt.Sprintf(`Create a quiz with %d questions based on the following content about %s.

Question types to include: %s

Note content:
%s

Format as a JSON array where each question has:
- type: "multiple_choice" or "true_false"
- question: the question text
- options: array of options (for multiple choice)
- correct_answer: the correct answer
- explanation: brief explanation of why this is correct

Return only the JSON array.`, questionCount, subject, strings.Join(questionTypes, ", "), noteContent)

	return svc.structured(ctx, "generate_quiz", system, prompt, 2000, true)
}

// GenerateExam builds a mixed-format exam from a set of notes.
func (svc *AIService) GenerateExam(ctx context.Context, noteContents []string, subject string, questionCount int, difficulty string) AIResult {
	if len(noteContents) == 0 {
		return AIResult{Kind: AIError, Err: "at least one note is required"}
	}
	if questionCount <= 0 {
		questionCount = 10
	}
	if difficulty == "" {
		difficulty = "medium"
	}

	const system = "You are an experienced educator creating comprehensive exam questions. Always return valid JSON."

	prompt := fmt.Sprintf(`Create a comprehensive exam with %d questions for %s at %s difficulty level.

Study materials:
%s

Create a mix of:
- Multiple choice questions (60%%)
- True/False questions (20%%)
- Short answer questions (20%%)

Format as JSON array where each question has:
- type: "multiple_choice", "true_false", or "short_answer"
- question: the question text
- options: array of options (for multiple choice)
- correct_answer: the correct answer
- points: point value (1-5 based on difficulty)
- explanation: brief explanation

Return only the JSON array.`, questionCount, subject, difficulty, strings.Join(noteContents, "\n\n---\n\n"))

	return svc.structured(ctx, "generate_exam", system, prompt, 3000, true)
}

// GenerateFlashcards turns note content into question/answer cards.
func (svc *AIService) GenerateFlashcards(ctx context.Context, noteContent string, count int) AIResult {
	if strings.TrimSpace(noteContent) == "" {
		return AIResult{Kind: AIError, Err: "note content is required"}
	}
	if count <= 0 {
		count = 10
	}

	const system = "You are a helpful assistant that creates effective study flashcards. Always return valid JSON."

	prompt := fmt.Sprintf(`Based on the following note content, generate %d flashcards for studying. Each flashcard should have a question (front) and answer (back). Format as JSON array with objects containing "front" and "back" fields. Make questions clear and answers concise.

Note content:
%s

Return only the JSON array.`, count, noteContent)

	return svc.structured(ctx, "generate_flashcards", system, prompt, 2000, true)
}

func (svc *AIService) structured(ctx context.Context, capability string, system string, prompt string, maxTokens int, wantArray bool) AIResult {
	reply, err := svc.complete(ctx, system, prompt, maxTokens)
	if err != nil {
		utils.TrackAICall(capability, "error")
		return AIResult{Kind: AIError, Err: err.Error()}
	}

	data, err := parseStructured(reply, wantArray)
	if err != nil {
		utils.TrackAICall(capability, "parse_error")
		return AIResult{Kind: AIError, Err: err.Error()}
	}

	utils.TrackAICall(capability, "success")
	return AIResult{Kind: AIStructured, Data: data}
}
