package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studybuddy/config"
)

func TestParseStructured(t *testing.T) {
	t.Run("CleanObject", func(t *testing.T) {
		data, err := parseStructured(`{"improvedText": "better"}`, false)
		if err != nil {
			t.Fatal("clean JSON object failed to parse:", err)
		}
		var out map[string]string
		if err := json.Unmarshal(data, &out); err != nil {
			t.Fatal(err)
		}
		if out["improvedText"] != "better" {
			t.Errorf("unexpected payload: %v", out)
		}
	})

	t.Run("ObjectWrappedInProse", func(t *testing.T) {
		reply := "Here is the improved note:\n\n{\"improvedText\": \"better\"}\n\nHope this helps!"
		data, err := parseStructured(reply, false)
		if err != nil {
			t.Fatal("wrapped object failed to parse:", err)
		}
		if !json.Valid(data) {
			t.Error("extracted payload is not valid JSON")
		}
	})

	t.Run("ArrayInCodeFence", func(t *testing.T) {
		reply := "```json\n[{\"question\": \"What is 2+2?\"}]\n```"
		data, err := parseStructured(reply, true)
		if err != nil {
			t.Fatal("fenced array failed to parse:", err)
		}
		var out []map[string]string
		if err := json.Unmarshal(data, &out); err != nil {
			t.Fatal(err)
		}
		if len(out) != 1 {
			t.Errorf("expected one question, got %d", len(out))
		}
	})

	t.Run("NoJSONAtAll", func(t *testing.T) {
		if _, err := parseStructured("Sorry, I cannot help with that.", true); err == nil {
			t.Error("expected an error for a reply without JSON")
		}
	})
}

func upstreamStub(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected upstream path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing bearer token")
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": reply}},
			},
		})
	}))
}

func testAIService(baseURL string) *AIService {
	return NewAIService(config.AIConfig{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Model:   "gpt-4o-mini",
		Timeout: 5 * time.Second,
	})
}

func TestChatReturnsModelReply(t *testing.T) {
	server := upstreamStub(t, "Photosynthesis converts light into chemical energy.")
	defer server.Close()

	result := testAIService(server.URL).Chat(context.Background(), "Explain photosynthesis")
	if result.Kind != AIText {
		t.Fatalf("expected text result, got kind %d (%s)", result.Kind, result.Err)
	}
	if result.Text != "Photosynthesis converts light into chemical energy." {
		t.Errorf("unexpected reply: %q", result.Text)
	}
}

func TestChatFallsBackWhenUpstreamUnreachable(t *testing.T) {
	// Closed server: the transport error must surface as the friendly
	// fallback text, not an error result.
	server := upstreamStub(t, "unused")
	server.Close()

	result := testAIService(server.URL).Chat(context.Background(), "Explain photosynthesis")
	if result.Kind != AIText {
		t.Fatalf("expected text result, got kind %d", result.Kind)
	}
	if result.Text != ChatFallback {
		t.Errorf("expected fallback message, got %q", result.Text)
	}
}

func TestChatRejectsEmptyPrompt(t *testing.T) {
	result := testAIService("http://unused").Chat(context.Background(), "   ")
	if result.Kind != AIError {
		t.Fatalf("expected error result, got kind %d", result.Kind)
	}
}

func TestGenerateQuizParsesWrappedArray(t *testing.T) {
	reply := "Here is your quiz:\n[{\"type\": \"true_false\", \"question\": \"The sky is blue.\", \"correct_answer\": \"true\"}]"
	server := upstreamStub(t, reply)
	defer server.Close()

	result := testAIService(server.URL).GenerateQuiz(context.Background(),
		"The sky appears blue due to Rayleigh scattering.", "Physics", 1, nil)
	if result.Kind != AIStructured {
		t.Fatalf("expected structured result, got kind %d (%s)", result.Kind, result.Err)
	}

	var questions []map[string]interface{}
	if err := json.Unmarshal(result.Data, &questions); err != nil {
		t.Fatal(err)
	}
	if len(questions) != 1 {
		t.Errorf("expected 1 question, got %d", len(questions))
	}
}

func TestGenerateQuizUnparsableReply(t *testing.T) {
	server := upstreamStub(t, "I am unable to create a quiz from this content.")
	defer server.Close()

	result := testAIService(server.URL).GenerateQuiz(context.Background(),
		"some content", "History", 3, nil)
	if result.Kind != AIError {
		t.Fatalf("expected error result, got kind %d", result.Kind)
	}
}

func TestImproveNoteStructuredResult(t *testing.T) {
	reply := `{"improvedText": "Better notes.", "suggestions": "Added structure", "feedback": "Good start"}`
	server := upstreamStub(t, reply)
	defer server.Close()

	result := testAIService(server.URL).ImproveNote(context.Background(), "Biology", "cells r small")
	if result.Kind != AIStructured {
		t.Fatalf("expected structured result, got kind %d (%s)", result.Kind, result.Err)
	}

	var out struct {
		ImprovedText string `json:"improvedText"`
	}
	if err := json.Unmarshal(result.Data, &out); err != nil {
		t.Fatal(err)
	}
	if out.ImprovedText != "Better notes." {
		t.Errorf("unexpected improvedText: %q", out.ImprovedText)
	}
}
