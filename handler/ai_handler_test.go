package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"studybuddy/config"
	"studybuddy/usecase"

	"github.com/gin-gonic/gin"
)

func init() {
	os.Setenv("GO_ENV", "test")
	gin.SetMode(gin.TestMode)
}

func aiTestRouter(upstream string) *gin.Engine {
	aiService := usecase.NewAIService(config.AIConfig{
		BaseURL: upstream,
		APIKey:  "test-key",
		Model:   "gpt-4o-mini",
		Timeout: 5 * time.Second,
	})

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Next()
	})
	router.POST("/ai/chat", func(c *gin.Context) {
		ChatHandler(c, aiService)
	})
	router.POST("/ai/generate-quiz", func(c *gin.Context) {
		GenerateQuizHandler(c, aiService)
	})
	return router
}

func stubUpstream(reply string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": reply}},
			},
		})
	}))
}

func TestChatHandlerReturnsReply(t *testing.T) {
	upstream := stubUpstream("Mitochondria are the powerhouse of the cell.")
	defer upstream.Close()

	router := aiTestRouter(upstream.URL)

	body, _ := json.Marshal(map[string]string{"prompt": "What are mitochondria?"})
	req := httptest.NewRequest(http.MethodPost, "/ai/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Response string `json:"response"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Data.Response != "Mitochondria are the powerhouse of the cell." {
		t.Errorf("unexpected response: %q", resp.Data.Response)
	}
}

func TestChatHandlerRejectsMissingPrompt(t *testing.T) {
	router := aiTestRouter("http://unused")

	req := httptest.NewRequest(http.MethodPost, "/ai/chat", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestGenerateQuizHandlerPassesThroughQuestions(t *testing.T) {
	upstream := stubUpstream(`[{"type": "true_false", "question": "Water boils at 100C at sea level.", "correct_answer": "true"}]`)
	defer upstream.Close()

	router := aiTestRouter(upstream.URL)

	body, _ := json.Marshal(map[string]interface{}{
		"noteContent":   "Water boils at 100 degrees Celsius at sea level.",
		"subject":       "Physics",
		"questionCount": 1,
	})
	req := httptest.NewRequest(http.MethodPost, "/ai/generate-quiz", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Questions []map[string]interface{} `json:"questions"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Data.Questions) != 1 {
		t.Errorf("expected 1 question, got %d", len(resp.Data.Questions))
	}
}

func TestGenerateQuizHandlerUpstreamDown(t *testing.T) {
	upstream := stubUpstream("unused")
	upstream.Close()

	router := aiTestRouter(upstream.URL)

	body, _ := json.Marshal(map[string]interface{}{"noteContent": "content"})
	req := httptest.NewRequest(http.MethodPost, "/ai/generate-quiz", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", w.Code)
	}
}
