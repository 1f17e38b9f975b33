package divination

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/yijing/internal/corpus"
)

func TestOpenAIInterpreter(t *testing.T) {
	var gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if len(req.Messages) == 2 {
			gotPrompt = req.Messages[1].Content
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"  守正待时。 "},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	h, _ := corpus.Default().Hexagram(1)
	interp := NewOpenAIInterpreter("test-key", srv.URL+"/v1", "gpt-4o-mini")

	out, err := interp.Interpret(context.Background(), "何时出发？", h)
	require.NoError(t, err)
	assert.Equal(t, "守正待时。", out)
	assert.Contains(t, gotPrompt, "何时出发？")
	assert.Contains(t, gotPrompt, h.Judgment)
}

func TestOpenAIInterpreterError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	}))
	defer srv.Close()

	h, _ := corpus.Default().Hexagram(2)
	interp := NewOpenAIInterpreter("k", srv.URL, "m")
	_, err := interp.Interpret(context.Background(), "q", h)
	assert.Error(t, err)
}
