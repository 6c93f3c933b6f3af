package translation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatServer(t *testing.T, content string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Contains(t, req.Messages[0].Content, `"fr"`)

		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":{"message":"rate limited","type":"requests"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   "gpt-4o-mini",
			"choices": []map[string]interface{}{{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": "stop",
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAITranslate(t *testing.T) {
	srv := newChatServer(t, " 1 aubergine \n", http.StatusOK)

	o := NewOpenAIClient("sk-test", "gpt-4o-mini", srv.URL+"/v1")
	got, err := o.Translate(context.Background(), "1 eggplant", "fr")

	require.NoError(t, err)
	assert.Equal(t, "1 aubergine", got)
}

func TestOpenAITranslateError(t *testing.T) {
	srv := newChatServer(t, "", http.StatusTooManyRequests)

	o := NewOpenAIClient("sk-test", "gpt-4o-mini", srv.URL+"/v1")
	_, err := o.Translate(context.Background(), "1 eggplant", "fr")

	assert.Error(t, err)
}

func TestOpenAIUsageUnsupported(t *testing.T) {
	_, err := QueryUsage(context.Background(), NewOpenAIClient("sk-test", "gpt-4o-mini", ""))
	assert.ErrorIs(t, err, ErrUsageUnsupported)
}
