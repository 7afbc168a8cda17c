package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"spawnsmart/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chatServer(t *testing.T, reply string, capture *[]chatRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if capture != nil {
			*capture = append(*capture, req)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": reply}},
			},
			"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 20, "total_tokens": 30},
		})
	}))
}

func TestSendMessage(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		client := NewClient("", zap.NewNop())
		assert.False(t, client.Configured())

		_, err := client.SendMessage(context.Background(), "hello", SendOptions{})
		assert.ErrorIs(t, err, ErrNoAPIKey)
	})

	t.Run("returns the first choice", func(t *testing.T) {
		var captured []chatRequest
		server := chatServer(t, "use more vermiculite", &captured)
		defer server.Close()

		client := NewClient("key", zap.NewNop(), WithBaseURL(server.URL), WithModel("gpt-4o-mini"))
		completion, err := client.SendMessage(context.Background(), "what now?", SendOptions{})

		require.NoError(t, err)
		assert.Equal(t, "use more vermiculite", completion.Response)
		assert.Equal(t, 30, completion.Usage.TotalTokens)

		require.Len(t, captured, 1)
		assert.Equal(t, "gpt-4o-mini", captured[0].Model)
		assert.Equal(t, 0.7, captured[0].Temperature)
		assert.Equal(t, 1000, captured[0].MaxTokens)
		require.Len(t, captured[0].Messages, 2)
		assert.Equal(t, "system", captured[0].Messages[0].Role)
		assert.Equal(t, "what now?", captured[0].Messages[1].Content)
	})

	t.Run("history is retained and cleared", func(t *testing.T) {
		var captured []chatRequest
		server := chatServer(t, "noted", &captured)
		defer server.Close()

		client := NewClient("key", zap.NewNop(), WithBaseURL(server.URL))

		_, err := client.SendMessage(context.Background(), "first", SendOptions{SaveToHistory: true})
		require.NoError(t, err)
		_, err = client.SendMessage(context.Background(), "second", SendOptions{SaveToHistory: true})
		require.NoError(t, err)

		// second request carries system + first exchange + new message
		require.Len(t, captured, 2)
		require.Len(t, captured[1].Messages, 4)
		assert.Equal(t, "first", captured[1].Messages[1].Content)
		assert.Equal(t, "noted", captured[1].Messages[2].Content)
		assert.Equal(t, "second", captured[1].Messages[3].Content)

		client.ClearHistory()
		_, err = client.SendMessage(context.Background(), "third", SendOptions{})
		require.NoError(t, err)
		require.Len(t, captured, 3)
		assert.Len(t, captured[2].Messages, 2)
	})

	t.Run("api failure surfaces", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := NewClient("key", zap.NewNop(), WithBaseURL(server.URL))
		_, err := client.SendMessage(context.Background(), "hello", SendOptions{})
		assert.Error(t, err)
	})

	t.Run("empty choices is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
		}))
		defer server.Close()

		client := NewClient("key", zap.NewNop(), WithBaseURL(server.URL))
		_, err := client.SendMessage(context.Background(), "hello", SendOptions{})
		assert.Error(t, err)
	})
}

func TestGenerateCultivationAdvice(t *testing.T) {
	var captured []chatRequest
	server := chatServer(t, "keep humidity above 90%", &captured)
	defer server.Close()

	client := NewClient("key", zap.NewNop(), WithBaseURL(server.URL))
	advice, err := client.GenerateCultivationAdvice(context.Background(), domain.CalculatorInput{
		ExperienceLevel: "beginner",
		SpawnAmount:     2,
		SubstrateRatio:  3,
		SubstrateType:   "cvg",
		ContainerSize:   10,
	})

	require.NoError(t, err)
	assert.Equal(t, "keep humidity above 90%", advice)

	require.Len(t, captured, 1)
	prompt := captured[0].Messages[1].Content
	assert.Contains(t, prompt, "Experience level: beginner")
	assert.Contains(t, prompt, "Substrate ratio: 1:3")
	assert.Contains(t, captured[0].Messages[0].Content, "mycology expert")
}
