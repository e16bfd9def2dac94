package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenRouterGenerateReply(t *testing.T) {
	var received openRouterRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "  the answer  "}},
			},
		})
	}))
	defer srv.Close()

	provider := NewOpenRouterProvider("test-key", "test-model", "")
	provider.endpoint = srv.URL

	history := []ChatMessage{
		{Role: RoleUser, Content: "earlier question"},
		{Role: RoleAssistant, Content: "earlier answer"},
	}

	reply, err := provider.GenerateReply(context.Background(), "current question", history)
	require.NoError(t, err)
	require.Equal(t, "the answer", reply)

	require.Equal(t, "test-model", received.Model)
	require.Len(t, received.Messages, 4)
	require.Equal(t, "system", received.Messages[0].Role)
	require.Equal(t, "earlier question", received.Messages[1].Content)
	require.Equal(t, "earlier answer", received.Messages[2].Content)
	require.Equal(t, RoleUser, received.Messages[3].Role)
	require.Equal(t, "current question", received.Messages[3].Content)
}

func TestOpenRouterGenerateReplyError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "rate limited"},
		})
	}))
	defer srv.Close()

	provider := NewOpenRouterProvider("test-key", "", "")
	provider.endpoint = srv.URL

	_, err := provider.GenerateReply(context.Background(), "question", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "rate limited")
}

func TestOpenRouterEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer srv.Close()

	provider := NewOpenRouterProvider("test-key", "", "")
	provider.endpoint = srv.URL

	reply, err := provider.GenerateReply(context.Background(), "question", nil)
	require.NoError(t, err)
	require.Equal(t, emptyCompletionReply, reply)
}
