package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatCompletionSuccess(t *testing.T) {
	var gotReq map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotReq))
		w.Write([]byte(`{"choices":[{"message":{"content":"  You spent $50.00.  "}}]}`))
	}))
	defer server.Close()

	client := NewClient("sk-test", server.URL, "gpt-4o-mini", time.Second)
	got, err := client.ChatCompletion(context.Background(), "system prompt", "user prompt")
	require.NoError(t, err)
	assert.Equal(t, "You spent $50.00.", got)

	assert.Equal(t, "gpt-4o-mini", gotReq["model"])
	assert.EqualValues(t, 800, gotReq["max_tokens"])
	assert.InDelta(t, 0.7, gotReq["temperature"], 0.001)
	messages := gotReq["messages"].([]any)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Equal(t, "user", messages[1].(map[string]any)["role"])
}

func TestChatCompletionFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{name: "non-success status", handler: func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
		}},
		{name: "malformed body", handler: func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{choices`))
		}},
		{name: "no choices", handler: func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		}},
		{name: "empty content", handler: func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[{"message":{"content":"   "}}]}`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient("sk-test", server.URL, "", time.Second)
			_, err := client.ChatCompletion(context.Background(), "s", "u")
			assert.Error(t, err)
		})
	}
}

func TestChatCompletionNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient("sk-test", server.URL, "", time.Second)
	_, err := client.ChatCompletion(context.Background(), "s", "u")
	assert.Error(t, err)
}
