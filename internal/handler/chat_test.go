package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teddyfinance/assistant/internal/chat"
)

type stubService struct {
	reply chat.Reply
	err   error
}

func (s *stubService) HandleMessage(context.Context, string, string) (chat.Reply, error) {
	return s.reply, s.err
}

func postChat(t *testing.T, svc ChatService, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	rec := httptest.NewRecorder()
	NewChat(svc).ServeHTTP(rec, req)
	return rec
}

func TestChatSuccess(t *testing.T) {
	svc := &stubService{reply: chat.Reply{Response: "You spent $50.00.", UserID: "u1"}}
	rec := postChat(t, svc, `{"message":"what did I spend?","user_id":"u1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "You spent $50.00.", resp["response"])
	assert.Equal(t, "u1", resp["user_id"])
	assert.Equal(t, "success", resp["status"])
}

func TestChatErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid input maps to 400", err: chat.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "unknown user maps to 404", err: chat.ErrUserNotFound, wantStatus: http.StatusNotFound},
		{name: "anything else maps to 500", err: context.DeadlineExceeded, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postChat(t, &stubService{err: tt.err}, `{"message":"q","user_id":"u1"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["detail"])
		})
	}
}

func TestChatRejectsMalformedBody(t *testing.T) {
	rec := postChat(t, &stubService{}, `{"message":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWelcome(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	Welcome(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome to Teddy Finance Assistant API!")
}

type stubCounter int

func (c stubCounter) Len() int { return int(c) }

func TestStatus(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()
	Status(stubCounter(3))(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp statusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 3, resp.Sessions)
}
