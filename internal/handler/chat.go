// Package handler exposes the JSON HTTP surface of the assistant: the chat
// entrypoint plus welcome and status routes.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/teddyfinance/assistant/internal/chat"
)

// ChatService is the core contract consumed by the entrypoint layer.
type ChatService interface {
	HandleMessage(ctx context.Context, userID, message string) (chat.Reply, error)
}

// SessionCounter reports the current session-cache occupancy for the status
// route.
type SessionCounter interface {
	Len() int
}

// Chat handles POST /chat.
type Chat struct {
	service ChatService
}

// NewChat creates the chat handler.
func NewChat(service ChatService) *Chat {
	return &Chat{service: service}
}

type chatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type chatResponse struct {
	Response string `json:"response"`
	UserID   string `json:"user_id"`
	Status   string `json:"status"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// ServeHTTP decodes the chat request, runs one turn, and maps the core's
// error taxonomy onto HTTP statuses: invalid input 400, unknown user 404,
// anything else 500.
func (h *Chat) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	reply, err := h.service.HandleMessage(r.Context(), req.UserID, req.Message)
	switch {
	case err == nil:
	case errors.Is(err, chat.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Message and user ID are required and cannot be empty.")
		return
	case errors.Is(err, chat.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "Unable to fetch chat data. User not found.")
		return
	default:
		slog.Error("Chat turn failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Error processing chat.")
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Response: reply.Response,
		UserID:   reply.UserID,
		Status:   "success",
	})
}

// Welcome handles GET /.
func Welcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to Teddy Finance Assistant API!",
	})
}

type statusResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Sessions int    `json:"sessions"`
}

// Status returns a handler for GET /status reporting service readiness and
// session-cache occupancy.
func Status(sessions SessionCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, statusResponse{
			Status:   "ok",
			Message:  "Teddy is ready to chat.",
			Sessions: sessions.Len(),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}
