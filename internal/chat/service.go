// Package chat drives the full per-message sequence: validate the user, load
// history, refresh records, assemble context, invoke the completion
// provider, update in-session memory, and persist the new turn.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/teddyfinance/assistant/internal/assembler"
	"github.com/teddyfinance/assistant/internal/metrics"
	"github.com/teddyfinance/assistant/internal/models"
	"github.com/teddyfinance/assistant/internal/session"
	"github.com/teddyfinance/assistant/internal/summarizer"
)

// greetings skip history persistence when contained in the message.
var greetings = []string{"hi", "hello", "hey"}

// Reply is the outcome of a successfully handled turn.
type Reply struct {
	// Response is the assistant's text. On provider failure it carries the
	// error description instead; the turn still counts as handled.
	Response string

	// UserID is the canonical identifier confirmed by validation.
	UserID string
}

// Service orchestrates conversation turns against per-user session state.
type Service struct {
	identity  IdentityChecker
	history   HistoryReader
	records   RecordReader
	writer    HistoryWriter
	completer Completer
	sessions  *session.Cache
}

// NewService creates a Service with the given collaborators and session cache.
func NewService(identity IdentityChecker, history HistoryReader, records RecordReader, writer HistoryWriter, completer Completer, sessions *session.Cache) *Service {
	return &Service{
		identity:  identity,
		history:   history,
		records:   records,
		writer:    writer,
		completer: completer,
		sessions:  sessions,
	}
}

// HandleMessage runs one conversation turn.
//
// Both inputs must be non-empty after trimming, else ErrInvalidInput before
// any external call. An identifier that fails the existence check yields
// ErrUserNotFound and nothing is persisted. A completion-provider failure is
// swallowed into the response body rather than failing the turn, and the
// canonical identifier is still returned.
func (s *Service) HandleMessage(ctx context.Context, userID, message string) (Reply, error) {
	id := strings.TrimSpace(userID)
	msg := strings.TrimSpace(message)
	if id == "" || msg == "" {
		metrics.TurnsTotal.WithLabelValues(metrics.OutcomeInvalidInput).Inc()
		return Reply{}, fmt.Errorf("%w: message and user id are required", ErrInvalidInput)
	}

	sess := s.sessions.GetOrCreate(id)
	sess.LockTurn()
	defer sess.UnlockTurn()

	canonical, err := s.identity.CheckUser(ctx, id)
	if err != nil {
		slog.Warn("User validation failed", "user_id", id, "error", err)
		metrics.TurnsTotal.WithLabelValues(metrics.OutcomeUserNotFound).Inc()
		return Reply{}, fmt.Errorf("%w: %s", ErrUserNotFound, id)
	}
	sess.SetUserID(canonical)

	// History and records are refreshed every turn from external sources
	// rather than trusting a stale session copy. Both are best-effort.
	sess.SetHistory(s.history.FetchHistory(ctx, canonical))

	if report := s.records.FetchReport(ctx, canonical); report != nil {
		chunks := summarizer.Summarize(report)
		sess.SetChunks(chunks)
		slog.Debug("Loaded expense data chunks", "user_id", canonical, "chunks", len(chunks))
	} else {
		sess.SetChunks(nil)
		slog.Debug("No expense data found", "user_id", canonical)
	}

	contextText := assembler.BuildContext(sess.Chunks(), sess.History(), sess.Memory())
	prompt := assembler.BuildPrompt(contextText, msg)

	start := time.Now()
	response, completeErr := s.completer.ChatCompletion(ctx, assembler.SystemPrompt, prompt)
	metrics.CompletionDuration.Observe(time.Since(start).Seconds())
	if completeErr != nil {
		// Deliberately downgraded: the error text becomes the reply body and
		// the turn proceeds as handled. The failed exchange stays out of
		// in-session memory so it cannot leak into later contexts.
		slog.Error("Completion provider failed", "user_id", canonical, "error", completeErr)
		metrics.TurnsTotal.WithLabelValues(metrics.OutcomeProviderError).Inc()
		response = fmt.Sprintf("Error generating response: %s", completeErr)
	} else {
		metrics.TurnsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
		sess.Remember(models.Turn{Human: msg, Assistant: response})
	}

	if !isGreeting(msg) {
		if err := s.writer.SaveTurn(ctx, canonical, msg, response); err != nil {
			slog.Warn("Failed to save chat history", "user_id", canonical, "error", err)
		}
	}

	return Reply{Response: response, UserID: canonical}, nil
}

// isGreeting reports whether the message contains a recognized greeting,
// case-insensitive.
func isGreeting(message string) bool {
	lower := strings.ToLower(message)
	for _, g := range greetings {
		if strings.Contains(lower, g) {
			return true
		}
	}
	return false
}
