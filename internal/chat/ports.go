package chat

import (
	"context"

	"github.com/teddyfinance/assistant/internal/models"
)

// Each external call sits behind its own narrow interface so retry policy,
// timeouts, or circuit-breaking can be added later without touching the
// orchestrator's state transitions.

// IdentityChecker confirms an opaque identifier corresponds to a real
// account. It returns the canonical (trimmed) identifier on success and an
// error on any failure; validation fails closed.
type IdentityChecker interface {
	CheckUser(ctx context.Context, userID string) (string, error)
}

// HistoryReader retrieves prior conversation turns for a validated
// identifier. Best-effort: failures yield an empty sequence, never an error.
type HistoryReader interface {
	FetchHistory(ctx context.Context, userID string) []models.Turn
}

// RecordReader fetches the structured transaction report. It returns nil on
// any failure.
type RecordReader interface {
	FetchReport(ctx context.Context, userID string) *models.Report
}

// HistoryWriter persists one conversation turn to the external store.
type HistoryWriter interface {
	SaveTurn(ctx context.Context, userID, human, assistant string) error
}

// Completer invokes the language-model completion provider.
type Completer interface {
	ChatCompletion(ctx context.Context, system, user string) (string, error)
}
