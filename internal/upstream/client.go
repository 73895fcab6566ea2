// Package upstream is the HTTP client for the external finance-record and
// history-persistence API. Every call is attempted exactly once with a fixed
// timeout; there is no retry or backoff anywhere in this pipeline.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/teddyfinance/assistant/internal/models"
)

// DefaultTimeout bounds every upstream call.
const DefaultTimeout = 30 * time.Second

// Client talks to the external record store.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the given API base URL. A non-positive timeout
// falls back to DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// CheckUser validates that the identifier corresponds to a real account by
// reading the history endpoint. It returns the trimmed identifier only when
// the store answers 200 with a list-shaped body; an account with zero
// history is still valid. Any other outcome — empty input, non-2xx status,
// malformed JSON, non-list body, network failure — is invalid. Validation
// fails closed: ambiguity never resolves to "valid".
func (c *Client) CheckUser(ctx context.Context, userID string) (string, error) {
	id := strings.TrimSpace(userID)
	if id == "" {
		return "", errors.New("user id is empty")
	}

	body, status, err := c.get(ctx, "/history/get-history", id)
	if err != nil {
		return "", fmt.Errorf("history endpoint unreachable: %w", err)
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("history endpoint returned status %d", status)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(body, &entries); err != nil {
		return "", fmt.Errorf("history body is not a list: %w", err)
	}
	// A JSON null decodes without error but is not a list.
	if entries == nil && strings.TrimSpace(string(body)) != "[]" {
		return "", errors.New("history body is not a list")
	}

	return id, nil
}

// FetchHistory retrieves prior conversation turns for an already-validated
// identifier. History is best-effort: any failure yields an empty sequence
// and must never block the conversation.
func (c *Client) FetchHistory(ctx context.Context, userID string) []models.Turn {
	body, status, err := c.get(ctx, "/history/get-history", userID)
	if err != nil {
		slog.Warn("History fetch failed", "user_id", userID, "error", err)
		return nil
	}
	if status != http.StatusOK {
		slog.Warn("History fetch returned non-200", "user_id", userID, "status", status)
		return nil
	}

	var turns []models.Turn
	if err := json.Unmarshal(body, &turns); err != nil {
		slog.Warn("History body malformed", "user_id", userID, "error", err)
		return nil
	}
	return turns
}

// FetchReport retrieves the structured transaction report for an identifier.
// It returns nil on any failure: 404, other non-200, malformed JSON, an
// empty report, or no identifier given.
func (c *Client) FetchReport(ctx context.Context, userID string) *models.Report {
	id := strings.TrimSpace(userID)
	if id == "" {
		return nil
	}

	body, status, err := c.get(ctx, "/report/monthly", id)
	if err != nil {
		slog.Warn("Report fetch failed", "user_id", id, "error", err)
		return nil
	}
	if status != http.StatusOK {
		return nil
	}

	var report models.Report
	if err := json.Unmarshal(body, &report); err != nil {
		slog.Warn("Report body malformed", "user_id", id, "error", err)
		return nil
	}
	if report.Empty() {
		return nil
	}
	return &report
}

type createHistoryRequest struct {
	UserID    string `json:"userId"`
	Human     string `json:"human"`
	Assistant string `json:"assistant"`
}

// SaveTurn persists one conversation turn via the history-create endpoint.
// The store answers 200 or 201 on success; anything else is a persistence
// failure, which callers log without failing the turn.
func (c *Client) SaveTurn(ctx context.Context, userID, human, assistant string) error {
	payload, err := json.Marshal(createHistoryRequest{
		UserID:    userID,
		Human:     strings.TrimSpace(human),
		Assistant: strings.TrimSpace(assistant),
	})
	if err != nil {
		return fmt.Errorf("marshal history payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/history/create-history", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create history request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("history create request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("history create returned status %d", resp.StatusCode)
	}
	return nil
}

// get issues a GET with the userId query parameter and returns the raw body
// and status. Network-level failures surface as errors; HTTP-level failures
// surface through the status code.
func (c *Client) get(ctx context.Context, path, userID string) ([]byte, int, error) {
	u := c.baseURL + path + "?" + url.Values{"userId": {userID}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return body, resp.StatusCode, nil
}
