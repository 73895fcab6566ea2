package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/teddyfinance/assistant/internal/chat"
	"github.com/teddyfinance/assistant/internal/config"
	"github.com/teddyfinance/assistant/internal/handler"
	"github.com/teddyfinance/assistant/internal/middleware"
	"github.com/teddyfinance/assistant/internal/openai"
	"github.com/teddyfinance/assistant/internal/session"
	"github.com/teddyfinance/assistant/internal/upstream"
	"github.com/teddyfinance/assistant/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	store := upstream.New(cfg.UpstreamBaseURL, cfg.HTTPTimeout)
	completer := openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIURL, cfg.OpenAIModel, cfg.HTTPTimeout)
	sessions := session.NewCache(cfg.CacheMaxSize)
	service := chat.NewService(store, store, store, store, completer, sessions)

	slog.Info("Assistant initialized",
		"upstream", cfg.UpstreamBaseURL,
		"model", cfg.OpenAIModel,
		"cache_max_size", cfg.CacheMaxSize,
	)

	mux := http.NewServeMux()
	mux.Handle("POST /chat", handler.NewChat(service))
	mux.HandleFunc("GET /{$}", handler.Welcome)
	mux.HandleFunc("GET /status", handler.Status(sessions))
	mux.Handle("GET /metrics", promhttp.Handler())

	// Request-id, logging, and CORS wrap every route.
	root := middleware.RequestID(middleware.Logging(middleware.CORS(mux)))

	// h2c allows HTTP/2 without TLS for local and proxied deployments.
	h2cHandler := h2c.NewHandler(root, &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("Server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
