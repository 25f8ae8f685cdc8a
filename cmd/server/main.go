package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/auctioneer/internal/catalog"
	"github.com/mmynk/auctioneer/internal/middleware"
	"github.com/mmynk/auctioneer/internal/server"
	"github.com/mmynk/auctioneer/internal/service"
	"github.com/mmynk/auctioneer/internal/storage/memory"
	"github.com/mmynk/auctioneer/pkg/logging"
)

// config is the process configuration, parsed from the environment.
// A local .env file is loaded first when present.
type config struct {
	Addr          string        `env:"ADDR" envDefault:":8080"`
	PublicBaseURL string        `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	ResponsesURL string `env:"OPENAI_RESPONSES_URL"`
}

func main() {
	_ = godotenv.Load()
	logging.Setup()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		slog.Error("Failed to parse config", "error", err)
		os.Exit(1)
	}

	store := memory.New(cfg.SessionTTL)
	defer store.Close()
	slog.Info("Session store initialized", "ttl", cfg.SessionTTL)

	provider := catalog.New(catalog.Config{
		APIKey:       cfg.OpenAIAPIKey,
		Model:        cfg.OpenAIModel,
		ResponsesURL: cfg.ResponsesURL,
	})
	if cfg.OpenAIAPIKey == "" {
		slog.Info("Template generation disabled (no OPENAI_API_KEY); built-in templates only")
	}

	svc := service.NewGameService(store, provider)
	mux := server.New(svc, cfg.PublicBaseURL).Routes()

	handler := middleware.Logging(middleware.CORS(middleware.Metrics(mux)))

	// h2c lets browsers and proxies speak HTTP/2 without TLS termination
	// in front of us.
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	slog.Info("Auctioneer server starting", "address", cfg.Addr, "base_url", cfg.PublicBaseURL)
	if err := http.ListenAndServe(cfg.Addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
