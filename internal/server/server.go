// Package server exposes the game service over a JSON HTTP API. The API is
// poll-based: clients mutate through short POSTs and repeatedly GET their
// projected view; nothing is pushed.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/auctioneer/internal/service"
)

// Server holds the handlers' dependencies.
type Server struct {
	svc     *service.GameService
	baseURL string
}

// New creates a Server. baseURL is the public URL games are joined at,
// used only to render join QR codes.
func New(svc *service.GameService, baseURL string) *Server {
	return &Server{svc: svc, baseURL: baseURL}
}

// Routes returns the API mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/templates", s.handleTemplates)
	mux.HandleFunc("POST /api/templates/generate", s.handleGenerateTemplate)
	mux.HandleFunc("POST /api/games", s.handleCreateGame)
	mux.HandleFunc("POST /api/games/{id}/join", s.handleJoinGame)
	mux.HandleFunc("POST /api/games/{id}/start", s.handleStartGame)
	mux.HandleFunc("POST /api/games/{id}/bid", s.handleSubmitBid)
	mux.HandleFunc("POST /api/games/{id}/next", s.handleNextRound)
	mux.HandleFunc("GET /api/games/{id}", s.handleGameState)
	mux.HandleFunc("GET /api/games/{id}/qr", s.handleJoinQR)

	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return mux
}
