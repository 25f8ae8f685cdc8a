package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/skip2/go-qrcode"

	"github.com/mmynk/auctioneer/internal/models"
	"github.com/mmynk/auctioneer/internal/service"
)

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"templates": s.svc.Templates(r.Context()),
	})
}

func (s *Server) handleGenerateTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	tmpl, err := s.svc.GenerateTemplate(r.Context(), req.Prompt)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"template": tmpl})
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req service.CreateGameInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	result, err := s.svc.CreateGame(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleJoinGame(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	name := req.Name
	if name == "" {
		name = "Player"
	}
	player, err := s.svc.JoinGame(r.Context(), r.PathValue("id"), name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"player": player})
}

func (s *Server) handleStartGame(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerID string `json:"playerId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := s.svc.StartGame(r.Context(), r.PathValue("id"), req.PlayerID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "started"})
}

func (s *Server) handleSubmitBid(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerID string      `json:"playerId"`
		Amount   json.Number `json:"amount"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	amount, err := req.Amount.Int64()
	if err != nil {
		writeError(w, models.NewError(models.CodeValidation, "Amount must be a number"))
		return
	}
	if err := s.svc.SubmitBid(r.Context(), r.PathValue("id"), req.PlayerID, int(amount)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "accepted"})
}

func (s *Server) handleNextRound(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerID string `json:"playerId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	status, err := s.svc.NextRound(r.Context(), r.PathValue("id"), req.PlayerID)
	if err != nil {
		writeError(w, err)
		return
	}
	result := "next"
	if status == models.StatusCompleted {
		result = "completed"
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": result})
}

func (s *Server) handleGameState(w http.ResponseWriter, r *http.Request) {
	view, err := s.svc.GetState(r.Context(), r.PathValue("id"), r.URL.Query().Get("playerId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// handleJoinQR renders the join link for a game as a QR code PNG, for
// showing on the host's screen.
func (s *Server) handleJoinQR(w http.ResponseWriter, r *http.Request) {
	view, err := s.svc.GetState(r.Context(), r.PathValue("id"), "")
	if err != nil {
		writeError(w, err)
		return
	}

	joinURL := fmt.Sprintf("%s/?game=%s", strings.TrimRight(s.baseURL, "/"), view.GameID)
	png, err := qrcode.Encode(joinURL, qrcode.Medium, 256)
	if err != nil {
		writeError(w, fmt.Errorf("encode qr: %w", err))
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
