// Package service wires the transport layer to the domain: it validates
// and coerces incoming payloads, owns the catalog and store collaborators,
// and forwards actions to the session state machine. No game rules live
// here.
package service

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mmynk/auctioneer/internal/catalog"
	"github.com/mmynk/auctioneer/internal/models"
	"github.com/mmynk/auctioneer/internal/storage"
)

// GameService orchestrates game lifecycle operations over the session
// store and the template catalog.
type GameService struct {
	store   storage.Store
	catalog catalog.Provider
}

// NewGameService creates a GameService with the given collaborators.
func NewGameService(store storage.Store, provider catalog.Provider) *GameService {
	return &GameService{store: store, catalog: provider}
}

// ItemInput is a caller-supplied item. Value is a json.Number so both
// `420` and `"420"` coerce, but anything non-integer fails validation.
type ItemInput struct {
	Emoji string      `json:"emoji"`
	Name  string      `json:"name"`
	Value json.Number `json:"value"`
}

// CreateGameInput is the session-creation request. Exactly one item source
// is selected, in precedence order: TemplateID, then Items, then
// GeneratedItems (the payload a generation response hands back).
type CreateGameInput struct {
	HostName       string      `json:"hostName"`
	TemplateID     string      `json:"templateId"`
	Items          []ItemInput `json:"items"`
	GeneratedItems []ItemInput `json:"generatedItems"`
}

// CreateGameResult is returned to the creator. Player carries the host's
// bearer token; it is never exposed to anyone else.
type CreateGameResult struct {
	GameID string            `json:"gameId"`
	Player models.PlayerView `json:"player"`
}

// Templates returns the built-in templates.
func (s *GameService) Templates(_ context.Context) []models.Template {
	return s.catalog.Templates()
}

// GenerateTemplate builds a template from a free-text prompt via the
// catalog's generator.
func (s *GameService) GenerateTemplate(ctx context.Context, prompt string) (models.Template, error) {
	tmpl, err := s.catalog.Generate(ctx, prompt)
	if err != nil {
		slog.Warn("Template generation failed", "error", err)
		return models.Template{}, err
	}
	templatesGenerated.Inc()
	return tmpl, nil
}

// CreateGame validates the request, materializes the item list, and
// registers a new session with the caller as host.
func (s *GameService) CreateGame(ctx context.Context, req CreateGameInput) (CreateGameResult, error) {
	hostName := req.HostName
	if hostName == "" {
		hostName = "Host"
	}
	hostName = strings.TrimSpace(hostName)
	if hostName == "" {
		return CreateGameResult{}, models.NewError(models.CodeValidation, "Host name is required")
	}

	source, err := s.itemSource(req)
	if err != nil {
		return CreateGameResult{}, err
	}
	items, err := prepareItems(source)
	if err != nil {
		return CreateGameResult{}, err
	}
	if len(items) == 0 {
		return CreateGameResult{}, models.NewError(models.CodeValidation, "At least one item is required")
	}

	session, host, err := s.store.Create(ctx, items, hostName)
	if err != nil {
		return CreateGameResult{}, fmt.Errorf("create session: %w", err)
	}
	gamesCreated.Inc()
	slog.Info("Game created", "game_id", session.ID(), "items", len(items), "host", host.Name)

	return CreateGameResult{
		GameID: session.ID(),
		Player: models.PlayerView{ID: host.ID, Name: host.Name, Balance: host.Balance, IsHost: true},
	}, nil
}

// JoinGame adds a player to a lobby-phase session.
func (s *GameService) JoinGame(ctx context.Context, code, name string) (models.PlayerView, error) {
	session, err := s.store.Get(ctx, code)
	if err != nil {
		return models.PlayerView{}, err
	}
	player, err := session.Join(name)
	if err != nil {
		return models.PlayerView{}, err
	}
	playersJoined.Inc()
	slog.Info("Player joined", "game_id", session.ID(), "player", player.Name)
	return models.PlayerView{ID: player.ID, Name: player.Name, Balance: player.Balance}, nil
}

// StartGame begins the first bidding round. Host only.
func (s *GameService) StartGame(ctx context.Context, code, playerID string) error {
	session, err := s.store.Get(ctx, code)
	if err != nil {
		return err
	}
	if err := session.Start(playerID); err != nil {
		return err
	}
	slog.Info("Game started", "game_id", session.ID())
	return nil
}

// SubmitBid places a sealed bid; the roster-completing bid resolves the
// round synchronously.
func (s *GameService) SubmitBid(ctx context.Context, code, playerID string, amount int) error {
	session, err := s.store.Get(ctx, code)
	if err != nil {
		return err
	}
	resolved, err := session.PlaceBid(playerID, amount)
	if err != nil {
		return err
	}
	bidsPlaced.Inc()
	if resolved {
		roundsResolved.Inc()
		slog.Info("Round resolved", "game_id", session.ID())
	}
	return nil
}

// NextRound advances past a reveal. Returns the resulting status so the
// caller can tell a normal advance from game completion.
func (s *GameService) NextRound(ctx context.Context, code, playerID string) (models.Status, error) {
	session, err := s.store.Get(ctx, code)
	if err != nil {
		return "", err
	}
	if err := session.Advance(playerID); err != nil {
		return "", err
	}
	status := session.Status()
	if status == models.StatusCompleted {
		gamesCompleted.Inc()
		slog.Info("Game completed", "game_id", session.ID())
	}
	return status, nil
}

// GetState returns the viewer-specific projection. Safe to poll; no side
// effects.
func (s *GameService) GetState(ctx context.Context, code, viewerID string) (models.GameView, error) {
	session, err := s.store.Get(ctx, code)
	if err != nil {
		return models.GameView{}, err
	}
	return session.View(viewerID), nil
}

// itemSource picks exactly one item source for a new game.
func (s *GameService) itemSource(req CreateGameInput) ([]ItemInput, error) {
	if req.TemplateID != "" {
		for _, tmpl := range s.catalog.Templates() {
			if tmpl.ID == req.TemplateID {
				return templateItems(tmpl), nil
			}
		}
		return nil, models.NewError(models.CodeNotFound, "Template not found")
	}
	if len(req.Items) > 0 {
		return req.Items, nil
	}
	if len(req.GeneratedItems) > 0 {
		return req.GeneratedItems, nil
	}
	return nil, models.NewError(models.CodeValidation, "Template or custom items required")
}

func templateItems(tmpl models.Template) []ItemInput {
	items := make([]ItemInput, 0, len(tmpl.Items))
	for _, it := range tmpl.Items {
		items = append(items, ItemInput{
			Emoji: it.Emoji,
			Name:  it.Name,
			Value: json.Number(fmt.Sprint(it.Value)),
		})
	}
	return items
}

// prepareItems mints identities and normalizes caller-supplied items.
// Any value that does not coerce to an integer fails the whole request.
func prepareItems(source []ItemInput) ([]models.Item, error) {
	items := make([]models.Item, 0, len(source))
	for _, raw := range source {
		value, err := raw.Value.Int64()
		if err != nil {
			return nil, models.NewError(models.CodeValidation, "Item values must be numbers")
		}
		name := strings.TrimSpace(raw.Name)
		if name == "" {
			name = "Mystery Item"
		}
		if runes := []rune(name); len(runes) > 40 {
			name = string(runes[:40])
		}
		emoji := raw.Emoji
		if emoji == "" {
			emoji = "❓"
		}
		items = append(items, models.Item{
			ID:    newItemID(),
			Emoji: emoji,
			Name:  name,
			Value: int(value),
		})
	}
	return items, nil
}

func newItemID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
