// Package storage provides abstractions for game session storage.
package storage

import (
	"context"

	"github.com/mmynk/auctioneer/internal/game"
	"github.com/mmynk/auctioneer/internal/models"
)

// Store defines the interface for session storage operations. Sessions are
// live aggregates, so a Store hands out references and never copies; all
// per-session mutation goes through the session's own lock.
type Store interface {
	// Create builds a new session with the host joined, registers it under
	// a fresh collision-checked game code, and returns the session along
	// with the host's player snapshot.
	Create(ctx context.Context, items []models.Item, hostName string) (*game.Session, models.Player, error)

	// Get retrieves a session by game code (case-insensitive).
	// Returns a NOT_FOUND error for unknown codes.
	Get(ctx context.Context, code string) (*game.Session, error)

	// Close releases any resources held by the store.
	Close() error
}
