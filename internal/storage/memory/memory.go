// Package memory provides the in-memory implementation of storage.Store.
//
// Sessions live for the lifetime of the process; cross-restart persistence
// is deliberately out of scope. A background janitor evicts sessions that
// have been idle past the configured TTL so abandoned games do not
// accumulate.
package memory

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/mmynk/auctioneer/internal/game"
	"github.com/mmynk/auctioneer/internal/models"
	"github.com/mmynk/auctioneer/internal/storage"
)

const (
	// codeAlphabet and codeLen define the short human-typeable game code.
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLen      = 6

	// sweepInterval is how often the janitor scans for idle sessions.
	sweepInterval = 10 * time.Minute
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store implements storage.Store with a code-keyed in-memory map.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*game.Session

	ttl  time.Duration
	done chan struct{}
}

// New creates a Store. A positive ttl starts a janitor goroutine that
// evicts sessions idle longer than ttl; zero disables eviction.
//
// The sweep holds only the store lock. It can only reach sessions through
// the map, and an in-flight action holds a session reference obtained
// before its lock, so eviction never races an ongoing resolution: the
// evicted session simply becomes unreachable for later lookups.
func New(ttl time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]*game.Session),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	if ttl > 0 {
		go s.janitor()
	}
	return s
}

// Create builds and registers a new session under a fresh game code.
func (s *Store) Create(_ context.Context, items []models.Item, hostName string) (*game.Session, models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	code := s.newCode()
	session, host := game.New(code, hostName, items)
	s.sessions[code] = session
	return session, host, nil
}

// Get retrieves a session by code. Codes are normalized to upper case so
// hand-typed codes match.
func (s *Store) Get(_ context.Context, code string) (*game.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, models.ErrNotFound()
	}
	return session, nil
}

// Close stops the janitor.
func (s *Store) Close() error {
	close(s.done)
	return nil
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// newCode generates a collision-free game code. Caller holds the write
// lock, so check-then-insert is atomic; on collision we regenerate, never
// overwrite.
func (s *Store) newCode() string {
	for {
		b := make([]byte, codeLen)
		for i := range b {
			b[i] = codeAlphabet[rand.IntN(len(codeAlphabet))]
		}
		code := string(b)
		if _, exists := s.sessions[code]; !exists {
			return code
		}
	}
}

func (s *Store) janitor() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.sweep(time.Now())
		case <-s.done:
			return
		}
	}
}

// sweep evicts sessions idle past the TTL.
func (s *Store) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for code, session := range s.sessions {
		if now.Sub(session.LastActive()) > s.ttl {
			delete(s.sessions, code)
			slog.Info("Evicted idle game", "game_id", code, "status", session.Status())
		}
	}
}
