// Package game holds the session aggregate: one Session is the state
// machine for a single play-through, from lobby through bidding/reveal
// rounds to completion.
//
// Every mutating method serializes on the session's own lock, which is the
// one critical section in the system: it makes the "last bid triggers
// resolution" check race-free and keeps balance updates from being lost to
// concurrent writes. Cross-session operations never share state.
package game

import (
	"encoding/hex"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/auctioneer/internal/auction"
	"github.com/mmynk/auctioneer/internal/models"
)

// maxNameLen caps player names in runes.
const maxNameLen = 40

// Session is one game session. All fields are guarded by mu.
type Session struct {
	mu sync.RWMutex

	id     string
	hostID string
	status models.Status
	phase  models.Phase

	// players is the id lookup; order keeps join order explicit so roster
	// ordering is an invariant, not a property of map iteration.
	players map[string]*models.Player
	order   []string
	nextSeq int

	items        []models.Item
	currentIndex int

	// pendingBids holds the current round's sealed bids, keyed by player
	// id. Cleared exactly on the bidding->reveal transition.
	pendingBids map[string]int

	history     []models.RoundSummary
	lastSummary *models.RoundSummary

	lastActive time.Time
	now        func() time.Time
}

// New creates a session in the lobby with the host already joined at join
// order zero. Items must be validated and non-empty before this point.
func New(id, hostName string, items []models.Item) (*Session, models.Player) {
	s := &Session{
		id:          id,
		status:      models.StatusLobby,
		phase:       models.PhaseLobby,
		players:     make(map[string]*models.Player),
		items:       items,
		pendingBids: make(map[string]int),
		now:         time.Now,
	}
	host := s.addPlayer(hostName)
	s.hostID = host.ID
	s.lastActive = s.now()
	return s, host
}

// ID returns the session's game code.
func (s *Session) ID() string {
	return s.id
}

// HostID returns the host's player id.
func (s *Session) HostID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hostID
}

// Status returns the session's lifecycle status.
func (s *Session) Status() models.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// LastActive reports when the session last served a mutating action.
// Used by the store's TTL sweep.
func (s *Session) LastActive() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastActive
}

// Join adds a player while the session is still in the lobby.
func (s *Session) Join(name string) (models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != models.StatusLobby {
		return models.Player{}, models.NewError(models.CodeInvalidState, "Game already started")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Player{}, models.NewError(models.CodeValidation, "Player name is required")
	}

	player := s.addPlayer(name)
	s.touch()
	return player, nil
}

// Start moves the session from lobby to the first bidding round.
// Host only.
func (s *Session) Start(playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if playerID != s.hostID {
		return models.NewError(models.CodeForbidden, "Only the host can start the game")
	}
	if s.status != models.StatusLobby {
		return models.NewError(models.CodeInvalidState, "Game already started")
	}

	s.status = models.StatusInProgress
	s.phase = models.PhaseBidding
	s.currentIndex = 0
	s.lastSummary = nil
	s.touch()
	return nil
}

// PlaceBid records playerID's sealed bid for the current item and reports
// whether this bid completed the roster and resolved the round.
// Re-submitting before the round is full overwrites the prior bid (last
// write wins). The bid that completes the roster resolves the round
// synchronously, inside the same lock hold, so resolution fires exactly
// once per round no matter how many players submit simultaneously.
//
// Validation completes before any state write: a rejected bid never
// appears in pendingBids and never counts toward round completion.
func (s *Session) PlaceBid(playerID string, amount int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != models.StatusInProgress || s.phase != models.PhaseBidding {
		return false, models.NewError(models.CodeInvalidState, "Bidding is not active")
	}
	player, ok := s.players[playerID]
	if !ok {
		return false, models.NewError(models.CodeForbidden, "Player not part of this game")
	}
	if amount < 0 {
		return false, models.NewError(models.CodeValidation, "Bid cannot be negative")
	}
	if amount > player.Balance {
		return false, models.NewError(models.CodeInsufficientBalance, "Bid exceeds available balance")
	}

	s.pendingBids[playerID] = amount
	s.touch()

	if len(s.pendingBids) == len(s.players) {
		s.resolveRound()
	}
	return s.phase == models.PhaseReveal, nil
}

// Advance moves from reveal to the next bidding round, or completes the
// game when the last item has been auctioned. Host only.
func (s *Session) Advance(playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != models.StatusInProgress {
		return models.NewError(models.CodeInvalidState, "Game is not in progress")
	}
	if s.phase != models.PhaseReveal {
		return models.NewError(models.CodeInvalidState, "Round results not ready")
	}
	if playerID != s.hostID {
		return models.NewError(models.CodeForbidden, "Only the host can advance the game")
	}

	if s.currentIndex+1 >= len(s.items) {
		s.status = models.StatusCompleted
		s.phase = models.PhaseCompleted
	} else {
		s.currentIndex++
		s.phase = models.PhaseBidding
		s.lastSummary = nil
	}
	s.touch()
	return nil
}

// View projects the session for viewerID. Read-only, safe to call
// arbitrarily often; concurrent polls share the read lock.
func (s *Session) View(viewerID string) models.GameView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	players := make([]*models.Player, 0, len(s.order))
	for _, id := range s.order {
		players = append(players, s.players[id])
	}
	return auction.Project(auction.Snapshot{
		ID:           s.id,
		HostID:       s.hostID,
		Status:       s.status,
		Phase:        s.phase,
		Players:      players,
		Items:        s.items,
		CurrentIndex: s.currentIndex,
		History:      s.history,
		LastSummary:  s.lastSummary,
	}, viewerID)
}

// resolveRound settles the current round. Caller holds the write lock.
func (s *Session) resolveRound() {
	outcome, ok := auction.Resolve(s.pendingBids, s.players, s.items[s.currentIndex], s.currentIndex, s.now())
	if !ok {
		// Defensive: a round with zero bids is unreachable through the
		// state machine; leave the phase untouched.
		return
	}

	winner := s.players[outcome.WinnerID]
	winner.Balance += outcome.Record.NetGain
	winner.Wins = append(winner.Wins, outcome.Record)

	s.history = append(s.history, outcome.Summary)
	summary := outcome.Summary
	s.lastSummary = &summary
	s.pendingBids = make(map[string]int)
	s.phase = models.PhaseReveal
}

// addPlayer creates a player with the next join-order sequence.
// Caller holds the write lock (or is the constructor).
func (s *Session) addPlayer(name string) models.Player {
	name = truncateName(name)
	p := &models.Player{
		ID:        newPlayerID(),
		Name:      name,
		Balance:   models.InitialBalance,
		JoinOrder: s.nextSeq,
	}
	s.nextSeq++
	s.players[p.ID] = p
	s.order = append(s.order, p.ID)
	return *p
}

func (s *Session) touch() {
	s.lastActive = s.now()
}

// newPlayerID mints an opaque bearer token: 128 random bits as 32 hex
// characters.
func newPlayerID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) > maxNameLen {
		return string(runes[:maxNameLen])
	}
	return name
}
