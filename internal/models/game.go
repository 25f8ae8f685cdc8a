package models

// InitialBalance is every player's starting balance.
const InitialBalance = 1000

// Status represents the overall lifecycle state of a game session.
type Status string

const (
	// StatusLobby means the game accepts new players and has not started.
	StatusLobby Status = "lobby"

	// StatusInProgress means rounds are being played.
	StatusInProgress Status = "in_progress"

	// StatusCompleted is terminal; all items have been auctioned.
	StatusCompleted Status = "completed"
)

// Phase represents the sub-state of a round, distinct from Status.
// While Status is lobby or completed, Phase mirrors it; while in progress
// it alternates between bidding and reveal.
type Phase string

const (
	// PhaseLobby is the phase before the host starts the game.
	PhaseLobby Phase = "lobby"

	// PhaseBidding means the current item is open for sealed bids.
	PhaseBidding Phase = "bidding"

	// PhaseReveal means the round has resolved and the host has not yet
	// advanced to the next item.
	PhaseReveal Phase = "reveal"

	// PhaseCompleted is terminal.
	PhaseCompleted Phase = "completed"
)

// Item is one auctionable item. Immutable once created; the ID is generated
// at session creation and never reused.
type Item struct {
	// ID is a unique identifier (UUID hex).
	ID string `json:"id"`

	// Emoji is the display icon shown next to the item.
	Emoji string `json:"emoji"`

	// Name is the display name, trimmed and capped at 40 runes.
	Name string `json:"name"`

	// Value is the intrinsic value revealed when the round resolves.
	// The winner's net gain is Value minus their winning bid.
	Value int `json:"value"`
}

// PlayerRef identifies a player in public payloads without exposing
// anything beyond id and name.
type PlayerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RoundSummary is the public record of one resolved round.
// Immutable once created.
type RoundSummary struct {
	Item       Item      `json:"item"`
	WinningBid int       `json:"winningBid"`
	Winner     PlayerRef `json:"winner"`
	NetGain    int       `json:"netGain"`
	RoundIndex int       `json:"roundIndex"`
	Timestamp  int64     `json:"timestamp"`
}
