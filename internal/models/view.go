package models

// GameView is a player-specific, phase-aware projection of session state.
// The Status field is the discriminator for which optional sections are
// present: CurrentItem while in progress, RoundSummary for the host during
// reveal (and for everyone once completed), Results once completed.
// Pending bids are never part of any view.
type GameView struct {
	GameID       string       `json:"gameId"`
	Status       Status       `json:"status"`
	Players      []PlayerView `json:"players"`
	RoundPhase   Phase        `json:"roundPhase"`
	CurrentIndex int          `json:"currentIndex"`
	TotalItems   int          `json:"totalItems"`
	IsHost       bool         `json:"isHost"`

	// History is the viewer's history window: the full resolved history
	// for the host, and for non-hosts everything except the newest entry
	// while the round is still in reveal.
	History []RoundSummary `json:"history"`

	// Player is the viewer's own entry, present when the viewer is a
	// member of this game.
	Player *SelfView `json:"player,omitempty"`

	// CurrentItem is present while the game is in progress. Its intrinsic
	// value is deliberately absent: value is revealed by the round summary.
	CurrentItem *CurrentItemView `json:"currentItem,omitempty"`

	// RoundSummary is the just-resolved round. During reveal only the host
	// receives it; once the game completes everyone does.
	RoundSummary *RoundSummary `json:"roundSummary,omitempty"`

	// Results is present only when the game is completed.
	Results *ResultsView `json:"results,omitempty"`
}

// PlayerView is one roster entry, projected in join order.
type PlayerView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Balance int    `json:"balance"`
	IsHost  bool   `json:"isHost"`
}

// SelfView is the viewer's own player data.
type SelfView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Balance int    `json:"balance"`
}

// CurrentItemView describes the item currently up for auction, minus its
// intrinsic value.
type CurrentItemView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Index int    `json:"index"`
}

// Standing is one row of the final scoreboard.
type Standing struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Balance int    `json:"balance"`
}

// ResultsView is the final scoreboard: standings sorted by descending
// balance with join order preserved on ties, and the overall winner.
type ResultsView struct {
	Standings []Standing `json:"standings"`
	Winner    *Standing  `json:"winner"`
}
