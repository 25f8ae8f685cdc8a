package models

// Player represents one participant in a game session.
type Player struct {
	// ID is an opaque unguessable token (UUID hex). Anyone holding it can
	// act as this player, so it is only ever returned to its owner.
	ID string

	// Name is the display name given on join.
	Name string

	// Balance is mutated only by round settlement. It equals
	// InitialBalance plus the sum of NetGain over Wins.
	Balance int

	// JoinOrder is a per-session monotonic sequence assigned on join.
	// Immutable; used as the deterministic tie-break key (earlier wins).
	JoinOrder int

	// Wins is the append-only record of rounds this player won.
	Wins []WinRecord
}

// WinRecord captures one round won by a player.
type WinRecord struct {
	ItemID  string `json:"itemId"`
	Name    string `json:"name"`
	Emoji   string `json:"emoji"`
	Value   int    `json:"value"`
	Bid     int    `json:"bid"`
	NetGain int    `json:"netGain"`
}
