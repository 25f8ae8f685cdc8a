// Package models defines the core domain models for Auctioneer.
//
// # Core Models
//
//   - Item: A single auctionable item with an intrinsic value
//   - Player: A participant in one game, identified by an opaque token
//   - RoundSummary: The public record of one resolved round
//   - Template: A reusable item list used to seed a game
//
// Session state itself lives in the game package; these models are the
// building blocks it mutates and the projector reads.
//
// # View Models
//
// GameView and its sections are the only shapes that ever leave the server.
// They are constructed exclusively by the projector (see the auction
// package), which enforces the visibility rules: other players' pending
// bids are never serialized, and the newest history entry is withheld from
// non-hosts while a round is in reveal.
//
// # Design Principles
//
//  1. **Players are per-game**: there are no accounts; a Player exists only
//     inside the session that created it, and its ID doubles as the bearer
//     credential for that player's actions.
//  2. **Immutable records**: WinRecord and RoundSummary are append-only;
//     history is never edited in place.
//  3. **Explicit ordering**: join order is a stored field, never an
//     accident of map iteration.
package models
