// Package auction implements the pure game logic: round resolution,
// final standings, and the player-specific view projection. Nothing in
// this package performs I/O or takes locks, which keeps the rules fully
// testable without a running server.
package auction

import (
	"time"

	"github.com/mmynk/auctioneer/internal/models"
)

// Outcome is the result of resolving one round: who won, the public
// summary to append to history, and the win record to append to the
// winner's own history. The caller applies the settlement; Resolve itself
// mutates nothing.
type Outcome struct {
	WinnerID string
	Summary  models.RoundSummary
	Record   models.WinRecord
}

// Resolve selects the winner of a sealed-bid round and computes the
// settlement: the winner pays their own bid and gains the item's intrinsic
// value, so NetGain = value - bid and may be negative.
//
// The strictly highest bid wins. Bids tied at the maximum are broken by
// the earliest join order. The comparison is an explicit total order over
// (amount, join order), so the result never depends on map iteration order.
//
// A round with zero bids cannot occur through the state machine (the host
// is always a player and resolution fires only on a full roster); the
// ok=false return is a defensive guard and callers must treat it as a
// no-op.
func Resolve(bids map[string]int, players map[string]*models.Player, item models.Item, roundIndex int, now time.Time) (Outcome, bool) {
	if len(bids) == 0 {
		return Outcome{}, false
	}

	var winnerID string
	var winningBid int
	for playerID, amount := range bids {
		player, ok := players[playerID]
		if !ok {
			// A pending bid from an unknown player would violate the
			// session invariant; skip rather than crown a ghost.
			continue
		}
		if winnerID == "" || beats(amount, player.JoinOrder, winningBid, players[winnerID].JoinOrder) {
			winnerID = playerID
			winningBid = amount
		}
	}
	if winnerID == "" {
		return Outcome{}, false
	}

	winner := players[winnerID]
	netGain := item.Value - winningBid

	return Outcome{
		WinnerID: winnerID,
		Summary: models.RoundSummary{
			Item:       item,
			WinningBid: winningBid,
			Winner:     models.PlayerRef{ID: winner.ID, Name: winner.Name},
			NetGain:    netGain,
			RoundIndex: roundIndex,
			Timestamp:  now.Unix(),
		},
		Record: models.WinRecord{
			ItemID:  item.ID,
			Name:    item.Name,
			Emoji:   item.Emoji,
			Value:   item.Value,
			Bid:     winningBid,
			NetGain: netGain,
		},
	}, true
}

// beats reports whether bid (amount, joinOrder) outranks the current best.
// Higher amount wins; at equal amounts the earlier join order wins.
func beats(amount, joinOrder, bestAmount, bestJoinOrder int) bool {
	if amount != bestAmount {
		return amount > bestAmount
	}
	return joinOrder < bestJoinOrder
}
