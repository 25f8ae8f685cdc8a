package auction

import (
	"sort"

	"github.com/mmynk/auctioneer/internal/models"
)

// Snapshot is the read-only slice of session state the projector works
// from. The game package builds it under the session lock; the projector
// itself is pure.
type Snapshot struct {
	ID           string
	HostID       string
	Status       models.Status
	Phase        models.Phase
	Players      []*models.Player // join order
	Items        []models.Item
	CurrentIndex int
	History      []models.RoundSummary
	LastSummary  *models.RoundSummary
}

// Project builds viewerID's view of the session. It enforces the
// information-hiding rules:
//
//   - pending bids are not part of the snapshot at all, so no view can
//     leak them;
//   - while a round is in reveal, non-host viewers see history with the
//     newest entry withheld, and only the host receives the round summary.
//     This is the deliberate one-round asymmetry that lets the host
//     narrate results before players see them;
//   - the current item's intrinsic value is never projected; it becomes
//     public only through the round summary.
func Project(s Snapshot, viewerID string) models.GameView {
	isHost := viewerID == s.HostID

	view := models.GameView{
		GameID:       s.ID,
		Status:       s.Status,
		Players:      roster(s),
		RoundPhase:   s.Phase,
		CurrentIndex: s.CurrentIndex,
		TotalItems:   len(s.Items),
		IsHost:       isHost,
		History:      historyFor(s, isHost),
	}

	for _, p := range s.Players {
		if p.ID == viewerID {
			view.Player = &models.SelfView{ID: p.ID, Name: p.Name, Balance: p.Balance}
			break
		}
	}

	switch s.Status {
	case models.StatusInProgress:
		item := s.Items[s.CurrentIndex]
		view.CurrentItem = &models.CurrentItemView{
			ID:    item.ID,
			Name:  item.Name,
			Emoji: item.Emoji,
			Index: s.CurrentIndex,
		}
		if s.Phase == models.PhaseReveal && isHost {
			view.RoundSummary = summaryCopy(s.LastSummary)
		}
	case models.StatusCompleted:
		standings := Standings(s.Players)
		results := models.ResultsView{Standings: standings}
		if len(standings) > 0 {
			results.Winner = &standings[0]
		}
		view.Results = &results
		view.RoundSummary = summaryCopy(s.LastSummary)
	}

	return view
}

// Standings sorts players by descending balance. The sort is stable over
// the join-ordered input, so equal balances keep join order.
func Standings(players []*models.Player) []models.Standing {
	standings := make([]models.Standing, 0, len(players))
	for _, p := range players {
		standings = append(standings, models.Standing{ID: p.ID, Name: p.Name, Balance: p.Balance})
	}
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Balance > standings[j].Balance
	})
	return standings
}

// roster projects the players in join order. Identity tokens double as
// roster ids; clients only need them to mark "you" in the list.
func roster(s Snapshot) []models.PlayerView {
	views := make([]models.PlayerView, 0, len(s.Players))
	for _, p := range s.Players {
		views = append(views, models.PlayerView{
			ID:      p.ID,
			Name:    p.Name,
			Balance: p.Balance,
			IsHost:  p.ID == s.HostID,
		})
	}
	return views
}

// historyFor returns the viewer's history window as a fresh slice. The
// host always sees everything; non-hosts see the newest entry only after
// the host advances out of reveal.
func historyFor(s Snapshot, isHost bool) []models.RoundSummary {
	visible := s.History
	if !isHost && s.Phase == models.PhaseReveal && len(visible) > 0 {
		visible = visible[:len(visible)-1]
	}
	out := make([]models.RoundSummary, len(visible))
	copy(out, visible)
	return out
}

func summaryCopy(summary *models.RoundSummary) *models.RoundSummary {
	if summary == nil {
		return nil
	}
	c := *summary
	return &c
}
