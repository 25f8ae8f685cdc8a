package auction

import (
	"testing"
	"time"

	"github.com/mmynk/auctioneer/internal/models"
)

func testPlayers(joinOrders map[string]int) map[string]*models.Player {
	players := make(map[string]*models.Player, len(joinOrders))
	for id, order := range joinOrders {
		players[id] = &models.Player{
			ID:        id,
			Name:      "player-" + id,
			Balance:   models.InitialBalance,
			JoinOrder: order,
		}
	}
	return players
}

func TestResolve(t *testing.T) {
	now := time.Unix(1700000000, 0)
	item := models.Item{ID: "item-1", Emoji: "💎", Name: "Clouded Gem", Value: 790}

	tests := []struct {
		name         string
		bids         map[string]int
		joinOrders   map[string]int
		item         models.Item
		roundIndex   int
		wantOK       bool
		validateFunc func(t *testing.T, out Outcome)
	}{
		{
			name:       "strictly highest bid wins",
			bids:       map[string]int{"a": 100, "b": 250, "c": 180},
			joinOrders: map[string]int{"a": 0, "b": 1, "c": 2},
			item:       item,
			roundIndex: 3,
			wantOK:     true,
			validateFunc: func(t *testing.T, out Outcome) {
				if out.WinnerID != "b" {
					t.Errorf("winner = %q, want b", out.WinnerID)
				}
				if out.Summary.WinningBid != 250 {
					t.Errorf("winning bid = %d, want 250", out.Summary.WinningBid)
				}
				if out.Summary.NetGain != 790-250 {
					t.Errorf("net gain = %d, want %d", out.Summary.NetGain, 790-250)
				}
				if out.Summary.RoundIndex != 3 {
					t.Errorf("round index = %d, want 3", out.Summary.RoundIndex)
				}
			},
		},
		{
			name:       "tie broken by earliest join order",
			bids:       map[string]int{"late": 300, "early": 300, "mid": 300},
			joinOrders: map[string]int{"late": 2, "early": 0, "mid": 1},
			item:       item,
			wantOK:     true,
			validateFunc: func(t *testing.T, out Outcome) {
				if out.WinnerID != "early" {
					t.Errorf("winner = %q, want early (lowest join order)", out.WinnerID)
				}
			},
		},
		{
			name:       "overpaying yields negative net gain",
			bids:       map[string]int{"a": 900},
			joinOrders: map[string]int{"a": 0},
			item:       models.Item{ID: "item-2", Name: "Mismatched Socks", Value: 120},
			wantOK:     true,
			validateFunc: func(t *testing.T, out Outcome) {
				if out.Summary.NetGain != 120-900 {
					t.Errorf("net gain = %d, want %d", out.Summary.NetGain, 120-900)
				}
				if out.Record.NetGain != out.Summary.NetGain {
					t.Errorf("record net gain = %d, summary = %d; must match", out.Record.NetGain, out.Summary.NetGain)
				}
			},
		},
		{
			name:       "zero bid can win",
			bids:       map[string]int{"a": 0},
			joinOrders: map[string]int{"a": 0},
			item:       item,
			wantOK:     true,
			validateFunc: func(t *testing.T, out Outcome) {
				if out.Summary.WinningBid != 0 {
					t.Errorf("winning bid = %d, want 0", out.Summary.WinningBid)
				}
				if out.Summary.NetGain != 790 {
					t.Errorf("net gain = %d, want 790", out.Summary.NetGain)
				}
			},
		},
		{
			name:       "no bids is a no-op",
			bids:       map[string]int{},
			joinOrders: map[string]int{"a": 0},
			item:       item,
			wantOK:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ok := Resolve(tt.bids, testPlayers(tt.joinOrders), tt.item, tt.roundIndex, now)
			if ok != tt.wantOK {
				t.Fatalf("Resolve ok = %v, want %v", ok, tt.wantOK)
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, out)
			}
		})
	}
}

// TestResolveTieDeterminism hammers the same tied round repeatedly; the
// winner must not depend on map iteration order.
func TestResolveTieDeterminism(t *testing.T) {
	item := models.Item{ID: "item-1", Name: "Rare VHS", Value: 290}
	players := testPlayers(map[string]int{"p0": 0, "p1": 1, "p2": 2, "p3": 3, "p4": 4})
	bids := map[string]int{"p0": 50, "p1": 50, "p2": 50, "p3": 50, "p4": 50}

	for i := 0; i < 100; i++ {
		out, ok := Resolve(bids, players, item, 0, time.Now())
		if !ok {
			t.Fatal("Resolve returned ok=false for a full round")
		}
		if out.WinnerID != "p0" {
			t.Fatalf("iteration %d: winner = %q, want p0 (earliest joiner)", i, out.WinnerID)
		}
	}
}

func TestResolveDoesNotMutate(t *testing.T) {
	item := models.Item{ID: "item-1", Name: "Tinny Radio", Value: 410}
	players := testPlayers(map[string]int{"a": 0, "b": 1})
	bids := map[string]int{"a": 100, "b": 200}

	if _, ok := Resolve(bids, players, item, 0, time.Now()); !ok {
		t.Fatal("Resolve returned ok=false")
	}

	if players["b"].Balance != models.InitialBalance {
		t.Errorf("winner balance mutated to %d; Resolve must be pure", players["b"].Balance)
	}
	if len(players["b"].Wins) != 0 {
		t.Errorf("winner wins mutated; Resolve must be pure")
	}
	if len(bids) != 2 {
		t.Errorf("bids map mutated; Resolve must be pure")
	}
}
