package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gamesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "auctioneer",
		Name:      "games_created_total",
		Help:      "Number of game sessions created.",
	})
	playersJoined = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "auctioneer",
		Name:      "players_joined_total",
		Help:      "Number of players who joined a lobby (excluding hosts).",
	})
	bidsPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "auctioneer",
		Name:      "bids_placed_total",
		Help:      "Number of accepted bids, including overwrites.",
	})
	roundsResolved = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "auctioneer",
		Name:      "rounds_resolved_total",
		Help:      "Number of rounds resolved.",
	})
	gamesCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "auctioneer",
		Name:      "games_completed_total",
		Help:      "Number of games played to completion.",
	})
	templatesGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "auctioneer",
		Name:      "templates_generated_total",
		Help:      "Number of AI-generated templates successfully produced.",
	})
)
