package game

import (
	"time"

	"yaniv-client/internal/yaniv"
)

// Inbound event payloads, one struct per server-pushed game event.
// Each feeds exactly one Store transition, so transitions are
// testable without a live transport.

// PublicGameState is the server's shared view sent on round
// boundaries.
type PublicGameState struct {
	CurrentPlayer int                     `json:"currentPlayer"`
	GameStartTime time.Time               `json:"gameStartTime"`
	TurnStartTime time.Time               `json:"turnStartTime"`
	GameEnded     bool                    `json:"gameEnded"`
	Winner        string                  `json:"winner,omitempty"`
	TimePerPlayer int                     `json:"timePerPlayer"`
	PlayersStats  map[string]PlayerStatus `json:"playersStats"`
}

// GameInitializedPayload (game_initialized)
type GameInitializedPayload struct {
	GameState       PublicGameState         `json:"gameState"`
	PlayerHands     map[string][]yaniv.Card `json:"playerHands"`
	FirstCard       yaniv.Card              `json:"firstCard"`
	CurrentPlayerID string                  `json:"currentPlayerId"`
}

// NewRoundPayload (new_round)
type NewRoundPayload struct {
	GameState       PublicGameState         `json:"gameState"`
	PlayerHands     map[string][]yaniv.Card `json:"playerHands"`
	FirstCard       yaniv.Card              `json:"firstCard"`
	CurrentPlayerID string                  `json:"currentPlayerId"`
	Round           int                     `json:"round"`
}

// PlayerDrewPayload (player_drew)
type PlayerDrewPayload struct {
	PlayerID               string       `json:"playerId"`
	Hands                  []yaniv.Card `json:"hands"`
	PickupCards            []yaniv.Card `json:"pickupCards"`
	SlapDownActiveFor      string       `json:"slapDownActiveFor,omitempty"`
	Source                 ActionSource `json:"source"`
	Card                   yaniv.Card   `json:"card"`
	SelectedCardsPositions []int        `json:"selectedCardsPositions"`
	AmountBefore           int          `json:"amountBefore"`
	CurrentPlayerID        string       `json:"currentPlayerId"`
}

// RoundEndedPayload (round_ended)
type RoundEndedPayload struct {
	WinnerID     string                  `json:"winnerId"`
	PlayersStats map[string]PlayerStatus `json:"playersStats"`
	YanivCaller  string                  `json:"yanivCaller"`
	AssafCaller  string                  `json:"assafCaller,omitempty"`
	LowestValue  int                     `json:"lowestValue"`
	PlayerHands  map[string][]yaniv.Card `json:"playerHands"`
	RoundPlayers []string                `json:"roundPlayers"`
}

// GameEndedPayload (game_ended)
type GameEndedPayload struct {
	WinnerID     string                  `json:"winnerId"`
	FinalScores  map[string]int          `json:"finalScores"`
	PlayersStats map[string]PlayerStatus `json:"playersStats"`
}

// PlayersStatsPayload (players_stats)
type PlayersStatsPayload struct {
	RoomID       string                  `json:"roomId"`
	PlayerID     string                  `json:"playerId"`
	PlayersStats map[string]PlayerStatus `json:"playersStats"`
}

// GameErrorPayload (game_error)
type GameErrorPayload struct {
	Message string `json:"message"`
}
