package client_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"yaniv-client/internal/client"
	"yaniv-client/internal/game"
	"yaniv-client/internal/room"
)

var testLayout = game.Layout{Width: 390, Height: 844}

func event(t *testing.T, eventType, payload string) client.ServerMessage {
	t.Helper()
	return client.ServerMessage{Type: eventType, Payload: json.RawMessage(payload)}
}

// newTestClient wires a client to fresh stores and walks it through
// connect, room setup and the first deal, all via the same dispatch
// the read loop uses.
func newTestClient(t *testing.T) (*client.Client, *game.Store, *room.Store) {
	t.Helper()

	gameStore := game.NewStore(testLayout)
	roomStore := room.NewStore()
	c := client.New(gameStore, roomStore)

	c.Handle(event(t, "connected", `{"id":"me"}`))
	c.Handle(event(t, "room_created", `{
		"roomId": "room-1",
		"players": [
			{"id":"me","nickName":"Dana","avatarIndex":1},
			{"id":"other","nickName":"Omer","avatarIndex":2}
		],
		"config": {"slapDown":true,"canCallYaniv":7,"maxMatchPoints":100}
	}`))
	c.Handle(event(t, "start_game", `{"roomId":"room-1"}`))
	c.Handle(event(t, "game_initialized", `{
		"gameState": {"timePerPlayer":15,"playersStats":{}},
		"playerHands": {
			"me": [{"suit":"clubs","value":1},{"suit":"hearts","value":2},{"suit":"spades","value":3}],
			"other": [{"suit":"clubs","value":9},{"suit":"hearts","value":9},{"suit":"spades","value":9}]
		},
		"firstCard": {"suit":"hearts","value":11},
		"currentPlayerId": "me"
	}`))

	return c, gameStore, roomStore
}

func TestDispatchConnectSetsIdentity(t *testing.T) {
	c, gameStore, _ := newTestClient(t)
	assert.Equal(t, "me", c.SelfID())
	assert.Equal(t, "me", gameStore.SelfID())
}

func TestDispatchBuildsGameFromRoomContext(t *testing.T) {
	_, gameStore, roomStore := newTestClient(t)

	assert.Equal(t, room.StateStarted, roomStore.State())
	assert.Equal(t, game.PhaseBegin, gameStore.Phase())
	assert.True(t, gameStore.MyTurn())
	assert.Equal(t, 6, gameStore.HandValue())

	// Rules frozen from the room config.
	rules := gameStore.Rules()
	assert.Equal(t, 7, rules.CanCallYaniv)
	assert.True(t, rules.SlapDownAllowed)
}

func TestDispatchPlayerDrewAndRoundEnded(t *testing.T) {
	c, gameStore, _ := newTestClient(t)

	c.Handle(event(t, "player_drew", `{
		"playerId": "other",
		"hands": [{"suit":"clubs","value":13}],
		"pickupCards": [{"suit":"clubs","value":9},{"suit":"hearts","value":9}],
		"source": "deck",
		"card": {"suit":"diamonds","value":4},
		"selectedCardsPositions": [0,1],
		"amountBefore": 2,
		"currentPlayerId": "other"
	}`))

	assert.Equal(t, game.PhasePlaying, gameStore.Phase())
	assert.False(t, gameStore.MyTurn())
	assert.Len(t, gameStore.PickupPile(), 2)
	assert.Equal(t, 6, gameStore.HandValue(), "foreign draw must not touch this hand")

	c.Handle(event(t, "round_ended", `{
		"winnerId": "other",
		"playersStats": {"me":{"score":6},"other":{"score":0}},
		"yanivCaller": "other",
		"lowestValue": 2,
		"playerHands": {"other":[{"suit":"clubs","value":13}]}
	}`))

	assert.Equal(t, game.PhaseRoundEnd, gameStore.Phase())
	results, ok := gameStore.RoundResults()
	assert.True(t, ok)
	assert.Equal(t, "other", results.WinnerID)
}

func TestDispatchErrorsAreDismissibleState(t *testing.T) {
	c, gameStore, roomStore := newTestClient(t)

	c.Handle(event(t, "room_error", `{"message":"room is full"}`))
	assert.Equal(t, "room is full", roomStore.Err())
	roomStore.ClearError()
	assert.Empty(t, roomStore.Err())

	c.Handle(event(t, "game_error", `{"message":"not your turn"}`))
	assert.Equal(t, "not your turn", gameStore.Err())

	// Errors alone never move the state machine.
	assert.Equal(t, game.PhaseBegin, gameStore.Phase())
}

func TestDispatchToleratesGarbage(t *testing.T) {
	c, gameStore, _ := newTestClient(t)

	assert.NotPanics(t, func() {
		c.Handle(event(t, "no_such_event", `{}`))
		c.Handle(event(t, "player_drew", `{"playerId": 42}`))
		c.Handle(event(t, "game_initialized", `not json`))
	})
	// Bad payloads leave state as it was.
	assert.Equal(t, game.PhaseBegin, gameStore.Phase())
	assert.Equal(t, 6, gameStore.HandValue())
}

func TestOnEventHookRunsAfterApply(t *testing.T) {
	c, gameStore, _ := newTestClient(t)

	var seen []string
	c.OnEvent = func(eventType string) {
		seen = append(seen, eventType)
		if eventType == "game_error" {
			assert.Equal(t, "boom", gameStore.Err(), "hook must observe applied state")
		}
	}

	c.Handle(event(t, "game_error", `{"message":"boom"}`))
	c.Handle(event(t, "no_such_event", `{}`))

	assert.Equal(t, []string{"game_error"}, seen, "unknown events never reach the hook")
}
