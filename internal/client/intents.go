package client

import (
	"context"
	"errors"
	"fmt"

	"yaniv-client/internal/room"
	"yaniv-client/internal/yaniv"
)

// Outbound intents. Every game action is validated locally first so
// an illegal play fails fast without touching the wire; the server
// still has the final word via the events that follow.

// CreateRoom asks the server for a private room with a fixed config.
func (c *Client) CreateRoom(ctx context.Context, user room.Player, config room.Config) error {
	return c.Emit(ctx, "create_room", CreateRoomRequest{User: user, Config: config})
}

// JoinRoom enters an existing room by id.
func (c *Client) JoinRoom(ctx context.Context, roomID string, user room.Player) error {
	if roomID == "" {
		return errors.New("INVALID_ROOM: room id is required")
	}
	return c.Emit(ctx, "join_room", JoinRoomRequest{RoomID: roomID, User: user})
}

// QuickGame joins the public matchmaking pool.
func (c *Client) QuickGame(ctx context.Context, user room.Player) error {
	return c.Emit(ctx, "quick_game", QuickGameRequest{User: user})
}

// SetQuickGameConfig casts this player's config vote for the pending
// quick game. One vote per player; a later vote replaces it.
func (c *Client) SetQuickGameConfig(ctx context.Context, user room.Player, config room.Config) error {
	roomID := c.room.RoomID()
	if roomID == "" {
		return errors.New("INVALID_ROOM: not in a room")
	}
	return c.Emit(ctx, "set_quick_game_config", QuickGameConfigRequest{
		RoomID: roomID,
		User:   user,
		Config: config,
	})
}

// LeaveRoom notifies the server and resets all local room and game
// state back to initial.
func (c *Client) LeaveRoom(ctx context.Context, user room.Player, isAdmin bool) error {
	err := c.Emit(ctx, "leave_room", LeaveRoomRequest{User: user, IsAdmin: isAdmin})
	c.room.Reset()
	c.game.Reset()
	return err
}

// CompleteTurnDeck discards the selection and draws from the deck.
func (c *Client) CompleteTurnDeck(ctx context.Context, selected []yaniv.Card) error {
	if err := c.validateSelection(selected); err != nil {
		return err
	}
	return c.Emit(ctx, "complete_turn", CompleteTurnRequest{
		Action:        TurnActionRequest{Choice: ChoiceDeck},
		SelectedCards: selected,
	})
}

// CompleteTurnPickup discards the selection and takes the pile card
// at pickupIndex.
func (c *Client) CompleteTurnPickup(ctx context.Context, selected []yaniv.Card, pickupIndex int) error {
	if err := c.validateSelection(selected); err != nil {
		return err
	}
	if !yaniv.CanPickupCard(c.game.PickupPile(), pickupIndex) {
		return fmt.Errorf("INVALID_PICKUP: card %d is not takeable", pickupIndex)
	}
	return c.Emit(ctx, "complete_turn", CompleteTurnRequest{
		Action:        TurnActionRequest{Choice: ChoicePickup, PickupIndex: pickupIndex},
		SelectedCards: selected,
	})
}

// CallYaniv ends the round if this client's hand is at or under the
// room's threshold. Over-threshold calls never reach the server.
func (c *Client) CallYaniv(ctx context.Context) error {
	if !c.game.MyTurn() {
		return errors.New("NOT_YOUR_TURN: wait for your turn")
	}
	rules := c.game.Rules()
	if value := c.game.HandValue(); value > rules.CanCallYaniv {
		return fmt.Errorf("HAND_TOO_HIGH: hand value %d exceeds the call threshold %d", value, rules.CanCallYaniv)
	}
	return c.Emit(ctx, "call_yaniv", nil)
}

// SlapDown discards card out of turn. Legal only while the server's
// slap window is open for this client and the card is in hand.
func (c *Client) SlapDown(ctx context.Context, card yaniv.Card) error {
	if !c.game.Rules().SlapDownAllowed {
		return errors.New("SLAP_DISABLED: slap down is off for this room")
	}
	slapCard, ok := c.game.SlapCard()
	if !ok || slapCard.Key() != card.Key() {
		return errors.New("SLAP_UNAVAILABLE: no slap down window for this card")
	}
	return c.Emit(ctx, "slap_down", SlapDownRequest{Card: card})
}

// PlayAgain votes to run another match after a game end.
func (c *Client) PlayAgain(ctx context.Context) error {
	return c.Emit(ctx, "player_wants_to_play_again", nil)
}

func (c *Client) validateSelection(selected []yaniv.Card) error {
	if !c.game.MyTurn() {
		return errors.New("NOT_YOUR_TURN: wait for your turn")
	}
	if len(selected) == 0 {
		return errors.New("INVALID_SELECTION: no cards selected")
	}
	if !yaniv.IsValidCardSet(selected, true) {
		return errors.New("INVALID_SELECTION: selection is not a single, set or sequence")
	}
	return nil
}
