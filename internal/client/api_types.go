package client

import (
	"yaniv-client/internal/room"
	"yaniv-client/internal/yaniv"
)

// ============================================================================
// CONNECTION (connected)
// ============================================================================
type ConnectedPayload struct {
	ID string `json:"id"`
}

// ============================================================================
// ROOM LIFECYCLE (create_room, join_room, quick_game,
// set_quick_game_config, leave_room)
// ============================================================================
type CreateRoomRequest struct {
	User   room.Player `json:"user"`
	Config room.Config `json:"config"`
}

type JoinRoomRequest struct {
	RoomID string      `json:"roomId"`
	User   room.Player `json:"user"`
}

type QuickGameRequest struct {
	User room.Player `json:"user"`
}

type QuickGameConfigRequest struct {
	RoomID string      `json:"roomId"`
	User   room.Player `json:"user"`
	Config room.Config `json:"config"`
}

type LeaveRoomRequest struct {
	User    room.Player `json:"user"`
	IsAdmin bool        `json:"isAdmin"`
}

// ============================================================================
// TURN ACTIONS (complete_turn, slap_down)
// ============================================================================
type TurnChoice string

const (
	ChoiceDeck   TurnChoice = "deck"
	ChoicePickup TurnChoice = "pickup"
)

type TurnActionRequest struct {
	Choice      TurnChoice `json:"choice"`
	PickupIndex int        `json:"pickupIndex,omitempty"`
}

type CompleteTurnRequest struct {
	Action        TurnActionRequest `json:"action"`
	SelectedCards []yaniv.Card      `json:"selectedCards"`
}

type SlapDownRequest struct {
	Card yaniv.Card `json:"card"`
}
