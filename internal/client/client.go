package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/coder/websocket"

	"yaniv-client/internal/game"
	"yaniv-client/internal/room"
)

// Client owns the single websocket connection to the game server and
// funnels every inbound event through the matching store transition.
// Events are applied in the order the transport delivers them; the
// read loop is the only mutator path for inbound state.
type Client struct {
	game *game.Store
	room *room.Store

	mu     sync.RWMutex
	conn   *websocket.Conn
	selfID string

	// OnEvent, if set, runs after each applied inbound event. Lets a
	// front-end redraw without polling the stores.
	OnEvent func(eventType string)
}

// New wires a client to its stores without a connection, for tests
// and for front-ends that dial later.
func New(gameStore *game.Store, roomStore *room.Store) *Client {
	return &Client{game: gameStore, room: roomStore}
}

// Dial connects to the server's websocket endpoint.
func Dial(ctx context.Context, url string, gameStore *game.Store, roomStore *room.Store) (*Client, error) {
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}

	c := New(gameStore, roomStore)
	c.conn = conn
	return c, nil
}

func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		c.conn.Close(websocket.StatusNormalClosure, "client closing")
		c.conn = nil
	}
}

// SelfID is this client's connection identifier, assigned by the
// server on connect.
func (c *Client) SelfID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.selfID
}

// Listen reads inbound events until the connection or context dies.
// FIFO by construction: one loop, no buffering or reordering.
func (c *Client) Listen(ctx context.Context) error {
	for {
		msgType, data, err := c.conn.Read(ctx)
		if err != nil {
			return fmt.Errorf("connection read: %w", err)
		}
		if msgType != websocket.MessageText {
			log.Printf("Non-text frame from server, skipped")
			continue
		}

		var msg ServerMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("Invalid JSON from server: %v", err)
			continue
		}

		c.Handle(msg)
	}
}

// Handle applies one inbound event to the stores. Exported so the
// dispatch can be exercised without a live transport.
func (c *Client) Handle(msg ServerMessage) {
	switch msg.Type {
	case "connected":
		var p ConnectedPayload
		if !c.decode(msg, &p) {
			return
		}
		c.mu.Lock()
		c.selfID = p.ID
		c.mu.Unlock()
		c.game.SetSelf(p.ID)

	case "room_created":
		var p room.RoomCreatedPayload
		if !c.decode(msg, &p) {
			return
		}
		c.room.ApplyRoomCreated(p)

	case "player_joined":
		var p room.PlayerJoinedPayload
		if !c.decode(msg, &p) {
			return
		}
		c.room.ApplyPlayerJoined(p)

	case "votes_config":
		var p room.VotesConfigPayload
		if !c.decode(msg, &p) {
			return
		}
		c.room.ApplyVotes(p)

	case "player_left":
		var p room.PlayerLeftPayload
		if !c.decode(msg, &p) {
			return
		}
		c.room.ApplyPlayerLeft(p)

	case "start_game":
		var p room.StartGamePayload
		if !c.decode(msg, &p) {
			return
		}
		c.room.ApplyGameStarted(p)

	case "room_error":
		var p room.RoomErrorPayload
		if !c.decode(msg, &p) {
			return
		}
		c.room.SetError(p.Message)

	case "game_initialized":
		var p game.GameInitializedPayload
		if !c.decode(msg, &p) {
			return
		}
		c.game.ApplyGameInitialized(p, c.room.PlayerIDs(), rulesFromConfig(c.room.Config()))

	case "new_round":
		var p game.NewRoundPayload
		if !c.decode(msg, &p) {
			return
		}
		c.game.ApplyNewRound(p)

	case "player_drew":
		var p game.PlayerDrewPayload
		if !c.decode(msg, &p) {
			return
		}
		c.game.ApplyPlayerDrew(p)

	case "round_ended":
		var p game.RoundEndedPayload
		if !c.decode(msg, &p) {
			return
		}
		c.game.ApplyRoundEnded(p)

	case "game_ended":
		var p game.GameEndedPayload
		if !c.decode(msg, &p) {
			return
		}
		c.game.ApplyGameEnded(p)

	case "players_stats":
		var p game.PlayersStatsPayload
		if !c.decode(msg, &p) {
			return
		}
		c.game.ApplyPlayersStats(p)

	case "game_error":
		var p game.GameErrorPayload
		if !c.decode(msg, &p) {
			return
		}
		c.game.SetError(p.Message)

	default:
		log.Printf("Unknown event type %q, skipped", msg.Type)
		return
	}

	if c.OnEvent != nil {
		c.OnEvent(msg.Type)
	}
}

func (c *Client) decode(msg ServerMessage, into any) bool {
	if err := json.Unmarshal(msg.Payload, into); err != nil {
		log.Printf("Invalid %s payload: %v", msg.Type, err)
		return false
	}
	return true
}

// Emit sends a named event to the server. Fire and forget: the effect
// arrives later as an inbound event, never as a response.
func (c *Client) Emit(ctx context.Context, eventType string, payload any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return errors.New("NOT_CONNECTED: no server connection")
	}

	data, err := json.Marshal(ClientMessage{Type: eventType, Payload: payload})
	if err != nil {
		return fmt.Errorf("marshal %s: %w", eventType, err)
	}
	return conn.Write(ctx, websocket.MessageText, data)
}

// rulesFromConfig freezes the voted room config into game rules,
// falling back to defaults for anything unset.
func rulesFromConfig(config *room.Config) game.Rules {
	rules := game.DefaultRules
	if config == nil {
		return rules
	}
	rules.SlapDownAllowed = config.SlapDown
	if config.TimePerPlayer > 0 {
		rules.TimePerPlayer = config.TimePerPlayer
	}
	if config.CanCallYaniv > 0 {
		rules.CanCallYaniv = config.CanCallYaniv
	}
	if config.MaxMatchPoints > 0 {
		rules.MaxMatchPoints = config.MaxMatchPoints
	}
	return rules
}
