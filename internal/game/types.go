package game

import (
	"time"

	"yaniv-client/internal/yaniv"
)

type Phase string

const (
	PhaseLoading  Phase = "loading"
	PhaseBegin    Phase = "begin"
	PhasePlaying  Phase = "playing"
	PhaseRoundEnd Phase = "round-end"
	PhaseGameEnd  Phase = "game-end"
)

// ActionSource is where a drawn card came from, as reported by the
// server.
type ActionSource string

const (
	SourceDeck   ActionSource = "deck"
	SourcePickup ActionSource = "pickup"
	SourceSlap   ActionSource = "slap"
)

// TurnAction tags a completed turn for animation replay.
type TurnAction string

const (
	DragFromDeck   TurnAction = "DRAG_FROM_DECK"
	DragFromPickup TurnAction = "DRAG_FROM_PICKUP"
	SlapDown       TurnAction = "SLAP_DOWN"
)

type Location struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Position struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	Deg float64 `json:"deg"`
}

// PlayerStatus is the cumulative per-player standing, pushed by the
// server on round and game boundaries.
type PlayerStatus struct {
	Score        int    `json:"score"`
	Lost         bool   `json:"lost"`
	PlayerStatus string `json:"playerStatus,omitempty"` // active, lost, winner, playAgain, leave
	PlayerName   string `json:"playerName,omitempty"`
	AvatarIndex  int    `json:"avatarIndex,omitempty"`
}

// Rules is the room configuration frozen once a round starts.
type Rules struct {
	TimePerPlayer   int
	SlapDownAllowed bool
	CanCallYaniv    int
	MaxMatchPoints  int
}

// DefaultRules applies when the room carried no voted config.
var DefaultRules = Rules{
	TimePerPlayer:   15,
	SlapDownAllowed: true,
	CanCallYaniv:    7,
	MaxMatchPoints:  100,
}

// Discard is the set of cards a player put down, with the board
// positions they animated from.
type Discard struct {
	Cards          []yaniv.Card
	CardsPositions []Position
}

// Draw is the card taken to end a turn and where it came from. Nil on
// a slap down, which discards without drawing.
type Draw struct {
	Card         yaniv.Card
	CardPosition Position
}

// Turn is one completed action, kept for animation replay. Superseded
// by the next turn; only the current and previous are retained plus
// the round's history list.
type Turn struct {
	Round    int
	Step     int
	PlayerID string
	Discard  Discard
	Draw     *Draw
	Pickup   []yaniv.Card
	Action   TurnAction
}

// TurnInfo tracks whose turn is running and what just happened.
type TurnInfo struct {
	PlayerID  string
	StartTime time.Time
	Prev      *Turn
	HandsPrev map[string][]yaniv.Card
}

// PlayerData is the client-side view of one seated player.
type PlayerData struct {
	Stats             PlayerStatus
	Hand              []yaniv.Card
	CardCount         int
	MyTurn            bool
	RoundScore        int
	SlapDownAvailable bool
}

// RoundResults is populated only between rounds, for the reveal
// animation and the standings dialog.
type RoundResults struct {
	WinnerID     string
	PlayersHands map[string][]yaniv.Card
	YanivCaller  string
	AssafCaller  string
	LowestValue  int
	RoundPlayers []string
	PlayersStats map[string]PlayerStatus
}
