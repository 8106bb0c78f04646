package room

import (
	"sync"
)

// Player is one seated user as the server announces them.
type Player struct {
	ID          string `json:"id"`
	NickName    string `json:"nickName"`
	AvatarIndex int    `json:"avatarIndex"`
}

// Config is the room's rule set. Pre-game it may still be under vote;
// once a round starts it is frozen.
type Config struct {
	Difficulty     string `json:"difficulty,omitempty"`
	SlapDown       bool   `json:"slapDown"`
	TimePerPlayer  int    `json:"timePerPlayer,omitempty"`
	CanCallYaniv   int    `json:"canCallYaniv"`
	MaxMatchPoints int    `json:"maxMatchPoints"`
}

type State string

const (
	StateNone    State = ""
	StateWaiting State = "waiting"
	StateStarted State = "started"
)

// Store tracks the room this client sits in: who is seated, the
// config votes, and whether the game has started. Driven by
// server-pushed room events only.
type Store struct {
	mu sync.RWMutex

	roomID     string
	players    []Player
	config     *Config
	votes      map[string]Config
	state      State
	quickStart bool
	errMsg     string
}

func NewStore() *Store {
	return &Store{votes: make(map[string]Config)}
}

// Reset clears all room state, e.g. on leave.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roomID = ""
	s.players = nil
	s.config = nil
	s.votes = make(map[string]Config)
	s.state = StateNone
	s.quickStart = false
	s.errMsg = ""
}

func (s *Store) ApplyRoomCreated(p RoomCreatedPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roomID = p.RoomID
	s.players = append([]Player(nil), p.Players...)
	s.config = p.Config
	s.state = StateWaiting
	s.errMsg = ""
}

func (s *Store) ApplyPlayerJoined(p PlayerJoinedPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.RoomID != "" {
		s.roomID = p.RoomID
	}
	s.players = append([]Player(nil), p.Players...)
	if p.Config != nil {
		s.config = p.Config
	}
	s.quickStart = p.CanStartTheGameIn10Sec
	if s.state == StateNone {
		s.state = StateWaiting
	}
}

// ApplyVotes replaces the vote map wholesale: one vote per player,
// the server already applied last-write-wins.
func (s *Store) ApplyVotes(p VotesConfigPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.RoomID != "" && p.RoomID != s.roomID {
		return
	}
	s.votes = make(map[string]Config, len(p.Votes))
	for id, vote := range p.Votes {
		s.votes[id] = vote
	}
}

func (s *Store) ApplyPlayerLeft(p PlayerLeftPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = append([]Player(nil), p.Players...)
	if p.Votes != nil {
		s.votes = p.Votes
	} else {
		delete(s.votes, p.PlayerID)
	}
}

func (s *Store) ApplyGameStarted(p StartGamePayload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.RoomID != "" {
		s.roomID = p.RoomID
	}
	if p.Config != nil {
		s.config = p.Config
	}
	if len(p.Players) > 0 {
		s.players = append([]Player(nil), p.Players...)
	}
	s.state = StateStarted
}

func (s *Store) SetError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = message
}

func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
}

func (s *Store) RoomID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roomID
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

func (s *Store) QuickStartPending() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.quickStart
}

func (s *Store) Players() []Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Player(nil), s.players...)
}

// PlayerIDs returns the seated ids in table order.
func (s *Store) PlayerIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, len(s.players))
	for i, player := range s.players {
		ids[i] = player.ID
	}
	return ids
}

// PlayerName resolves a display name, falling back to the id.
func (s *Store) PlayerName(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, player := range s.players {
		if player.ID == id {
			return player.NickName
		}
	}
	return id
}

// Config returns the room config, nil while still under vote.
func (s *Store) Config() *Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.config == nil {
		return nil
	}
	config := *s.config
	return &config
}

// Votes returns a copy of the per-player config votes.
func (s *Store) Votes() map[string]Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	votes := make(map[string]Config, len(s.votes))
	for id, vote := range s.votes {
		votes[id] = vote
	}
	return votes
}
