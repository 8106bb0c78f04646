package game

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"yaniv-client/internal/yaniv"
)

const openingHandSize = 5

// Store is the client-side view of the running game. It is driven
// exclusively by server-pushed events, one named transition per
// event, and never advances on its own. Create one per game screen
// and throw it away on leave.
type Store struct {
	mu sync.RWMutex

	layout Layout
	now    func() time.Time

	gameID string
	selfID string

	phase          Phase
	round          int
	rules          Rules
	stats          map[string]PlayerStatus
	players        map[string]*PlayerData
	order          []string
	currentTurn    *TurnInfo
	pickupPile     []yaniv.Card
	discardHistory []Turn
	roundResults   *RoundResults

	cardPositions  map[string][]Position
	deckLocation   Location
	pickupLocation Location

	errMsg string
}

func NewStore(layout Layout) *Store {
	return &Store{
		layout:         layout,
		now:            time.Now,
		phase:          PhaseLoading,
		rules:          DefaultRules,
		stats:          make(map[string]PlayerStatus),
		players:        make(map[string]*PlayerData),
		cardPositions:  make(map[string][]Position),
		deckLocation:   layout.DeckLocation(),
		pickupLocation: layout.PickupLocation(),
	}
}

// SetSelf records this client's connection identifier. Every
// "my turn" and "my hand" decision derives from it.
func (s *Store) SetSelf(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selfID = id
}

// Reset returns the store to its pre-game state, e.g. after leaving
// the room.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gameID = ""
	s.phase = PhaseLoading
	s.round = 0
	s.rules = DefaultRules
	s.stats = make(map[string]PlayerStatus)
	s.players = make(map[string]*PlayerData)
	s.order = nil
	s.currentTurn = nil
	s.pickupPile = nil
	s.discardHistory = nil
	s.roundResults = nil
	s.cardPositions = make(map[string][]Position)
	s.errMsg = ""
}

// ApplyGameInitialized seeds the first round: loading -> begin.
// roster is the room's seating order, rules the voted room config.
func (s *Store) ApplyGameInitialized(p GameInitializedPayload, roster []string, rules Rules) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gameID = uuid.New().String()
	s.phase = PhaseBegin
	s.round = 0
	s.rules = rules
	s.order = PlayerOrder(roster, s.selfID)
	s.cardPositions = s.layout.AllPlayerPositions(s.order, s.selfID, openingHandSize)

	s.stats = make(map[string]PlayerStatus, len(roster))
	for _, id := range roster {
		if stat, ok := p.GameState.PlayersStats[id]; ok {
			s.stats[id] = stat
		} else {
			s.stats[id] = PlayerStatus{Score: 0, Lost: false}
		}
	}

	s.players = make(map[string]*PlayerData, len(p.PlayerHands))
	for id, hand := range p.PlayerHands {
		data := &PlayerData{
			Stats:     s.stats[id],
			CardCount: len(hand),
			MyTurn:    p.CurrentPlayerID == id,
		}
		if id == s.selfID {
			data.Hand = append([]yaniv.Card(nil), hand...)
			data.RoundScore = yaniv.HandValue(hand)
		}
		s.players[id] = data
	}

	s.currentTurn = &TurnInfo{
		PlayerID:  p.CurrentPlayerID,
		StartTime: s.now(),
	}
	s.pickupPile = []yaniv.Card{p.FirstCard}
	s.discardHistory = nil
	s.roundResults = nil
}

// ApplyNewRound starts the next round after a round-end: same shape
// as initialization but the round counter advances and cumulative
// standings carry over.
func (s *Store) ApplyNewRound(p NewRoundPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handsPrev := s.snapshotHands()

	for i, id := range s.order {
		if i >= len(Directions) {
			break
		}
		if id == s.selfID {
			s.cardPositions[id] = s.layout.CardsPositions(openingHandSize, Directions[i])
		} else {
			s.cardPositions[id] = s.layout.HiddenCardsPositions(openingHandSize, Directions[i])
		}
	}

	for id, data := range s.players {
		hand, ok := p.PlayerHands[id]
		if !ok {
			log.Printf("new_round: no hand for player %s", id)
		}
		if stat, ok := p.GameState.PlayersStats[id]; ok {
			data.Stats = stat
			s.stats[id] = stat
		}
		data.CardCount = len(hand)
		data.MyTurn = p.CurrentPlayerID == id
		data.SlapDownAvailable = false
		if id == s.selfID {
			data.Hand = append([]yaniv.Card(nil), hand...)
			data.RoundScore = yaniv.HandValue(hand)
		} else {
			data.Hand = nil
			data.RoundScore = 0
		}
	}

	s.phase = PhaseBegin
	s.round = p.Round
	if p.GameState.TimePerPlayer > 0 {
		s.rules.TimePerPlayer = p.GameState.TimePerPlayer
	}
	s.currentTurn = &TurnInfo{
		PlayerID:  p.CurrentPlayerID,
		StartTime: s.now(),
		HandsPrev: handsPrev,
	}
	s.pickupPile = []yaniv.Card{p.FirstCard}
	s.discardHistory = nil
	s.roundResults = nil
}

// ApplyPlayerDrew records a completed turn: begin/playing -> playing.
// Only the acting player's own data moves; when the actor is someone
// else this client's hand is left untouched so a stale local guess
// can never overwrite server truth.
func (s *Store) ApplyPlayerDrew(p PlayerDrewPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseLoading {
		log.Printf("player_drew before game init, ignored")
		return
	}

	actor, known := s.players[p.PlayerID]
	if !known {
		log.Printf("player_drew for unknown player %s, applying shared fields only", p.PlayerID)
	}

	turn := s.buildTurn(p)

	playerIndex := -1
	for i, id := range s.order {
		if id == p.PlayerID {
			playerIndex = i
			break
		}
	}
	if playerIndex > -1 && playerIndex < len(Directions) {
		if p.PlayerID == s.selfID {
			s.cardPositions[p.PlayerID] = s.layout.CardsPositions(p.AmountBefore, Directions[playerIndex])
		} else {
			s.cardPositions[p.PlayerID] = s.layout.HiddenCardsPositions(p.AmountBefore, Directions[playerIndex])
		}
	}

	handsPrev := s.snapshotHands()

	if known {
		if p.PlayerID == s.selfID {
			actor.Hand = append([]yaniv.Card(nil), p.Hands...)
			actor.RoundScore = yaniv.HandValue(p.Hands)
		}
		actor.CardCount = p.AmountBefore
	}
	for id, data := range s.players {
		data.MyTurn = p.CurrentPlayerID == id
		data.SlapDownAvailable = p.SlapDownActiveFor == id
	}

	s.phase = PhasePlaying
	s.currentTurn = &TurnInfo{
		PlayerID:  p.CurrentPlayerID,
		StartTime: s.now(),
		Prev:      &turn,
		HandsPrev: handsPrev,
	}
	s.pickupPile = append([]yaniv.Card(nil), p.PickupCards...)
	s.discardHistory = append(s.discardHistory, turn)
}

// buildTurn derives the animation record for a completed action:
// where the discarded cards left from and where the drawn card came
// from. Caller holds the lock.
func (s *Store) buildTurn(p PlayerDrewPayload) Turn {
	playerPositions := s.cardPositions[p.PlayerID]

	discardPositions := make([]Position, 0, len(p.SelectedCardsPositions))
	for _, idx := range p.SelectedCardsPositions {
		if idx < 0 || idx >= len(playerPositions) {
			continue
		}
		pos := playerPositions[idx]
		selectOffset := 0.0
		if p.PlayerID == s.selfID {
			selectOffset = CardSelectOffset
		}
		discardPositions = append(discardPositions, Position{
			X:   pos.X - s.layout.Width/2 + CardWidth/2 + CardWidth*float64(len(p.SelectedCardsPositions)-1)/2,
			Y:   pos.Y - s.layout.Height/2 + CardHeight/2 - selectOffset,
			Deg: pos.Deg,
		})
	}

	var draw *Draw
	action := DragFromDeck
	switch p.Source {
	case SourcePickup:
		action = DragFromPickup
		pickedIndex := 0
		for i, card := range s.pickupPile {
			if card.Key() == p.Card.Key() {
				pickedIndex = i
				break
			}
		}
		draw = &Draw{
			Card: p.Card,
			CardPosition: Position{
				X: s.pickupLocation.X + float64(pickedIndex)*CardWidth - float64(len(s.pickupPile)-1)*CardWidth/2,
				Y: s.pickupLocation.Y - 35,
			},
		}
	case SourceSlap:
		// A slapped card leaves the hand with no matching draw.
		action = SlapDown
	default:
		draw = &Draw{
			Card:         p.Card,
			CardPosition: Position{X: s.deckLocation.X, Y: s.deckLocation.Y},
		}
	}

	step := 0
	if s.currentTurn != nil && s.currentTurn.Prev != nil {
		step = s.currentTurn.Prev.Step + 1
	}

	return Turn{
		Round:    s.round,
		Step:     step,
		PlayerID: p.PlayerID,
		Discard: Discard{
			Cards:          append([]yaniv.Card(nil), p.PickupCards...),
			CardsPositions: discardPositions,
		},
		Draw:   draw,
		Pickup: append([]yaniv.Card(nil), p.PickupCards...),
		Action: action,
	}
}

// ApplyRoundEnded freezes the round: playing/begin -> round-end. The
// turn holder and its start time are always nulled, whatever state
// came before.
func (s *Store) ApplyRoundEnded(p RoundEndedPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.phase = PhaseRoundEnd
	s.currentTurn = nil

	for id, stat := range p.PlayersStats {
		data, ok := s.players[id]
		if !ok {
			log.Printf("round_ended: stats for unknown player %s", id)
			continue
		}
		data.Stats = stat
		s.stats[id] = stat
	}

	hands := make(map[string][]yaniv.Card, len(p.PlayerHands))
	for id, hand := range p.PlayerHands {
		hands[id] = append([]yaniv.Card(nil), hand...)
	}

	s.roundResults = &RoundResults{
		WinnerID:     p.WinnerID,
		PlayersHands: hands,
		YanivCaller:  p.YanivCaller,
		AssafCaller:  p.AssafCaller,
		LowestValue:  p.LowestValue,
		RoundPlayers: append([]string(nil), p.RoundPlayers...),
		PlayersStats: p.PlayersStats,
	}
}

// ApplyGameEnded is the terminal transition: someone crossed the
// match-point threshold. Distinguished from a round end by the event
// itself, never inferred from scores.
func (s *Store) ApplyGameEnded(p GameEndedPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.phase = PhaseGameEnd
	s.currentTurn = nil
	if p.PlayersStats != nil {
		s.stats = p.PlayersStats
	}
}

// ApplyPlayersStats refreshes standings between rounds (play-again
// votes, leavers).
func (s *Store) ApplyPlayersStats(p PlayersStatsPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.PlayersStats == nil {
		return
	}
	s.stats = p.PlayersStats
	for id, stat := range p.PlayersStats {
		if data, ok := s.players[id]; ok {
			data.Stats = stat
		}
	}
}

// ResetSlapDown withdraws this client's slap-down window, e.g. after
// its display timeout.
func (s *Store) ResetSlapDown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if data, ok := s.players[s.selfID]; ok {
		data.SlapDownAvailable = false
	}
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

func (s *Store) snapshotHands() map[string][]yaniv.Card {
	hands := make(map[string][]yaniv.Card, len(s.players))
	for id, data := range s.players {
		hands[id] = append([]yaniv.Card(nil), data.Hand...)
	}
	return hands
}

// RemainingTime derives the advisory turn countdown in whole seconds
// from the fixed turn start, so a display timer can be dropped and
// restarted freely without resume logic.
func (s *Store) RemainingTime() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.currentTurn == nil {
		return s.rules.TimePerPlayer
	}
	elapsed := s.now().Sub(s.currentTurn.StartTime).Seconds()
	remaining := float64(s.rules.TimePerPlayer) - elapsed
	if remaining < 0 {
		remaining = 0
	}
	return int(math.Ceil(remaining))
}
