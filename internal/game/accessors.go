package game

import "yaniv-client/internal/yaniv"

// Read-side snapshot accessors. Everything returns copies; UI code
// never reaches into store fields directly.

func (s *Store) GameID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gameID
}

func (s *Store) SelfID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selfID
}

func (s *Store) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

func (s *Store) Round() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.round
}

func (s *Store) Rules() Rules {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rules
}

func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

// MyTurn is derived solely from the server-announced current player.
func (s *Store) MyTurn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentTurn != nil && s.currentTurn.PlayerID == s.selfID
}

// SelfHand returns a copy of this client's cards.
func (s *Store) SelfHand() []yaniv.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if data, ok := s.players[s.selfID]; ok {
		return append([]yaniv.Card(nil), data.Hand...)
	}
	return nil
}

// HandValue is always recomputed from the current hand.
func (s *Store) HandValue() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if data, ok := s.players[s.selfID]; ok {
		return yaniv.HandValue(data.Hand)
	}
	return 0
}

// CanCallYaniv reports whether this client's hand is at or under the
// room's call threshold.
func (s *Store) CanCallYaniv() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.players[s.selfID]
	if !ok {
		return false
	}
	return yaniv.HandValue(data.Hand) <= s.rules.CanCallYaniv
}

func (s *Store) SlapDownAvailable() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.players[s.selfID]
	return ok && data.SlapDownAvailable
}

// SlapCard returns the card in this client's hand matching the last
// drawn card, the only card a slap down may discard.
func (s *Store) SlapCard() (yaniv.Card, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.players[s.selfID]
	if !ok || !data.SlapDownAvailable {
		return yaniv.Card{}, false
	}
	if s.currentTurn == nil || s.currentTurn.Prev == nil || s.currentTurn.Prev.Draw == nil {
		return yaniv.Card{}, false
	}
	last := s.currentTurn.Prev.Draw.Card
	for _, card := range data.Hand {
		if card.Suit == last.Suit && card.Value == last.Value {
			return card, true
		}
	}
	return yaniv.Card{}, false
}

// PickupPile returns a copy of the last discard.
func (s *Store) PickupPile() []yaniv.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]yaniv.Card(nil), s.pickupPile...)
}

// PickupOptions recomputes the takeable cards from the current pile.
func (s *Store) PickupOptions() []yaniv.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return yaniv.PickupOptions(s.pickupPile)
}

// CurrentTurn returns the running turn info, if a round is active.
func (s *Store) CurrentTurn() (TurnInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentTurn == nil {
		return TurnInfo{}, false
	}
	return *s.currentTurn, true
}

// RoundResults is populated only in the round-end phase.
func (s *Store) RoundResults() (RoundResults, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.roundResults == nil {
		return RoundResults{}, false
	}
	return *s.roundResults, true
}

// Player returns a snapshot of one seated player's view data.
func (s *Store) Player(id string) (PlayerData, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.players[id]
	if !ok {
		return PlayerData{}, false
	}
	snapshot := *data
	snapshot.Hand = append([]yaniv.Card(nil), data.Hand...)
	return snapshot, true
}

// Order is the seating order with this client first.
func (s *Store) Order() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.order...)
}

// Stats is the cumulative standings map.
func (s *Store) Stats() map[string]PlayerStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := make(map[string]PlayerStatus, len(s.stats))
	for id, stat := range s.stats {
		stats[id] = stat
	}
	return stats
}

// Positions returns the current fan layout for a player's hand.
func (s *Store) Positions(id string) []Position {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Position(nil), s.cardPositions[id]...)
}

// History returns the round's completed turns in order.
func (s *Store) History() []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Turn(nil), s.discardHistory...)
}
