package yaniv

import "sort"

// Play and pickup legality. These mirror the server's rules so the
// client can reject an illegal action before it hits the wire; the
// server remains authoritative. All functions are pure and return
// false/empty on malformed input instead of erroring.

// IsValidSet reports whether cards form a discardable set: at least
// two cards, jokers wild, every non-joker sharing one face value.
func IsValidSet(cards []Card) bool {
	if len(cards) < 2 {
		return false
	}
	value := -1
	for _, card := range cards {
		if card.Joker {
			continue
		}
		if value == -1 {
			value = card.Value
		} else if card.Value != value {
			return false
		}
	}
	return true
}

// IsValidSequence reports whether cards form a discardable run: at
// least three cards, all non-jokers in one suit with distinct values,
// and the value gaps between them coverable by the jokers present.
// Joker placement within the run is not checked, only the gap count.
func IsValidSequence(cards []Card) bool {
	if len(cards) < 3 {
		return false
	}

	var values []int
	suit := Suit("")
	jokers := 0
	for _, card := range cards {
		if card.Joker {
			jokers++
			continue
		}
		if suit == "" {
			suit = card.Suit
		} else if card.Suit != suit {
			return false
		}
		values = append(values, card.Value)
	}

	sort.Ints(values)
	gaps := 0
	for i := 1; i < len(values); i++ {
		if values[i] == values[i-1] {
			return false
		}
		gaps += values[i] - values[i-1] - 1
	}
	return gaps <= jokers
}

// IsValidCardSet is the single dispatch point for a selected
// discard. A single card is legal exactly when allowSingle is set.
func IsValidCardSet(cards []Card, allowSingle bool) bool {
	if len(cards) == 0 {
		return false
	}
	if len(cards) == 1 {
		return allowSingle
	}
	return IsValidSet(cards) || IsValidSequence(cards)
}

// PickupOptions returns the cards of the last discard a player may
// take instead of drawing from the deck. A same-value set is fully
// pickable, a run only at its ends, anything else makes the pile
// dead. Recomputed fresh on every discard, never patched.
func PickupOptions(lastDiscard []Card) []Card {
	switch {
	case len(lastDiscard) == 0:
		return nil
	case len(lastDiscard) == 1:
		return []Card{lastDiscard[0]}
	}

	if isSameValuePile(lastDiscard) {
		options := make([]Card, len(lastDiscard))
		copy(options, lastDiscard)
		return options
	}

	sorted := make([]Card, len(lastDiscard))
	copy(sorted, lastDiscard)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Value < sorted[j].Value })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Value != sorted[i-1].Value+1 {
			return nil
		}
	}
	return []Card{sorted[0], sorted[len(sorted)-1]}
}

// CanPickupCard reports whether the card at index within the last
// discard may be taken. Agrees with PickupOptions index-for-index.
func CanPickupCard(lastDiscard []Card, index int) bool {
	if index < 0 || index >= len(lastDiscard) {
		return false
	}
	if len(lastDiscard) == 1 {
		return index == 0
	}
	if isSameValuePile(lastDiscard) {
		return true
	}
	if PickupOptions(lastDiscard) == nil {
		return false
	}
	// A pickable run: only the lowest and highest card may go.
	low, high := index, index
	for i, card := range lastDiscard {
		if card.Value < lastDiscard[low].Value {
			low = i
		}
		if card.Value > lastDiscard[high].Value {
			high = i
		}
	}
	return index == low || index == high
}

// isSameValuePile reports whether a discard of two or more cards is a
// set for pickup purposes: non-jokers all share one face value.
func isSameValuePile(cards []Card) bool {
	value := -1
	for _, card := range cards {
		if card.Joker {
			continue
		}
		if value == -1 {
			value = card.Value
		} else if card.Value != value {
			return false
		}
	}
	return true
}
