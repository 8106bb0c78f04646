package yaniv_test

import (
	"testing"

	"yaniv-client/internal/yaniv"
)

func card(suit yaniv.Suit, value int) yaniv.Card {
	return yaniv.Card{Suit: suit, Value: value}
}

func joker() yaniv.Card {
	return yaniv.Card{Suit: yaniv.Spades, Value: 0, Joker: true}
}

func TestIsValidSet(t *testing.T) {
	var tests = []struct {
		name  string
		cards []yaniv.Card
		want  bool
	}{
		{"empty", nil, false},
		{"single card", []yaniv.Card{card(yaniv.Clubs, 7)}, false},
		{"pair", []yaniv.Card{card(yaniv.Clubs, 7), card(yaniv.Hearts, 7)}, true},
		{"triple", []yaniv.Card{card(yaniv.Clubs, 7), card(yaniv.Hearts, 7), card(yaniv.Spades, 7)}, true},
		{"mismatched values", []yaniv.Card{card(yaniv.Clubs, 7), card(yaniv.Hearts, 8)}, false},
		{"joker completes pair", []yaniv.Card{card(yaniv.Clubs, 7), joker()}, true},
		{"joker among triple", []yaniv.Card{card(yaniv.Clubs, 7), joker(), card(yaniv.Spades, 7)}, true},
		{"two jokers", []yaniv.Card{joker(), joker()}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := yaniv.IsValidSet(tt.cards); got != tt.want {
				t.Errorf("IsValidSet = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsValidSequence(t *testing.T) {
	var tests = []struct {
		name  string
		cards []yaniv.Card
		want  bool
	}{
		{"empty", nil, false},
		{"too short", []yaniv.Card{card(yaniv.Hearts, 3), card(yaniv.Hearts, 4)}, false},
		{"run of three", []yaniv.Card{card(yaniv.Hearts, 3), card(yaniv.Hearts, 4), card(yaniv.Hearts, 5)}, true},
		{"unsorted run", []yaniv.Card{card(yaniv.Hearts, 5), card(yaniv.Hearts, 3), card(yaniv.Hearts, 4)}, true},
		{"mixed suits", []yaniv.Card{card(yaniv.Hearts, 3), card(yaniv.Spades, 4), card(yaniv.Hearts, 5)}, false},
		{"duplicate value", []yaniv.Card{card(yaniv.Hearts, 3), card(yaniv.Hearts, 3), card(yaniv.Hearts, 4)}, false},
		{"joker fills one gap", []yaniv.Card{card(yaniv.Hearts, 3), card(yaniv.Hearts, 5), joker()}, true},
		{"gap too wide for joker", []yaniv.Card{card(yaniv.Hearts, 3), card(yaniv.Hearts, 6), joker()}, false},
		{"two jokers two gaps", []yaniv.Card{card(yaniv.Hearts, 3), card(yaniv.Hearts, 6), joker(), joker()}, true},
		{"joker extends run end", []yaniv.Card{card(yaniv.Hearts, 3), card(yaniv.Hearts, 4), joker()}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := yaniv.IsValidSequence(tt.cards); got != tt.want {
				t.Errorf("IsValidSequence = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsValidCardSet(t *testing.T) {
	single := []yaniv.Card{card(yaniv.Clubs, 9)}

	if !yaniv.IsValidCardSet(single, true) {
		t.Error("single card with allowSingle should be legal")
	}
	if yaniv.IsValidCardSet(single, false) {
		t.Error("single card without allowSingle should be illegal")
	}
	if yaniv.IsValidCardSet(nil, true) {
		t.Error("empty selection should never be legal")
	}

	pair := []yaniv.Card{card(yaniv.Clubs, 9), card(yaniv.Hearts, 9)}
	if !yaniv.IsValidCardSet(pair, false) {
		t.Error("pair should be legal regardless of allowSingle")
	}

	junk := []yaniv.Card{card(yaniv.Clubs, 9), card(yaniv.Hearts, 4)}
	if yaniv.IsValidCardSet(junk, true) {
		t.Error("mismatched pair should be illegal")
	}
}

func TestPickupOptions(t *testing.T) {
	t.Run("empty pile", func(t *testing.T) {
		if got := yaniv.PickupOptions(nil); len(got) != 0 {
			t.Errorf("expected no options, got %v", got)
		}
	})

	t.Run("single card", func(t *testing.T) {
		pile := []yaniv.Card{card(yaniv.Spades, 9)}
		got := yaniv.PickupOptions(pile)
		if len(got) != 1 || got[0].Key() != pile[0].Key() {
			t.Errorf("expected the lone card, got %v", got)
		}
	})

	t.Run("same-value set is fully pickable", func(t *testing.T) {
		pile := []yaniv.Card{card(yaniv.Clubs, 7), card(yaniv.Hearts, 7), card(yaniv.Spades, 7)}
		got := yaniv.PickupOptions(pile)
		if len(got) != 3 {
			t.Fatalf("expected all 3 cards, got %v", got)
		}
		for i := range pile {
			if got[i].Key() != pile[i].Key() {
				t.Errorf("option %d was %s, want %s", i, got[i], pile[i])
			}
		}
	})

	t.Run("run offers only its ends", func(t *testing.T) {
		pile := []yaniv.Card{card(yaniv.Hearts, 4), card(yaniv.Hearts, 5), card(yaniv.Hearts, 6)}
		got := yaniv.PickupOptions(pile)
		if len(got) != 2 {
			t.Fatalf("expected 2 options, got %v", got)
		}
		if got[0].Value != 4 || got[1].Value != 6 {
			t.Errorf("expected the 4 and the 6, got %v", got)
		}
	})

	t.Run("dead pile", func(t *testing.T) {
		pile := []yaniv.Card{card(yaniv.Hearts, 4), card(yaniv.Clubs, 9)}
		if got := yaniv.PickupOptions(pile); len(got) != 0 {
			t.Errorf("expected no options, got %v", got)
		}
	})
}

func TestCanPickupCard(t *testing.T) {
	run := []yaniv.Card{card(yaniv.Hearts, 5), card(yaniv.Hearts, 6), card(yaniv.Hearts, 7)}

	if yaniv.CanPickupCard(run, 1) {
		t.Error("middle of a run must not be pickable")
	}
	if !yaniv.CanPickupCard(run, 0) || !yaniv.CanPickupCard(run, 2) {
		t.Error("ends of a run must be pickable")
	}
	if yaniv.CanPickupCard(run, -1) || yaniv.CanPickupCard(run, 3) {
		t.Error("out-of-range index must not be pickable")
	}
	if !yaniv.CanPickupCard([]yaniv.Card{card(yaniv.Spades, 9)}, 0) {
		t.Error("singleton pile must be pickable at index 0")
	}
	if yaniv.CanPickupCard(nil, 0) {
		t.Error("empty pile must not be pickable")
	}
}

// CanPickupCard must accept exactly the indices of the cards
// PickupOptions returns, for any pile shape.
func TestPickupAgreement(t *testing.T) {
	piles := [][]yaniv.Card{
		nil,
		{card(yaniv.Spades, 9)},
		{card(yaniv.Clubs, 7), card(yaniv.Hearts, 7)},
		{card(yaniv.Clubs, 7), card(yaniv.Hearts, 7), card(yaniv.Spades, 7)},
		{card(yaniv.Hearts, 4), card(yaniv.Hearts, 5), card(yaniv.Hearts, 6)},
		{card(yaniv.Hearts, 6), card(yaniv.Hearts, 4), card(yaniv.Hearts, 5)},
		{card(yaniv.Hearts, 4), card(yaniv.Clubs, 9)},
		{card(yaniv.Diamonds, 2), card(yaniv.Diamonds, 3), card(yaniv.Diamonds, 4), card(yaniv.Diamonds, 5)},
	}

	for _, pile := range piles {
		optionKeys := make(map[string]bool)
		for _, option := range yaniv.PickupOptions(pile) {
			optionKeys[option.Key()] = true
		}
		for i, c := range pile {
			if got, want := yaniv.CanPickupCard(pile, i), optionKeys[c.Key()]; got != want {
				t.Errorf("pile %v index %d: CanPickupCard = %v, PickupOptions says %v", pile, i, got, want)
			}
		}
	}
}
