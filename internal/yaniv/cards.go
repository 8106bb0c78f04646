package yaniv

import "fmt"

type Suit string

const (
	Spades   Suit = "spades"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
)

var suitString = map[Suit]string{
	Spades:   "Spades",
	Clubs:    "Clubs",
	Diamonds: "Diamonds",
	Hearts:   "Hearts",
}

func (s Suit) String() string {
	return suitString[s]
}

var valueString = map[int]string{
	1:  "Ace",
	2:  "Two",
	3:  "Three",
	4:  "Four",
	5:  "Five",
	6:  "Six",
	7:  "Seven",
	8:  "Eight",
	9:  "Nine",
	10: "Ten",
	11: "Jack",
	12: "Queen",
	13: "King",
}

// Card is an immutable value object as sent over the wire.
// Value is 1-13 (1=Ace, 11=Jack, 12=Queen, 13=King).
type Card struct {
	Suit  Suit `json:"suit"`
	Value int  `json:"value"`
	Joker bool `json:"isJoker,omitempty"`
}

// Key is the card's identity, stable across renders. Used for
// animation keys and equality checks.
func (c Card) Key() string {
	return fmt.Sprintf("%s%d", c.Suit, c.Value)
}

// Score is the card's contribution to a hand's value.
func (c Card) Score() int {
	if c.Joker {
		return 0
	}
	if c.Value >= 11 {
		return 10 // J, Q, K
	}
	return c.Value // Ace counts 1, rest face value
}

func (c Card) String() string {
	if c.Joker {
		return "Joker"
	}
	return fmt.Sprintf("%s of %s", valueString[c.Value], c.Suit.String())
}

// HandValue sums the scores of a hand. Order-independent.
func HandValue(hand []Card) int {
	total := 0
	for _, card := range hand {
		total += card.Score()
	}
	return total
}

func JokerCount(cards []Card) (count int) {
	for _, card := range cards {
		if card.Joker {
			count++
		}
	}
	return count
}
