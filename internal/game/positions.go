package game

// Fan geometry for hands and board anchors. Everything here is a pure
// function of its inputs so results can be memoized and recomputed
// identically whenever a hand size or seat assignment changes.

const (
	CardWidth        = 50.0
	CardHeight       = 70.0
	OverlapAmount    = CardWidth * 0.3
	CardSelectOffset = 20.0
)

type Direction string

const (
	DirectionUp    Direction = "up" // this client's seat
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// Directions assigns seats by player order, the viewing player first.
var Directions = []Direction{DirectionUp, DirectionRight, DirectionDown, DirectionLeft}

// Layout carries the screen dimensions so position math stays free of
// ambient state.
type Layout struct {
	Width  float64
	Height float64
}

// CardsPositions lays out an open hand of n cards fanned around the
// seat's edge: fixed pitch between cards, a quadratic arc raising the
// outer cards, and a small per-card tilt.
func (l Layout) CardsPositions(n int, direction Direction) []Position {
	return l.fan(n, direction, CardWidth)
}

// HiddenCardsPositions lays out a face-down hand. Same fan, tighter
// pitch so opponents' hands stay compact.
func (l Layout) HiddenCardsPositions(n int, direction Direction) []Position {
	return l.fan(n, direction, OverlapAmount)
}

func (l Layout) fan(n int, direction Direction, pitch float64) []Position {
	positions := make([]Position, n)
	centerIndex := float64(n-1) / 2

	for i := 0; i < n; i++ {
		shift := float64(i) - centerIndex
		arc := shift * shift * 2

		switch direction {
		case DirectionDown: // seated at the top, cards pointing down
			positions[i] = Position{
				X:   l.Width/2 - float64(n)/2*pitch + float64(i)*pitch,
				Y:   125 - arc,
				Deg: 180 - shift*3,
			}
		case DirectionRight: // seated at the right edge
			positions[i] = Position{
				X:   l.Width - 150 + arc + CardWidth*1.5,
				Y:   l.Height/2 + float64(n)/2*pitch - float64(i)*pitch,
				Deg: -90 + shift*3,
			}
		case DirectionLeft: // seated at the left edge
			positions[i] = Position{
				X:   25 - arc,
				Y:   l.Height/2 - float64(n)/2*pitch + float64(i)*pitch,
				Deg: 90 + shift*3,
			}
		default: // DirectionUp, the viewing player at the bottom
			positions[i] = Position{
				X:   l.Width/2 - float64(n)/2*pitch + float64(i)*pitch,
				Y:   l.Height - 145 + arc,
				Deg: shift * 3,
			}
		}
	}
	return positions
}

// AllPlayerPositions computes the opening layout for every seat. The
// viewing player gets an open fan, everyone else a hidden one.
func (l Layout) AllPlayerPositions(order []string, self string, handSize int) map[string][]Position {
	positions := make(map[string][]Position, len(order))
	for i, playerID := range order {
		if i >= len(Directions) {
			break
		}
		if playerID == self {
			positions[playerID] = l.CardsPositions(handSize, Directions[i])
		} else {
			positions[playerID] = l.HiddenCardsPositions(handSize, Directions[i])
		}
	}
	return positions
}

// DeckLocation anchors the face-down deck above board center.
func (l Layout) DeckLocation() Location {
	return Location{
		X: l.Width/2 - CardWidth*0.5,
		Y: l.Height/2 - 2*CardHeight,
	}
}

// PickupLocation anchors the face-up discard at board center.
func (l Layout) PickupLocation() Location {
	return Location{
		X: l.Width/2 - CardWidth*0.5,
		Y: l.Height / 2,
	}
}

// PlayerOrder rotates the seated players so self comes first, keeping
// the table's relative order for seat assignment.
func PlayerOrder(playerIDs []string, self string) []string {
	selfIndex := 0
	for i, id := range playerIDs {
		if id == self {
			selfIndex = i
			break
		}
	}

	ordered := make([]string, 0, len(playerIDs))
	for i := range playerIDs {
		ordered = append(ordered, playerIDs[(selfIndex+i)%len(playerIDs)])
	}
	return ordered
}
