package game

import (
	"fmt"

	"github.com/shenzhen-solitaire/shenzhen-go/internal/game/card"
	"go.uber.org/multierr"
)

// Layout is a detached description of a board. Completed holds the highest
// completed rank per suit, indexed by card.Suit.
type Layout struct {
	Columns     [NumColumns][]card.Card
	Sideboard   [NumSideboardSlots]card.Card
	Completed   [card.NumSuits]int
	BonusPlayed bool
}

// Layout returns a deep copy of the board state.
func (b *Board) Layout() Layout {
	l := Layout{
		Sideboard:   b.sideboard,
		Completed:   b.piles.highest,
		BonusPlayed: b.piles.bonus,
	}
	for col, column := range b.columns {
		l.Columns[col] = append([]card.Card(nil), column...)
	}
	return l
}

// FromLayout builds a board from l after checking that every one of the 40
// cards is accounted for exactly once. Completed piles account for their
// numerals and a solved-dragon marker accounts for its four dragons.
func FromLayout(l Layout) (*Board, error) {
	var errs error
	counts := make(map[card.Card]int, card.DeckSize)

	for col, column := range l.Columns {
		for depth, c := range column {
			if !c.Valid() {
				errs = multierr.Append(errs, fmt.Errorf("column %d depth %d: invalid card %s", col, depth, c))
				continue
			}
			if !c.Movable() {
				errs = multierr.Append(errs, fmt.Errorf("column %d depth %d: %s cannot be in the tableau", col, depth, c))
				continue
			}
			counts[c]++
		}
	}

	for slot, c := range l.Sideboard {
		switch {
		case !c.Valid():
			errs = multierr.Append(errs, fmt.Errorf("sideboard slot %d: invalid card %s", slot, c))
		case c.IsEmpty():
		case c.IsSolvedDragon():
			counts[card.Dragon(c.Suit())] += card.DragonsPerSuit
		default:
			counts[c]++
		}
	}

	for _, s := range card.Suits {
		h := l.Completed[s]
		if h < 0 || h > card.MaxRank {
			errs = multierr.Append(errs, fmt.Errorf("%s pile: rank %d out of range", s, h))
			continue
		}
		for r := card.MinRank; r <= h; r++ {
			counts[card.Numeral(s, r)]++
		}
	}
	if l.BonusPlayed {
		counts[card.Bonus]++
	}

	want := make(map[card.Card]int, card.DeckSize)
	deck := card.NewDeck()
	for _, c := range deck {
		want[c]++
	}
	for c, n := range counts {
		if _, ok := want[c]; !ok {
			errs = multierr.Append(errs, fmt.Errorf("%s appears %d times but is not in the deck", c, n))
		}
	}
	for _, c := range deck {
		if counts[c] != want[c] {
			errs = multierr.Append(errs, fmt.Errorf("%s appears %d times, want %d", c, counts[c], want[c]))
		}
		// Report each distinct card once.
		counts[c] = want[c]
	}
	if errs != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLayout, errs)
	}

	b := &Board{
		sideboard: l.Sideboard,
		piles:     foundation{highest: l.Completed, bonus: l.BonusPlayed},
	}
	for col, column := range l.Columns {
		b.columns[col] = append([]card.Card(nil), column...)
	}
	return b, nil
}
