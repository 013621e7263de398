package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/shenzhen-solitaire/shenzhen-go/internal/game/card"
)

// Board is the complete state of one Shenzhen Solitaire game.
//
// A Board is not safe for concurrent use; callers that share one across
// goroutines must serialize access (see Session).
type Board struct {
	columns   [NumColumns][]card.Card
	sideboard [NumSideboardSlots]card.Card
	piles     foundation
}

// Option configures the deal performed by NewGame.
type Option func(*dealOptions)

type dealOptions struct {
	rng *rand.Rand
}

// WithSeed makes the shuffle deterministic.
func WithSeed(seed uint64) Option {
	return func(o *dealOptions) {
		o.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRand shuffles with the given source.
func WithRand(r *rand.Rand) Option {
	return func(o *dealOptions) {
		o.rng = r
	}
}

// NewGame shuffles a fresh deck and deals it into the tableau, five cards per
// column in deck order. The sideboard and completion area start empty.
func NewGame(opts ...Option) *Board {
	o := dealOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	deck := card.Shuffle(card.NewDeck(), o.rng)

	b := &Board{}
	for col := 0; col < NumColumns; col++ {
		b.columns[col] = append(make([]card.Card, 0, DealDepth*2), deck[col*DealDepth:(col+1)*DealDepth]...)
	}
	return b
}

// CardsInColumn returns the number of cards in a tableau column.
func (b *Board) CardsInColumn(col int) (int, error) {
	if err := checkColumn(col); err != nil {
		return 0, err
	}
	return len(b.columns[col]), nil
}

// CardAt returns the card at depth in column col, 0 being the bottom card.
func (b *Board) CardAt(col, depth int) (card.Card, error) {
	if err := b.checkTableauCard(col, depth); err != nil {
		return card.None, err
	}
	return b.columns[col][depth], nil
}

// SideboardCard returns the card in a sideboard slot, or card.None if it is empty.
func (b *Board) SideboardCard(slot int) (card.Card, error) {
	if err := checkSlot(slot); err != nil {
		return card.None, err
	}
	return b.sideboard[slot], nil
}

// HighestCompleted returns the highest completed rank of a suit, 0 meaning none.
func (b *Board) HighestCompleted(s card.Suit) (int, error) {
	if !s.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSuit, s)
	}
	return b.piles.Highest(s), nil
}

// BonusPlayed reports whether the bonus tile is in its completion slot.
func (b *Board) BonusPlayed() bool {
	return b.piles.bonus
}

// MaxAutoFill returns the highest numeral rank eligible for automatic completion.
func (b *Board) MaxAutoFill() int {
	return b.piles.Threshold()
}

// CanDrag reports whether the card at pos, together with everything above it,
// can be picked up as one unit.
func (b *Board) CanDrag(pos Position) (bool, error) {
	switch pos.Area {
	case AreaCompletion:
		return false, nil
	case AreaSideboard:
		if err := checkSlot(pos.Slot); err != nil {
			return false, err
		}
		return b.sideboard[pos.Slot].Movable(), nil
	case AreaTableau:
		if err := b.checkTableauCard(pos.Column, pos.Depth); err != nil {
			return false, err
		}
		return b.isRun(pos.Column, pos.Depth), nil
	default:
		return false, fmt.Errorf("%w: unknown area %d", ErrInvalidPosition, pos.Area)
	}
}

// IsWon reports whether the bonus tile is played, every sideboard slot holds a
// solved dragon and every suit is completed through the top rank.
func (b *Board) IsWon() bool {
	for _, c := range b.sideboard {
		if !c.IsSolvedDragon() {
			return false
		}
	}
	return b.piles.Complete()
}

// isRun reports whether column[depth:] is a movable run: each card sits one rank
// below the card under it and differs in suit. Dragons and the bonus tile only
// ever form single-card runs.
func (b *Board) isRun(col, depth int) bool {
	run := b.columns[col][depth:]
	for i := 1; i < len(run); i++ {
		if !run[i].CanStackOn(run[i-1]) {
			return false
		}
	}
	return true
}

func (b *Board) top(col int) (card.Card, bool) {
	column := b.columns[col]
	if len(column) == 0 {
		return card.None, false
	}
	return column[len(column)-1], true
}

func (b *Board) checkTableauCard(col, depth int) error {
	if err := checkColumn(col); err != nil {
		return err
	}
	if depth < 0 || depth >= len(b.columns[col]) {
		return fmt.Errorf("%w: depth %d out of range for column %d with %d cards",
			ErrInvalidPosition, depth, col, len(b.columns[col]))
	}
	return nil
}

func checkColumn(col int) error {
	if col < 0 || col >= NumColumns {
		return fmt.Errorf("%w: column %d out of range", ErrInvalidPosition, col)
	}
	return nil
}

func checkSlot(slot int) error {
	if slot < 0 || slot >= NumSideboardSlots {
		return fmt.Errorf("%w: sideboard slot %d out of range", ErrInvalidPosition, slot)
	}
	return nil
}
