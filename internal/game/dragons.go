package game

import (
	"fmt"

	"github.com/shenzhen-solitaire/shenzhen-go/internal/game/card"
)

// CollectionPlan describes a dragon collection: the positions of the four
// exposed dragons of Suit and the sideboard slot that receives the solved marker.
// Sources lists tableau positions in column order, then sideboard positions.
type CollectionPlan struct {
	Suit        card.Suit
	Sources     []Position
	Destination int
}

// CanCollectDragons plans the collection of the four dragons of suit s. It
// reports false when fewer than four of them are exposed or no sideboard slot can
// take the solved marker. The board is not modified.
func (b *Board) CanCollectDragons(s card.Suit) (CollectionPlan, bool) {
	if !s.Valid() {
		return CollectionPlan{}, false
	}
	dragon := card.Dragon(s)

	dest := -1
	for slot, c := range b.sideboard {
		// A slot holding one of the dragons being collected frees up during collection.
		if c.IsEmpty() || c == dragon {
			dest = slot
			break
		}
	}
	if dest < 0 {
		return CollectionPlan{}, false
	}

	sources := make([]Position, 0, card.DragonsPerSuit)
	for col := range b.columns {
		if top, ok := b.top(col); ok && top == dragon {
			sources = append(sources, Tableau(col, len(b.columns[col])-1))
			if len(sources) == card.DragonsPerSuit {
				break
			}
		}
	}
	for slot := 0; slot < NumSideboardSlots && len(sources) < card.DragonsPerSuit; slot++ {
		if b.sideboard[slot] == dragon {
			sources = append(sources, Sideboard(slot))
		}
	}
	if len(sources) < card.DragonsPerSuit {
		return CollectionPlan{}, false
	}

	return CollectionPlan{Suit: s, Sources: sources, Destination: dest}, true
}

// CollectDragons executes a plan from CanCollectDragons: it removes every source
// dragon and puts the solved marker in the destination slot. A plan that no
// longer matches the board returns ErrStalePlan and changes nothing.
func (b *Board) CollectDragons(plan CollectionPlan) error {
	if err := b.checkPlan(plan); err != nil {
		return err
	}

	for _, src := range plan.Sources {
		switch src.Area {
		case AreaTableau:
			b.columns[src.Column] = b.columns[src.Column][:src.Depth]
		case AreaSideboard:
			b.sideboard[src.Slot] = card.None
		}
	}
	b.sideboard[plan.Destination] = card.SolvedDragon(plan.Suit)
	return nil
}

func (b *Board) checkPlan(plan CollectionPlan) error {
	if !plan.Suit.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidSuit, plan.Suit)
	}
	if err := checkSlot(plan.Destination); err != nil {
		return err
	}
	if len(plan.Sources) != card.DragonsPerSuit {
		return fmt.Errorf("%w: %d sources, want %d", ErrStalePlan, len(plan.Sources), card.DragonsPerSuit)
	}

	dragon := card.Dragon(plan.Suit)
	seen := make(map[Position]bool, len(plan.Sources))
	destIsSource := false
	for _, src := range plan.Sources {
		if seen[src] {
			return fmt.Errorf("%w: duplicate source %s", ErrStalePlan, src)
		}
		seen[src] = true

		switch src.Area {
		case AreaTableau:
			if err := b.checkTableauCard(src.Column, src.Depth); err != nil {
				return fmt.Errorf("%w: %w", ErrStalePlan, err)
			}
			if src.Depth != len(b.columns[src.Column])-1 || b.columns[src.Column][src.Depth] != dragon {
				return fmt.Errorf("%w: no exposed %s at %s", ErrStalePlan, dragon, src)
			}
		case AreaSideboard:
			if err := checkSlot(src.Slot); err != nil {
				return fmt.Errorf("%w: %w", ErrStalePlan, err)
			}
			if b.sideboard[src.Slot] != dragon {
				return fmt.Errorf("%w: no %s at %s", ErrStalePlan, dragon, src)
			}
			if src.Slot == plan.Destination {
				destIsSource = true
			}
		default:
			return fmt.Errorf("%w: dragons cannot be collected from %s", ErrStalePlan, src)
		}
	}

	if !b.sideboard[plan.Destination].IsEmpty() && !destIsSource {
		return fmt.Errorf("%w: sideboard slot %d is occupied", ErrStalePlan, plan.Destination)
	}
	return nil
}
