package game

import (
	"fmt"

	"github.com/shenzhen-solitaire/shenzhen-go/internal/game/card"
)

// Rejection reasons reported in MoveCheck.Reason.
const (
	ReasonLegal            = "move is legal"
	ReasonFromCompletion   = "cards cannot leave the completion area"
	ReasonEmptySlot        = "source sideboard slot is empty"
	ReasonSolvedDragon     = "solved dragons cannot be moved"
	ReasonNotARun          = "cards above the source do not form a run"
	ReasonSameColumn       = "source and destination are the same column"
	ReasonTooManyCards     = "only single cards can go to the sideboard or completion area"
	ReasonSlotOccupied     = "destination sideboard slot is occupied"
	ReasonDragonCompletion = "dragons cannot be completed"
	ReasonBonusPlayed      = "bonus tile already played"
	ReasonOutOfSequence    = "card is not next in its completion pile"
	ReasonDragonOnCard     = "dragons cannot be placed on cards"
	ReasonNotANumeral      = "only numerals can be stacked"
	ReasonRankMismatch     = "card must be one rank below the destination card"
	ReasonSameSuit         = "card must differ in suit from the destination card"
)

// MoveCheck is the outcome of validating a move. Cards holds the cards that
// would move, bottom first; it is set for legal moves only.
type MoveCheck struct {
	Legal  bool
	Reason string
	Cards  []card.Card
}

func illegal(reason string) MoveCheck {
	return MoveCheck{Legal: false, Reason: reason}
}

// CheckMove validates moving the card at src, and every card above it, to dst
// without changing the board. A non-nil error means src or dst is malformed;
// rule violations are reported through MoveCheck.
func (b *Board) CheckMove(src, dst Position) (MoveCheck, error) {
	if err := b.checkSource(src); err != nil {
		return MoveCheck{}, fmt.Errorf("source: %w", err)
	}
	if err := checkDestination(dst); err != nil {
		return MoveCheck{}, fmt.Errorf("destination: %w", err)
	}

	var moving []card.Card
	switch src.Area {
	case AreaCompletion:
		return illegal(ReasonFromCompletion), nil
	case AreaSideboard:
		c := b.sideboard[src.Slot]
		if c.IsEmpty() {
			return illegal(ReasonEmptySlot), nil
		}
		if c.IsSolvedDragon() {
			return illegal(ReasonSolvedDragon), nil
		}
		moving = []card.Card{c}
	case AreaTableau:
		if !b.isRun(src.Column, src.Depth) {
			return illegal(ReasonNotARun), nil
		}
		moving = b.columns[src.Column][src.Depth:]
	}
	bottom := moving[0]

	if dst.Area != AreaTableau && len(moving) > 1 {
		return illegal(ReasonTooManyCards), nil
	}

	switch dst.Area {
	case AreaCompletion:
		if !b.piles.Accepts(bottom) {
			switch {
			case bottom.IsDragon():
				return illegal(ReasonDragonCompletion), nil
			case bottom.IsBonus():
				return illegal(ReasonBonusPlayed), nil
			default:
				return illegal(ReasonOutOfSequence), nil
			}
		}
	case AreaSideboard:
		if !b.sideboard[dst.Slot].IsEmpty() {
			return illegal(ReasonSlotOccupied), nil
		}
	case AreaTableau:
		if src.Area == AreaTableau && src.Column == dst.Column {
			return illegal(ReasonSameColumn), nil
		}
		if below, ok := b.top(dst.Column); ok {
			if reason := stackReason(bottom, below); reason != "" {
				return illegal(reason), nil
			}
		}
	}

	return MoveCheck{
		Legal:  true,
		Reason: ReasonLegal,
		Cards:  append([]card.Card(nil), moving...),
	}, nil
}

// stackReason explains why c cannot be placed on below, or returns "".
func stackReason(c, below card.Card) string {
	switch {
	case c.IsDragon():
		return ReasonDragonOnCard
	case !c.IsNumeral() || !below.IsNumeral():
		return ReasonNotANumeral
	case c.Rank() != below.Rank()-1:
		return ReasonRankMismatch
	case c.Suit() == below.Suit():
		return ReasonSameSuit
	default:
		return ""
	}
}

func (b *Board) checkSource(p Position) error {
	switch p.Area {
	case AreaTableau:
		return b.checkTableauCard(p.Column, p.Depth)
	case AreaSideboard:
		return checkSlot(p.Slot)
	case AreaCompletion:
		return nil
	default:
		return fmt.Errorf("%w: unknown area %d", ErrInvalidPosition, p.Area)
	}
}

func checkDestination(p Position) error {
	switch p.Area {
	case AreaTableau:
		if err := checkColumn(p.Column); err != nil {
			return err
		}
		if p.Depth < 0 {
			return fmt.Errorf("%w: depth %d out of range", ErrInvalidPosition, p.Depth)
		}
		return nil
	case AreaSideboard:
		return checkSlot(p.Slot)
	case AreaCompletion:
		return nil
	default:
		return fmt.Errorf("%w: unknown area %d", ErrInvalidPosition, p.Area)
	}
}
