package game

import "fmt"

const (
	// NumColumns is the number of tableau columns.
	NumColumns = 8
	// NumSideboardSlots is the number of sideboard (free cell) slots.
	NumSideboardSlots = 3
	// DealDepth is the number of cards dealt to each column.
	DealDepth = 5

	// DepthSideboard and DepthCompletion are the negative depths of the indexed
	// addressing scheme used by MoveIndexed and ParsePosition.
	DepthSideboard  = -1
	DepthCompletion = -2
)

// Area identifies which part of the board a position refers to.
type Area uint8

const (
	AreaTableau Area = iota
	AreaSideboard
	AreaCompletion
)

func (a Area) String() string {
	switch a {
	case AreaTableau:
		return "TABLEAU"
	case AreaSideboard:
		return "SIDEBOARD"
	case AreaCompletion:
		return "COMPLETION"
	default:
		return "UNKNOWN"
	}
}

// Position addresses a card location. Column and Depth are used for tableau
// positions, Slot for sideboard positions. The completion area carries no index:
// the pile is chosen by the identity of the card moved there.
type Position struct {
	Area   Area
	Column int
	Depth  int
	Slot   int
}

// Tableau returns the position of the card at depth in column col (0 = bottom).
// As a move destination any non-negative depth means "on top of the column".
func Tableau(col, depth int) Position {
	return Position{Area: AreaTableau, Column: col, Depth: depth}
}

// Sideboard returns the position of a sideboard slot.
func Sideboard(slot int) Position {
	return Position{Area: AreaSideboard, Slot: slot}
}

// Completion returns the completion area position.
func Completion() Position {
	return Position{Area: AreaCompletion}
}

// ParsePosition converts the indexed (column, depth) encoding into a Position:
// depth >= 0 is a tableau card, DepthSideboard is the sideboard slot numbered by
// col, and DepthCompletion is the completion area.
func ParsePosition(col, depth int) (Position, error) {
	if col < 0 || col >= NumColumns {
		return Position{}, fmt.Errorf("%w: column %d out of range", ErrInvalidPosition, col)
	}

	switch {
	case depth >= 0:
		return Tableau(col, depth), nil
	case depth == DepthSideboard:
		if col >= NumSideboardSlots {
			return Position{}, fmt.Errorf("%w: sideboard slot %d out of range", ErrInvalidPosition, col)
		}
		return Sideboard(col), nil
	case depth == DepthCompletion:
		return Completion(), nil
	default:
		return Position{}, fmt.Errorf("%w: depth %d out of range", ErrInvalidPosition, depth)
	}
}

// Indexed is the inverse of ParsePosition.
func (p Position) Indexed() (col, depth int) {
	switch p.Area {
	case AreaSideboard:
		return p.Slot, DepthSideboard
	case AreaCompletion:
		return 0, DepthCompletion
	default:
		return p.Column, p.Depth
	}
}

func (p Position) String() string {
	switch p.Area {
	case AreaTableau:
		return fmt.Sprintf("tableau[%d:%d]", p.Column, p.Depth)
	case AreaSideboard:
		return fmt.Sprintf("sideboard[%d]", p.Slot)
	case AreaCompletion:
		return "completion"
	default:
		return "unknown"
	}
}
