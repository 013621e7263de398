package game

import "github.com/shenzhen-solitaire/shenzhen-go/internal/game/card"

// Move moves the card at src, together with every card above it, to dst.
// It returns false without touching the board when the move breaks a rule, and
// an error only when src or dst is malformed.
func (b *Board) Move(src, dst Position) (bool, error) {
	check, err := b.CheckMove(src, dst)
	if err != nil || !check.Legal {
		return false, err
	}
	b.apply(src, dst, check.Cards)
	return true, nil
}

// MoveIndexed is Move with both positions in the indexed (column, depth) encoding
// accepted by ParsePosition.
func (b *Board) MoveIndexed(srcCol, srcDepth, dstCol, dstDepth int) (bool, error) {
	src, err := ParsePosition(srcCol, srcDepth)
	if err != nil {
		return false, err
	}
	dst, err := ParsePosition(dstCol, dstDepth)
	if err != nil {
		return false, err
	}
	return b.Move(src, dst)
}

// apply performs a move already validated by CheckMove.
func (b *Board) apply(src, dst Position, moving []card.Card) {
	switch src.Area {
	case AreaSideboard:
		b.sideboard[src.Slot] = card.None
	case AreaTableau:
		b.columns[src.Column] = b.columns[src.Column][:src.Depth]
	}

	switch dst.Area {
	case AreaCompletion:
		b.piles.Add(moving[0])
	case AreaSideboard:
		b.sideboard[dst.Slot] = moving[0]
	case AreaTableau:
		b.columns[dst.Column] = append(b.columns[dst.Column], moving...)
	}
}
