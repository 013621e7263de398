package game

import "github.com/shenzhen-solitaire/shenzhen-go/internal/game/card"

// AutoFillCandidates returns every position whose card can safely be moved to
// the completion area: the bonus tile, or a numeral that is next on its pile and
// no higher than MaxAutoFill. Tableau tops come first in column order, then
// sideboard slots. Nothing is moved; callers commit with Move(pos, Completion()).
func (b *Board) AutoFillCandidates() []Position {
	threshold := b.piles.Threshold()

	var candidates []Position
	for col := range b.columns {
		if top, ok := b.top(col); ok && b.safeToComplete(top, threshold) {
			candidates = append(candidates, Tableau(col, len(b.columns[col])-1))
		}
	}
	for slot, c := range b.sideboard {
		if b.safeToComplete(c, threshold) {
			candidates = append(candidates, Sideboard(slot))
		}
	}
	return candidates
}

func (b *Board) safeToComplete(c card.Card, threshold int) bool {
	switch {
	case c.IsBonus():
		return b.piles.Accepts(c)
	case c.IsNumeral():
		return c.Rank() <= threshold && b.piles.Accepts(c)
	default:
		return false
	}
}
