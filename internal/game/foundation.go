package game

import "github.com/shenzhen-solitaire/shenzhen-go/internal/game/card"

// foundation tracks the completion area: the highest completed rank per suit
// (0 when the pile is empty) and whether the bonus tile has been played.
type foundation struct {
	highest [card.NumSuits]int
	bonus   bool
}

// Highest returns the highest completed rank of suit s.
func (f *foundation) Highest(s card.Suit) int {
	return f.highest[s]
}

// Accepts reports whether c may be moved onto its completion pile.
func (f *foundation) Accepts(c card.Card) bool {
	switch c.Kind() {
	case card.KindBonus:
		return !f.bonus
	case card.KindNumeral:
		return f.highest[c.Suit()] == c.Rank()-1
	default:
		return false
	}
}

// Add records c as completed. Callers check Accepts first.
func (f *foundation) Add(c card.Card) {
	switch c.Kind() {
	case card.KindBonus:
		f.bonus = true
	case card.KindNumeral:
		f.highest[c.Suit()] = c.Rank()
	}
}

// Threshold returns the highest rank that is safe to complete automatically:
// one more than the least advanced pile, and never below 1.
func (f *foundation) Threshold() int {
	lowest := card.MaxRank
	for _, h := range f.highest {
		if h < lowest {
			lowest = h
		}
	}
	return max(1, lowest+1)
}

// Complete reports whether every pile reached the top rank and the bonus is played.
func (f *foundation) Complete() bool {
	if !f.bonus {
		return false
	}
	for _, h := range f.highest {
		if h < card.MaxRank {
			return false
		}
	}
	return true
}
