package card

import "math/rand/v2"

// NewDeck returns the 40-card deck in a fixed order: per suit, numerals 1-9 then four
// dragons; the bonus tile last.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for r := MinRank; r <= MaxRank; r++ {
			deck = append(deck, Numeral(s, r))
		}
		for i := 0; i < DragonsPerSuit; i++ {
			deck = append(deck, Dragon(s))
		}
	}
	return append(deck, Bonus)
}

// Shuffle returns a uniformly shuffled copy of deck using r.
func Shuffle(deck []Card, r *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
