package card

import "fmt"

// Suit represents one of the three card colors.
type Suit uint8

const (
	Red Suit = iota
	Green
	Black
)

// NumSuits is the number of suits in the deck.
const NumSuits = 3

// Suits lists every suit in pile order.
var Suits = [NumSuits]Suit{Red, Green, Black}

// Valid reports whether s is one of the three suits.
func (s Suit) Valid() bool {
	return s < NumSuits
}

func (s Suit) String() string {
	switch s {
	case Red:
		return "RED"
	case Green:
		return "GREEN"
	case Black:
		return "BLACK"
	default:
		return "UNKNOWN"
	}
}

// Letter returns the single-letter code used in board dumps.
func (s Suit) Letter() byte {
	switch s {
	case Red:
		return 'R'
	case Green:
		return 'G'
	case Black:
		return 'B'
	default:
		return '?'
	}
}

// Kind distinguishes the card variants.
type Kind uint8

const (
	KindNone Kind = iota
	KindNumeral
	KindDragon
	KindSolvedDragon
	KindBonus
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "NONE"
	case KindNumeral:
		return "NUMERAL"
	case KindDragon:
		return "DRAGON"
	case KindSolvedDragon:
		return "SOLVED_DRAGON"
	case KindBonus:
		return "BONUS"
	default:
		return "UNKNOWN"
	}
}

const (
	// MinRank and MaxRank bound numeral ranks. MaxRank is the top completion rank.
	MinRank = 1
	MaxRank = 9

	// DragonsPerSuit is the number of dragons that must be collected per suit.
	DragonsPerSuit = 4

	// DeckSize is the total number of physical cards.
	DeckSize = NumSuits*(MaxRank+DragonsPerSuit) + 1
)

// Card is an immutable card value. The zero value is None, the empty-slot sentinel.
// Cards are comparable and can be used as map keys.
type Card struct {
	kind Kind
	suit Suit
	rank uint8
}

// None marks an empty slot. It is never a real card.
var None = Card{}

// Bonus is the single suit-less bonus tile (the rose).
var Bonus = Card{kind: KindBonus}

// Numeral returns the numeral card of the given suit and rank.
// It panics on an out-of-range suit or rank; use NewNumeral for untrusted input.
func Numeral(s Suit, rank int) Card {
	c, err := NewNumeral(s, rank)
	if err != nil {
		panic(err)
	}
	return c
}

// NewNumeral validates and returns a numeral card.
func NewNumeral(s Suit, rank int) (Card, error) {
	if !s.Valid() {
		return None, fmt.Errorf("invalid suit %d", s)
	}
	if rank < MinRank || rank > MaxRank {
		return None, fmt.Errorf("rank %d out of range [%d,%d]", rank, MinRank, MaxRank)
	}
	return Card{kind: KindNumeral, suit: s, rank: uint8(rank)}, nil
}

// Dragon returns the unsolved dragon of suit s. The suit is not checked; values
// built from untrusted input should be tested with Valid.
func Dragon(s Suit) Card {
	return Card{kind: KindDragon, suit: s}
}

// SolvedDragon returns the solved-dragon marker of suit s. Like Dragon, it does
// not check the suit.
func SolvedDragon(s Suit) Card {
	return Card{kind: KindSolvedDragon, suit: s}
}

// Kind returns the card variant.
func (c Card) Kind() Kind { return c.kind }

// Suit returns the card suit. Meaningless for Bonus and None.
func (c Card) Suit() Suit { return c.suit }

// Rank returns the numeral rank, or 0 for non-numeral cards.
func (c Card) Rank() int { return int(c.rank) }

func (c Card) IsEmpty() bool        { return c.kind == KindNone }
func (c Card) IsNumeral() bool      { return c.kind == KindNumeral }
func (c Card) IsDragon() bool       { return c.kind == KindDragon }
func (c Card) IsSolvedDragon() bool { return c.kind == KindSolvedDragon }
func (c Card) IsBonus() bool        { return c.kind == KindBonus }

// Valid reports whether c is None or one of the cards that can exist on a board:
// a numeral or dragon of a real suit, a solved marker of a real suit, or the bonus.
func (c Card) Valid() bool {
	switch c.kind {
	case KindNone, KindBonus:
		return true
	case KindNumeral:
		return c.suit.Valid() && int(c.rank) >= MinRank && int(c.rank) <= MaxRank
	case KindDragon, KindSolvedDragon:
		return c.suit.Valid()
	default:
		return false
	}
}

// Movable reports whether the card can ever be picked up by a player.
func (c Card) Movable() bool {
	return c.kind == KindNumeral || c.kind == KindDragon || c.kind == KindBonus
}

// CanStackOn reports whether c may be placed directly on top of below in a tableau column:
// both numerals, c one rank lower, different suits.
func (c Card) CanStackOn(below Card) bool {
	if !c.IsNumeral() || !below.IsNumeral() {
		return false
	}
	return c.rank+1 == below.rank && c.suit != below.suit
}

// String renders the two-character code used in board dumps:
// "R5" numeral, "GD" dragon, "BX" solved dragon, "@@" bonus, "[]" empty.
func (c Card) String() string {
	switch c.kind {
	case KindNumeral:
		return string([]byte{c.suit.Letter(), '0' + c.rank})
	case KindDragon:
		return string([]byte{c.suit.Letter(), 'D'})
	case KindSolvedDragon:
		return string([]byte{c.suit.Letter(), 'X'})
	case KindBonus:
		return "@@"
	default:
		return "[]"
	}
}
