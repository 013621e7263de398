package card

import (
	"fmt"
	"strings"
)

// ParseSuit parses a suit letter (R, G, B) or full name, case-insensitively.
func ParseSuit(s string) (Suit, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "R", "RED":
		return Red, nil
	case "G", "GREEN":
		return Green, nil
	case "B", "BLACK":
		return Black, nil
	default:
		return 0, fmt.Errorf("unknown suit %q", s)
	}
}

// Parse is the inverse of Card.String.
func Parse(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch s {
	case "@@":
		return Bonus, nil
	case "[]":
		return None, nil
	}
	if len(s) != 2 {
		return None, fmt.Errorf("invalid card code %q", s)
	}

	suit, err := ParseSuit(s[:1])
	if err != nil {
		return None, fmt.Errorf("invalid card code %q: %w", s, err)
	}

	switch ch := s[1]; {
	case ch == 'D':
		return Dragon(suit), nil
	case ch == 'X':
		return SolvedDragon(suit), nil
	case ch >= '0' && ch <= '9':
		c, err := NewNumeral(suit, int(ch-'0'))
		if err != nil {
			return None, fmt.Errorf("invalid card code %q: %w", s, err)
		}
		return c, nil
	default:
		return None, fmt.Errorf("invalid card code %q", s)
	}
}

// ParseList parses a whitespace-separated list of card codes.
func ParseList(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := Parse(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseList is ParseList for literals known to be valid. It panics on error.
func MustParseList(s string) []Card {
	cards, err := ParseList(s)
	if err != nil {
		panic(err)
	}
	return cards
}
