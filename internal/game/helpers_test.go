package game

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/shenzhen-solitaire/shenzhen-go/internal/game/card"
	"github.com/stretchr/testify/require"
)

// maxSource always yields the largest value, which makes Fisher-Yates leave the
// deck in NewDeck order.
type maxSource struct{}

func (maxSource) Uint64() uint64 { return math.MaxUint64 }

// orderedDeal deals the unshuffled deck:
//
//	col 0: R1 R2 R3 R4 R5    col 4: G8 G9 GD GD GD
//	col 1: R6 R7 R8 R9 RD    col 5: GD B1 B2 B3 B4
//	col 2: RD RD RD G1 G2    col 6: B5 B6 B7 B8 B9
//	col 3: G3 G4 G5 G6 G7    col 7: BD BD BD BD @@
func orderedDeal() *Board {
	return NewGame(WithRand(rand.New(maxSource{})))
}

// fixture describes a partial board for rule tests. It skips the 40-card
// census so each test only spells out the cards it cares about.
type fixture struct {
	columns   map[int]string
	sideboard [NumSideboardSlots]string
	completed [card.NumSuits]int
	bonus     bool
}

func (f fixture) board(t *testing.T) *Board {
	t.Helper()

	b := &Board{}
	for col, codes := range f.columns {
		cards, err := card.ParseList(codes)
		require.NoError(t, err)
		b.columns[col] = cards
	}
	for slot, code := range f.sideboard {
		if code == "" {
			continue
		}
		c, err := card.Parse(code)
		require.NoError(t, err)
		b.sideboard[slot] = c
	}
	b.piles = foundation{highest: f.completed, bonus: f.bonus}
	return b
}

func columnCodes(b *Board, col int) []string {
	codes := make([]string, 0, len(b.columns[col]))
	for _, c := range b.columns[col] {
		codes = append(codes, c.String())
	}
	return codes
}

func wonLayout() Layout {
	return Layout{
		Sideboard: [NumSideboardSlots]card.Card{
			card.SolvedDragon(card.Red),
			card.SolvedDragon(card.Green),
			card.SolvedDragon(card.Black),
		},
		Completed:   [card.NumSuits]int{card.MaxRank, card.MaxRank, card.MaxRank},
		BonusPlayed: true,
	}
}
