package game

import (
	"testing"

	"github.com/shenzhen-solitaire/shenzhen-go/internal/game/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame_DealsEveryCardOnce(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		b := NewGame(WithSeed(seed))

		counts := make(map[card.Card]int)
		for col := 0; col < NumColumns; col++ {
			n, err := b.CardsInColumn(col)
			require.NoError(t, err)
			require.Equal(t, DealDepth, n, "seed %d column %d", seed, col)
			for depth := 0; depth < n; depth++ {
				c, err := b.CardAt(col, depth)
				require.NoError(t, err)
				counts[c]++
			}
		}
		for slot := 0; slot < NumSideboardSlots; slot++ {
			c, err := b.SideboardCard(slot)
			require.NoError(t, err)
			assert.True(t, c.IsEmpty())
		}
		for _, s := range card.Suits {
			h, err := b.HighestCompleted(s)
			require.NoError(t, err)
			assert.Zero(t, h)
		}
		assert.False(t, b.BonusPlayed())

		want := make(map[card.Card]int)
		for _, c := range card.NewDeck() {
			want[c]++
		}
		assert.Equal(t, want, counts, "seed %d", seed)

		// The census check in FromLayout agrees.
		_, err := FromLayout(b.Layout())
		assert.NoError(t, err)
	}
}

func TestNewGame_SeedIsDeterministic(t *testing.T) {
	a := NewGame(WithSeed(42))
	b := NewGame(WithSeed(42))
	c := NewGame(WithSeed(43))

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestOrderedDeal(t *testing.T) {
	b := orderedDeal()
	deck := card.NewDeck()
	for col := 0; col < NumColumns; col++ {
		assert.Equal(t, deck[col*DealDepth:(col+1)*DealDepth], b.columns[col], "column %d", col)
	}
}

func TestBoard_QueriesRejectBadArguments(t *testing.T) {
	b := orderedDeal()

	_, err := b.CardsInColumn(-1)
	assert.ErrorIs(t, err, ErrInvalidPosition)
	_, err = b.CardsInColumn(NumColumns)
	assert.ErrorIs(t, err, ErrInvalidPosition)

	_, err = b.CardAt(0, DealDepth)
	assert.ErrorIs(t, err, ErrInvalidPosition)
	_, err = b.CardAt(0, -1)
	assert.ErrorIs(t, err, ErrInvalidPosition)
	_, err = b.CardAt(8, 0)
	assert.ErrorIs(t, err, ErrInvalidPosition)

	_, err = b.SideboardCard(3)
	assert.ErrorIs(t, err, ErrInvalidPosition)

	_, err = b.HighestCompleted(card.Suit(3))
	assert.ErrorIs(t, err, ErrInvalidSuit)

	_, err = b.CanDrag(Sideboard(5))
	assert.ErrorIs(t, err, ErrInvalidPosition)
	_, err = b.CanDrag(Tableau(0, 9))
	assert.ErrorIs(t, err, ErrInvalidPosition)
}

func TestBoard_CardAt(t *testing.T) {
	b := orderedDeal()

	c, err := b.CardAt(0, 0)
	require.NoError(t, err)
	assert.Equal(t, card.Numeral(card.Red, 1), c)

	c, err = b.CardAt(7, 4)
	require.NoError(t, err)
	assert.Equal(t, card.Bonus, c)
}

func TestBoard_MaxAutoFill(t *testing.T) {
	tests := []struct {
		name      string
		completed [card.NumSuits]int
		want      int
	}{
		{"all empty", [3]int{0, 0, 0}, 1},
		{"one suit started", [3]int{3, 0, 0}, 1},
		{"all at one", [3]int{1, 1, 1}, 2},
		{"lowest wins", [3]int{5, 2, 7}, 3},
		{"all done", [3]int{9, 9, 9}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := fixture{completed: tt.completed}.board(t)
			assert.Equal(t, tt.want, b.MaxAutoFill())
		})
	}
}

func TestBoard_CanDrag(t *testing.T) {
	b := fixture{
		columns: map[int]string{
			0: "R5 G4 R3",
			1: "R5 R4 R3",
			2: "G9 GD",
			3: "GD R2",
			4: "@@",
			5: "B7 R6 G5 B4",
			6: "B7 R5",
		},
		sideboard: [3]string{"BX", "RD", ""},
	}.board(t)

	tests := []struct {
		name string
		pos  Position
		want bool
	}{
		{"alternating run from bottom", Tableau(0, 0), true},
		{"alternating run from middle", Tableau(0, 1), true},
		{"top card", Tableau(0, 2), true},
		{"same suit breaks run", Tableau(1, 0), false},
		{"same suit run above break", Tableau(1, 1), false},
		{"dragon on top is single", Tableau(2, 1), true},
		{"dragon breaks run", Tableau(2, 0), false},
		{"dragon below card", Tableau(3, 0), false},
		{"bonus alone", Tableau(4, 0), true},
		{"long run", Tableau(5, 0), true},
		{"rank gap", Tableau(6, 0), false},
		{"solved dragon", Sideboard(0), false},
		{"sideboard card", Sideboard(1), true},
		{"empty sideboard slot", Sideboard(2), false},
		{"completion", Completion(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.CanDrag(tt.pos)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBoard_IsWon(t *testing.T) {
	b, err := FromLayout(wonLayout())
	require.NoError(t, err)
	assert.True(t, b.IsWon())

	t.Run("bonus missing", func(t *testing.T) {
		b := fixture{
			sideboard: [3]string{"RX", "GX", "BX"},
			completed: [3]int{9, 9, 9},
		}.board(t)
		assert.False(t, b.IsWon())
	})

	t.Run("dragons unsolved", func(t *testing.T) {
		b := fixture{
			sideboard: [3]string{"RX", "GX", ""},
			completed: [3]int{9, 9, 9},
			bonus:     true,
		}.board(t)
		assert.False(t, b.IsWon())
	})

	t.Run("pile incomplete", func(t *testing.T) {
		b := fixture{
			sideboard: [3]string{"RX", "GX", "BX"},
			completed: [3]int{9, 8, 9},
			bonus:     true,
		}.board(t)
		assert.False(t, b.IsWon())
	})

	t.Run("fresh deal", func(t *testing.T) {
		assert.False(t, NewGame(WithSeed(1)).IsWon())
	})
}
