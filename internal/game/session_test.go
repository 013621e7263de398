package game

import (
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/shenzhen-solitaire/shenzhen-go/internal/game/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedSession(t *testing.T) (*Session, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	s := NewSession(zap.New(core), WithRand(rand.New(maxSource{})))
	return s, logs
}

func playSession(t *testing.T, s *Session, steps []step) {
	t.Helper()

	for i, st := range steps {
		if st.collect {
			ok, err := s.CollectDragons(st.suit)
			require.NoError(t, err, "step %d", i)
			require.True(t, ok, "step %d", i)
			continue
		}

		src, err := ParsePosition(st.srcCol, st.srcDepth)
		require.NoError(t, err)
		dst, err := ParsePosition(st.dstCol, st.dstDepth)
		require.NoError(t, err)

		ok, err := s.Move(src, dst)
		require.NoError(t, err, "step %d", i)
		require.True(t, ok, "step %d", i)
	}
}

func TestNewSession(t *testing.T) {
	s, logs := observedSession(t)

	_, err := uuid.Parse(s.ID)
	require.NoError(t, err)

	dealt := logs.FilterMessage("dealt game").All()
	require.Len(t, dealt, 1)
	assert.Equal(t, zapcore.InfoLevel, dealt[0].Level)
	assert.Equal(t, s.ID, dealt[0].ContextMap()["game_id"])
	assert.Equal(t, orderedDeal().Fingerprint(), dealt[0].ContextMap()["fingerprint"])

	other := NewSession(nil, WithSeed(1))
	assert.NotEqual(t, s.ID, other.ID)
}

func TestSession_PlaysToWin(t *testing.T) {
	s, logs := observedSession(t)

	playSession(t, s, openingSteps)

	ok, err := s.Move(Tableau(6, 4), Tableau(0, 4))
	require.NoError(t, err)
	assert.False(t, ok, "B9 cannot go onto R5")

	rejected := logs.FilterMessage("move rejected").All()
	require.Len(t, rejected, 1)
	assert.Equal(t, zapcore.DebugLevel, rejected[0].Level)
	assert.Equal(t, ReasonRankMismatch, rejected[0].ContextMap()["reason"])

	playSession(t, s, closingSteps)

	snap := s.Snapshot()
	assert.True(t, snap.Won)
	assert.True(t, s.IsWon())
	assert.Equal(t, s.ID, snap.GameID)
	assert.Equal(t, len(openingSteps)+len(closingSteps), snap.Moves)
	assert.Equal(t, 3, logs.FilterMessage("dragons collected").Len())

	won := logs.FilterMessage("game won").All()
	require.Len(t, won, 1)
	assert.Equal(t, zapcore.InfoLevel, won[0].Level)
	assert.Equal(t, int64(snap.Moves), won[0].ContextMap()["moves"])

	// Nothing more happens once won.
	_, err = s.Settle()
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("game won").Len())
}

func TestSession_MoveInvalidPosition(t *testing.T) {
	s, _ := observedSession(t)

	ok, err := s.Move(Tableau(9, 0), Completion())
	assert.ErrorIs(t, err, ErrInvalidPosition)
	assert.False(t, ok)
	assert.Zero(t, s.Snapshot().Moves)
}

func TestSession_Settle(t *testing.T) {
	s, logs := observedSession(t)

	moved, err := s.Settle()
	require.NoError(t, err)
	assert.Equal(t, []Position{Tableau(7, 4)}, moved)

	// Play on to the point where R1 has just been completed.
	playSession(t, s, openingSteps[1:])
	playSession(t, s, closingSteps[:5])

	assert.Equal(t, []Position{Tableau(5, 0)}, s.AutoFillCandidates())

	moved, err = s.Settle()
	require.NoError(t, err)
	assert.Equal(t, []Position{Tableau(5, 0), Tableau(4, 0), Tableau(3, 0), Tableau(2, 0)}, moved)
	assert.Nil(t, s.AutoFillCandidates())

	h, err := s.board.HighestCompleted(card.Red)
	require.NoError(t, err)
	assert.Equal(t, 5, h)
	assert.Equal(t, 2, logs.FilterMessage("settled board").Len())

	moved, err = s.Settle()
	require.NoError(t, err)
	assert.Empty(t, moved)

	settled := logs.FilterMessage("settled board").All()
	require.Len(t, settled, 3)
	last := settled[2]
	assert.Equal(t, zapcore.DebugLevel, last.Level)
	assert.Equal(t, int64(0), last.ContextMap()["cards"])
	assert.Equal(t, s.ID, last.ContextMap()["game_id"])
}

func TestSession_CollectDragons(t *testing.T) {
	s, logs := observedSession(t)

	ok, err := s.CollectDragons(card.Red)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, logs.FilterMessage("dragons not collectable").Len())

	_, err = s.CollectDragons(card.Suit(4))
	assert.ErrorIs(t, err, ErrInvalidSuit)

	playSession(t, s, openingSteps[:4])
	ok, err = s.CollectDragons(card.Black)
	require.NoError(t, err)
	require.True(t, ok)

	c, err := s.board.SideboardCard(0)
	require.NoError(t, err)
	assert.Equal(t, card.SolvedDragon(card.Black), c)
}

func TestNewSessionFromLayout(t *testing.T) {
	s, err := NewSessionFromLayout(nil, wonLayout())
	require.NoError(t, err)
	assert.True(t, s.IsWon())
	assert.Equal(t, "RX GX BX    @@ R9 G9 B9\n", s.Render())

	l := wonLayout()
	l.Completed[card.Green] = 8
	_, err = NewSessionFromLayout(nil, l)
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestSession_ConcurrentAccess(t *testing.T) {
	s, _ := observedSession(t)

	var (
		wg       sync.WaitGroup
		accepted atomic.Int32
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_ = s.Snapshot()
			_ = s.AutoFillCandidates()
			ok, err := s.Move(Tableau(7, 4), Completion())
			if err != nil {
				// Once the bonus is gone depth 4 no longer exists.
				assert.ErrorIs(t, err, ErrInvalidPosition)
				return
			}
			if ok {
				accepted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), accepted.Load())
	snap := s.Snapshot()
	assert.Equal(t, 1, snap.Moves)
	assert.True(t, snap.Layout.BonusPlayed)
}
