package game

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shenzhen-solitaire/shenzhen-go/internal/game/card"
	"go.uber.org/zap"
)

// Session hosts one game for callers that may share it across goroutines.
// Every operation holds the session lock for its full duration.
type Session struct {
	ID string

	logger *zap.Logger

	mu        sync.Mutex
	board     *Board
	moves     int
	wonLogged bool
}

// Snapshot is a consistent copy of a session's state.
type Snapshot struct {
	GameID      string
	Layout      Layout
	Fingerprint string
	Moves       int
	Won         bool
}

// NewSession deals a new game. The logger may be nil.
func NewSession(logger *zap.Logger, opts ...Option) *Session {
	return newSession(logger, NewGame(opts...))
}

// NewSessionFromLayout hosts a game rebuilt from a layout.
func NewSessionFromLayout(logger *zap.Logger, l Layout) (*Session, error) {
	b, err := FromLayout(l)
	if err != nil {
		return nil, err
	}
	return newSession(logger, b), nil
}

func newSession(logger *zap.Logger, b *Board) *Session {
	s := &Session{
		ID:     uuid.New().String(),
		logger: logger,
		board:  b,
	}

	if s.logger != nil {
		s.logger.Info("dealt game",
			zap.String("game_id", s.ID),
			zap.String("fingerprint", b.Fingerprint()),
		)
	}
	return s
}

// Move validates and performs a move. Illegal moves return false and are logged
// at debug level with the rule they broke.
func (s *Session) Move(src, dst Position) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.move(src, dst)
}

func (s *Session) move(src, dst Position) (bool, error) {
	check, err := s.board.CheckMove(src, dst)
	if err != nil {
		return false, err
	}
	if !check.Legal {
		if s.logger != nil {
			s.logger.Debug("move rejected",
				zap.String("game_id", s.ID),
				zap.Stringer("src", src),
				zap.Stringer("dst", dst),
				zap.String("reason", check.Reason),
			)
		}
		return false, nil
	}

	s.board.apply(src, dst, check.Cards)
	s.moves++

	if s.logger != nil {
		s.logger.Debug("move applied",
			zap.String("game_id", s.ID),
			zap.Stringer("src", src),
			zap.Stringer("dst", dst),
			zap.Stringer("card", check.Cards[0]),
			zap.Int("cards", len(check.Cards)),
		)
	}
	s.checkWon()
	return true, nil
}

// CollectDragons plans and executes the collection of suit's dragons in one step.
// It returns false when the dragons cannot be collected.
func (s *Session) CollectDragons(suit card.Suit) (bool, error) {
	if !suit.Valid() {
		return false, fmt.Errorf("%w: %d", ErrInvalidSuit, suit)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	plan, ok := s.board.CanCollectDragons(suit)
	if !ok {
		if s.logger != nil {
			s.logger.Debug("dragons not collectable",
				zap.String("game_id", s.ID),
				zap.Stringer("suit", suit),
			)
		}
		return false, nil
	}
	if err := s.board.CollectDragons(plan); err != nil {
		return false, err
	}
	s.moves++

	if s.logger != nil {
		s.logger.Debug("dragons collected",
			zap.String("game_id", s.ID),
			zap.Stringer("suit", suit),
			zap.Int("slot", plan.Destination),
		)
	}
	s.checkWon()
	return true, nil
}

// AutoFillCandidates returns the positions currently safe to complete.
func (s *Session) AutoFillCandidates() []Position {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.board.AutoFillCandidates()
}

// Settle repeatedly completes the first auto-fill candidate until none is left
// and returns the positions it moved from, in order. Every pass is logged at
// debug level, including ones that move nothing.
func (s *Session) Settle() ([]Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var moved []Position
	for {
		candidates := s.board.AutoFillCandidates()
		if len(candidates) == 0 {
			break
		}
		src := candidates[0]
		ok, err := s.move(src, Completion())
		if err != nil {
			return moved, err
		}
		if !ok {
			return moved, fmt.Errorf("auto-fill candidate %s rejected", src)
		}
		moved = append(moved, src)
	}

	if s.logger != nil {
		s.logger.Debug("settled board",
			zap.String("game_id", s.ID),
			zap.Int("cards", len(moved)),
		)
	}
	return moved, nil
}

// IsWon reports whether the hosted game is won.
func (s *Session) IsWon() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.board.IsWon()
}

// Render returns the board dump.
func (s *Session) Render() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.board.Render()
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		GameID:      s.ID,
		Layout:      s.board.Layout(),
		Fingerprint: s.board.Fingerprint(),
		Moves:       s.moves,
		Won:         s.board.IsWon(),
	}
}

func (s *Session) checkWon() {
	if s.wonLogged || !s.board.IsWon() {
		return
	}
	s.wonLogged = true

	if s.logger != nil {
		s.logger.Info("game won",
			zap.String("game_id", s.ID),
			zap.Int("moves", s.moves),
		)
	}
}
