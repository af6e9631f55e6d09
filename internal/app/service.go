package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/jaminalder/tictactoe-history/internal/domain"
)

// Errors exposed by the service layer.
var (
	ErrNotFound = errors.New("game not found")
)

// Session is the in-memory state tracked per browser game.
type Session struct {
	ID      string
	Game    domain.GameState
	Created time.Time
	Updated time.Time
}

func (s *Session) clone() *Session {
	cp := *s
	cp.Game = s.Game.Clone()
	return &cp
}

// Service owns every live game. HTTP handlers run concurrently, so all access
// goes through mu and callers only ever see copies.
type Service struct {
	mu    sync.Mutex
	games map[string]*Session
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates an empty service. A nil logger discards output.
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		games: make(map[string]*Session),
		log:   logger.With("component", "app"),
		now:   time.Now,
	}
}

// CreateGame creates and registers a new game.
func (s *Service) CreateGame() (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := newSessionID()
	if _, dup := s.games[id]; dup {
		return nil, fmt.Errorf("session id collision: %s", id)
	}
	now := s.now()
	gs := &Session{ID: id, Game: domain.NewGameState(), Created: now, Updated: now}
	s.games[id] = gs
	s.log.Debug("game created", "game_id", id, "games", len(s.games))
	return gs.clone(), nil
}

// Get returns a copy of the game if present.
func (s *Service) Get(id string) (*Session, bool) {
	if !validSessionID(id) {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, ok := s.games[id]
	if !ok {
		return nil, false
	}
	return gs.clone(), true
}

// Play applies a move at cell index. The bool reports whether the move was
// accepted; occupied cells and decided boards are rejected without error.
func (s *Service) Play(id string, index int) (*Session, bool, error) {
	var applied bool
	gs, err := s.update(id, func(g *domain.GameState) error {
		var err error
		applied, err = g.ApplyMove(index)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	if applied {
		s.log.Debug("move applied", "game_id", id, "cell", index, "step", gs.Game.Step(), "status", gs.Game.Status().String())
	} else {
		s.log.Debug("move ignored", "game_id", id, "cell", index, "step", gs.Game.Step())
	}
	return gs, applied, nil
}

// JumpTo views an earlier (or later) step of the game.
func (s *Service) JumpTo(id string, step int) (*Session, error) {
	return s.update(id, func(g *domain.GameState) error { return g.JumpTo(step) })
}

// ToggleOrder flips the move list order.
func (s *Service) ToggleOrder(id string) (*Session, error) {
	return s.update(id, func(g *domain.GameState) error {
		g.ToggleHistoryOrder()
		return nil
	})
}

// update runs fn on the stored game under the lock. The game is only replaced
// when fn succeeds.
func (s *Service) update(id string, fn func(*domain.GameState) error) (*Session, error) {
	if !validSessionID(id) {
		return nil, ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, ok := s.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	g := gs.Game.Clone()
	if err := fn(&g); err != nil {
		return nil, fmt.Errorf("game %s: %w", id, err)
	}
	gs.Game = g
	gs.Updated = s.now()
	return gs.clone(), nil
}

// Prune drops games not touched for longer than ttl and returns how many went.
func (s *Service) Prune(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-ttl)
	n := 0
	for id, gs := range s.games {
		if gs.Updated.Before(cutoff) {
			delete(s.games, id)
			n++
		}
	}
	return n
}

// RunJanitor prunes idle games every interval until ctx is done. A
// non-positive interval or ttl disables pruning.
func (s *Service) RunJanitor(ctx context.Context, interval, ttl time.Duration) {
	if interval <= 0 || ttl <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Prune(ttl); n > 0 {
				s.log.Info("pruned idle games", "count", n)
			}
		}
	}
}
