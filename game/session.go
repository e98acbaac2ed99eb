// Package game drives a human-versus-bot game on a rules.Board: it gates
// human input, asks the engine for the bot's replies and keeps the move log.
package game

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"chess-bot/config"
	"chess-bot/engine"
	"chess-bot/rules"
)

// Session is one game. It is the only writer of its board and is not safe
// for concurrent use.
type Session struct {
	ID uuid.UUID

	board    *rules.Board
	human    rules.Side
	depth    int
	timeout  time.Duration
	startFEN string
	moves    []string // UCI, in play order
}

// NewSession starts a game from the initial position.
func NewSession(cfg config.Config) (*Session, error) {
	return NewSessionFromFEN(cfg, rules.FENStartPos)
}

// NewSessionFromFEN starts a game from an arbitrary position.
func NewSessionFromFEN(cfg config.Config, fen string) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b, err := rules.ParseFEN(fen, cfg.Side(), rules.WithRepetitionPolicy(cfg.Policy()))
	if err != nil {
		return nil, err
	}
	s := &Session{
		ID:       uuid.New(),
		board:    b,
		human:    cfg.Side(),
		depth:    cfg.SearchDepth(),
		timeout:  cfg.MoveTimeout(),
		startFEN: b.ToFEN(),
	}
	log.Printf("game %s: human plays %s, bot depth %d, repetition %s", s.ID, s.human, s.depth, b.Policy())
	return s, nil
}

// Board returns a snapshot of the current position.
func (s *Session) Board() *rules.Board { return s.board.Clone() }

func (s *Session) HumanSide() rules.Side { return s.human }
func (s *Session) BotSide() rules.Side   { return s.board.BotSide() }
func (s *Session) Depth() int            { return s.depth }
func (s *Session) Turn() rules.Side      { return s.board.SideToMove() }
func (s *Session) Over() bool            { return s.board.GameOver() }
func (s *Session) Result() rules.Result  { return s.board.Result() }
func (s *Session) FEN() string           { return s.board.ToFEN() }

// Moves returns the UCI move log.
func (s *Session) Moves() []string {
	return append([]string(nil), s.moves...)
}

// LegalMoves lists the moves available to the side to move.
func (s *Session) LegalMoves() []rules.Move {
	if s.board.GameOver() {
		return nil
	}
	return s.board.LegalMoves()
}

// Play commits a human move.
func (s *Session) Play(m rules.Move) error {
	if s.board.GameOver() {
		return ErrGameOver
	}
	if s.board.SideToMove() != s.human {
		return ErrNotYourTurn
	}
	return s.commit(m)
}

// PlayUCI parses and plays a human move such as "e2e4".
func (s *Session) PlayUCI(str string) error {
	m, err := rules.ParseMove(str)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}
	return s.Play(m)
}

// Suggest searches the current position for the side to move without
// playing the result.
func (s *Session) Suggest(ctx context.Context) (engine.Result, error) {
	if s.board.GameOver() {
		return engine.Result{}, ErrGameOver
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return engine.SearchWithDeadline(ctx, s.board, engine.Options{Depth: s.depth})
}

// BotMove searches and plays the bot's reply.
func (s *Session) BotMove(ctx context.Context) (rules.Move, error) {
	if s.board.GameOver() {
		return rules.NullMove, ErrGameOver
	}
	if s.board.SideToMove() != s.BotSide() {
		return rules.NullMove, ErrNotYourTurn
	}
	return s.autoMove(ctx)
}

// AutoMove searches and plays a move for whichever side is to move.
func (s *Session) AutoMove(ctx context.Context) (rules.Move, error) {
	if s.board.GameOver() {
		return rules.NullMove, ErrGameOver
	}
	return s.autoMove(ctx)
}

// Undo retracts the last move of either side.
func (s *Session) Undo() error {
	if s.board.Plies() == 0 {
		return ErrNothingToUndo
	}
	last := s.board.LastMove()
	s.board.UnmakeMove()
	s.board.ForgetLastPosition()
	s.moves = s.moves[:len(s.moves)-1]
	log.Printf("game %s: took back %s", s.ID, last)
	return nil
}

func (s *Session) autoMove(ctx context.Context) (rules.Move, error) {
	res, err := s.Suggest(ctx)
	if err != nil {
		return rules.NullMove, fmt.Errorf("search: %w", err)
	}
	m := res.Move
	if m.IsNull() {
		// Every reply repeats a played position; play the first one anyway.
		m = s.board.AllLegalMoves()[0]
		log.Printf("game %s: no unseen move, falling back to %s", s.ID, m)
	} else {
		log.Printf("game %s: depth %d score %d nodes %d time %s",
			s.ID, res.Depth, res.Score, res.Stats.Nodes, res.Elapsed)
	}
	if err := s.commit(m); err != nil {
		return rules.NullMove, err
	}
	return m, nil
}

func (s *Session) commit(m rules.Move) error {
	if !s.board.IsLegal(m) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	side := s.board.SideToMove()
	uci := s.board.UCI(m)
	s.board.MakeMove(m)
	s.board.RecordPosition()
	s.moves = append(s.moves, uci)

	log.Printf("game %s: %s plays %s", s.ID, side, uci)
	if s.board.GameOver() {
		log.Printf("game %s: %s", s.ID, s.board.Result())
	}
	return nil
}

func (s *Session) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(ctx, s.timeout)
	}
	return context.WithCancel(ctx)
}
