// Package engine chooses moves with a material-only minimax search.
package engine

import (
	"context"
	"time"

	"chess-bot/rules"
)

// Infinity bounds every reachable evaluation.
const Infinity = 1 << 30

// How often (in nodes) a cancellable search polls its context.
const pollInterval = 1024

// Options configures Search.
type Options struct {
	Depth int
}

// Result is the outcome of a root search.
type Result struct {
	Move    rules.Move
	Score   int
	Depth   int
	Stats   Stats
	Elapsed time.Duration
}

type searcher struct {
	maxSide rules.Side
	stats   Stats

	ctx     context.Context
	stopped bool
}

// Minimax is a fixed-depth alpha-beta search. Scores are Evaluate(b, maxSide);
// toOptimize is the side whose choice is made at this node. The first move
// reaching the best score is kept, so the ordering of LegalMoves decides ties.
// b is mutated during the call and restored before it returns.
func Minimax(b *rules.Board, depth, alpha, beta int, toOptimize, maxSide rules.Side) (rules.Move, int) {
	s := searcher{maxSide: maxSide, ctx: context.Background()}
	return s.minimax(b, depth, alpha, beta, toOptimize)
}

// Search picks a move for the side to move with a full window.
func Search(b *rules.Board, opts Options) Result {
	return search(context.Background(), b, opts)
}

func search(ctx context.Context, b *rules.Board, opts Options) Result {
	start := time.Now()
	side := b.SideToMove()
	s := searcher{maxSide: side, ctx: ctx}
	move, score := s.minimax(b, opts.Depth, -Infinity, Infinity, side)
	return Result{
		Move:    move,
		Score:   score,
		Depth:   opts.Depth,
		Stats:   s.stats,
		Elapsed: time.Since(start),
	}
}

func (s *searcher) shouldStop() bool {
	if s.stopped {
		return true
	}
	if s.stats.Nodes%pollInterval == 0 && s.ctx.Err() != nil {
		s.stopped = true
	}
	return s.stopped
}

func (s *searcher) minimax(b *rules.Board, depth, alpha, beta int, toOptimize rules.Side) (rules.Move, int) {
	s.stats.Nodes++

	if depth <= 0 || b.GameOver() {
		s.stats.Leaves++
		if b.GameOver() {
			s.stats.TerminalLeaves++
		}
		return rules.NullMove, Evaluate(b, s.maxSide)
	}

	moves := b.LegalMoves()
	if len(moves) == 0 {
		// Only previously played positions are reachable
		s.stats.Leaves++
		s.stats.RepetitionLeaves++
		return rules.NullMove, Evaluate(b, s.maxSide)
	}

	best := rules.NullMove
	if toOptimize == s.maxSide {
		bestScore := -Infinity
		for _, m := range moves {
			b.MakeMove(m)
			_, score := s.minimax(b, depth-1, alpha, beta, toOptimize.Opponent())
			b.UnmakeMove()
			if s.shouldStop() {
				break
			}
			if score > bestScore {
				bestScore, best = score, m
			}
			if bestScore > alpha {
				alpha = bestScore
			}
			if alpha >= beta {
				s.stats.BetaCutoffs++
				break
			}
		}
		return best, bestScore
	}

	bestScore := Infinity
	for _, m := range moves {
		b.MakeMove(m)
		_, score := s.minimax(b, depth-1, alpha, beta, toOptimize.Opponent())
		b.UnmakeMove()
		if s.shouldStop() {
			break
		}
		if score < bestScore {
			bestScore, best = score, m
		}
		if bestScore < beta {
			beta = bestScore
		}
		if alpha >= beta {
			s.stats.AlphaCutoffs++
			break
		}
	}
	return best, bestScore
}
