package engine

import (
	"context"

	"chess-bot/rules"
)

// SearchWithDeadline runs Search on a clone of b and gives up when ctx ends.
// The caller's board is never touched by the worker, which notices the
// cancellation on its own and unwinds.
func SearchWithDeadline(ctx context.Context, b *rules.Board, opts Options) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	clone := b.Clone()
	done := make(chan Result, 1)
	go func() {
		done <- search(ctx, clone, opts)
	}()

	select {
	case r := <-done:
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		return r, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}
