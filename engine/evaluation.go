package engine

import "chess-bot/rules"

// Evaluate scores b for maxSide: its material minus the opponent's. Kings are
// counted on both sides, so they cancel out.
func Evaluate(b *rules.Board, maxSide rules.Side) int {
	return b.Material(maxSide) - b.Material(maxSide.Opponent())
}
