package game

import "errors"

var (
	ErrGameOver      = errors.New("game is over")
	ErrNotYourTurn   = errors.New("not this side's turn")
	ErrIllegalMove   = errors.New("illegal move")
	ErrNothingToUndo = errors.New("no move to undo")
)
