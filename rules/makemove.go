package rules

import "fmt"

// undoRecord holds the minimal state needed to undo a move.
type undoRecord struct {
	move         Move
	src          Piece // previous content of move.From
	dst          Piece // previous content of move.To, captured piece included
	prevKings    [2]Square
	prevMaterial [2]int
	prevGameOver bool
	prevResult   Result
	prevFullmove int
}

// apply performs the move on the board and returns the record that undoes it.
// It does not touch the history or the terminal status; MakeMove commits the
// record, legality probes restore it immediately.
func (b *Board) apply(m Move) undoRecord {
	src := b.pieces[m.From]
	if src.IsEmpty() {
		panic(fmt.Sprintf("rules: no piece on %s", m.From))
	}
	dst := b.pieces[m.To]
	rec := undoRecord{
		move:         m,
		src:          src,
		dst:          dst,
		prevKings:    b.kings,
		prevMaterial: b.material,
		prevGameOver: b.gameOver,
		prevResult:   b.result,
		prevFullmove: b.fullmoveNumber,
	}

	if !dst.IsEmpty() {
		b.material[dst.Side] -= dst.Kind.Weight()
	}

	moved := src
	moved.Moved = true
	if moved.Kind == Pawn && m.To.Rank() == PromotionRank(moved.Side) {
		moved.Kind = Queen
		b.material[moved.Side] += Queen.Weight() - Pawn.Weight()
	}
	if moved.Kind == King {
		b.kings[moved.Side] = m.To
	}
	b.pieces[m.To] = moved
	b.pieces[m.From] = Piece{}

	if b.sideToMove == Black {
		b.fullmoveNumber++
	}
	b.sideToMove = b.sideToMove.Opponent()
	return rec
}

// restore reverts the board to the state captured in rec.
func (b *Board) restore(rec undoRecord) {
	b.pieces[rec.move.From] = rec.src
	b.pieces[rec.move.To] = rec.dst
	b.kings = rec.prevKings
	b.material = rec.prevMaterial
	b.gameOver = rec.prevGameOver
	b.result = rec.prevResult
	b.fullmoveNumber = rec.prevFullmove
	b.sideToMove = b.sideToMove.Opponent()
}

// MakeMove plays m for the side to move and re-evaluates the terminal status.
// The caller guarantees m.From holds a piece of the side to move; use
// LegalMoves or IsLegal to gate user input.
func (b *Board) MakeMove(m Move) {
	rec := b.apply(m)
	b.history = append(b.history, rec)
	b.updateStatus()
}

// UnmakeMove retracts the most recent MakeMove. It panics when there is
// nothing to undo.
func (b *Board) UnmakeMove() {
	if len(b.history) == 0 {
		panic("rules: UnmakeMove with empty history")
	}
	rec := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	b.restore(rec)
}

// LastMove returns the most recent move, or NullMove.
func (b *Board) LastMove() Move {
	if len(b.history) == 0 {
		return NullMove
	}
	return b.history[len(b.history)-1].move
}

// IsPromotion reports whether m would promote a pawn on this board.
func (b *Board) IsPromotion(m Move) bool {
	p := b.PieceAt(m.From)
	return p.Kind == Pawn && m.To.IsValid() && m.To.Rank() == PromotionRank(p.Side)
}

// IsCapture reports whether m lands on an occupied square.
func (b *Board) IsCapture(m Move) bool {
	return !b.PieceAt(m.To).IsEmpty()
}
