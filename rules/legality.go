package rules

import "golang.org/x/exp/slices"

// IsInCheck reports whether any enemy piece attacks side's king.
func (b *Board) IsInCheck(side Side) bool {
	king := b.kings[side]
	var buf [28]Square
	for sq := Square(0); sq < 64; sq++ {
		p := b.pieces[sq]
		if p.IsEmpty() || p.Side == side {
			continue
		}
		for _, to := range b.appendDestinations(buf[:0], sq) {
			if to == king {
				return true
			}
		}
	}
	return false
}

// IsLegalAfter plays m on a scratch basis, reports whether side is out of
// check afterwards, and restores the board exactly. The history is untouched.
func (b *Board) IsLegalAfter(m Move, side Side) bool {
	if !m.From.IsValid() || !m.To.IsValid() || m.From == m.To || b.pieces[m.From].IsEmpty() {
		return false
	}
	rec := b.apply(m)
	ok := !b.IsInCheck(side)
	b.restore(rec)
	return ok
}

// IsLegal validates a proposed move for the side to move: the source holds
// one of its pieces, the destination matches the piece's pattern, and the
// move does not leave its king in check. Seen positions are not consulted.
func (b *Board) IsLegal(m Move) bool {
	if !m.From.IsValid() || !m.To.IsValid() {
		return false
	}
	p := b.pieces[m.From]
	if p.IsEmpty() || p.Side != b.sideToMove {
		return false
	}
	var buf [28]Square
	for _, to := range b.appendDestinations(buf[:0], m.From) {
		if to == m.To {
			return b.IsLegalAfter(m, b.sideToMove)
		}
	}
	return false
}

// LegalMoves returns the legal moves of the side to move, minus those that
// reach an already recorded position, captures of heavier pieces first.
func (b *Board) LegalMoves() []Move {
	return b.legalMoves(b.policy != RepetitionOff)
}

// AllLegalMoves is LegalMoves without the seen-position filter.
func (b *Board) AllLegalMoves() []Move {
	return b.legalMoves(false)
}

type scoredMove struct {
	move   Move
	weight int
}

func (b *Board) legalMoves(filterSeen bool) []Move {
	side := b.sideToMove
	filterSeen = filterSeen && len(b.positions) > 0
	scored := make([]scoredMove, 0, 48)
	var buf [28]Square
	for from := Square(0); from < 64; from++ {
		p := b.pieces[from]
		if p.IsEmpty() || p.Side != side {
			continue
		}
		for _, to := range b.appendDestinations(buf[:0], from) {
			m := Move{From: from, To: to}
			weight := -1
			if target := b.pieces[to]; !target.IsEmpty() {
				weight = target.Kind.Weight()
			}
			rec := b.apply(m)
			ok := !b.IsInCheck(side)
			if ok && filterSeen && b.seen(b.currentKey()) {
				ok = false
			}
			b.restore(rec)
			if ok {
				scored = append(scored, scoredMove{move: m, weight: weight})
			}
		}
	}

	slices.SortStableFunc(scored, func(x, y scoredMove) int {
		return y.weight - x.weight
	})
	moves := make([]Move, len(scored))
	for i, s := range scored {
		moves[i] = s.move
	}
	return moves
}

// HasLegalMoves reports whether the side to move has any move that does not
// leave its king in check.
func (b *Board) HasLegalMoves() bool {
	side := b.sideToMove
	var buf [28]Square
	for from := Square(0); from < 64; from++ {
		p := b.pieces[from]
		if p.IsEmpty() || p.Side != side {
			continue
		}
		for _, to := range b.appendDestinations(buf[:0], from) {
			if b.IsLegalAfter(Move{From: from, To: to}, side) {
				return true
			}
		}
	}
	return false
}

// TerminalStatus evaluates the position for the side to move: Loss when it
// has no legal move while in check, Draw when it has none otherwise.
func (b *Board) TerminalStatus() Result {
	if b.HasLegalMoves() {
		return Result{Outcome: InProgress}
	}
	if b.IsInCheck(b.sideToMove) {
		return Result{Outcome: Loss, Loser: b.sideToMove}
	}
	return Result{Outcome: Draw}
}

func (b *Board) updateStatus() {
	b.result = b.TerminalStatus()
	b.gameOver = b.result.Outcome != InProgress
}
