package rules

// Pseudo-legal move generation. Destinations match each piece's movement
// pattern and occupancy rules; king safety is checked by the Board.

type offset struct{ df, dr int }

var (
	kingOffsets = [8]offset{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
	knightOffsets = [8]offset{
		{1, 2}, {2, 1}, {1, -2}, {2, -1},
		{-1, -2}, {-2, -1}, {-1, 2}, {-2, 1},
	}
	rookRays   = [4]offset{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	bishopRays = [4]offset{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
)

// PawnDirection is the rank step of a pawn of the given side.
func PawnDirection(side Side) int {
	if side == White {
		return 1
	}
	return -1
}

// PromotionRank is the rank on which side's pawns promote.
func PromotionRank(side Side) int {
	if side == White {
		return 7
	}
	return 0
}

// PseudoLegal returns the destinations of the piece on from, ignoring
// whether the move exposes its own king. Empty squares have none.
func PseudoLegal(b *Board, from Square) []Square {
	return b.appendDestinations(make([]Square, 0, 28), from)
}

// validTarget reports whether a piece of side may land on sq: on-board and
// either empty or holding an enemy.
func (b *Board) validTarget(sq Square, side Side) bool {
	if !sq.IsValid() {
		return false
	}
	p := b.pieces[sq]
	return p.IsEmpty() || p.Side != side
}

func (b *Board) appendDestinations(dst []Square, from Square) []Square {
	p := b.pieces[from]
	switch p.Kind {
	case Pawn:
		return b.appendPawn(dst, from, p)
	case Knight:
		return b.appendSteps(dst, from, p.Side, knightOffsets[:])
	case Bishop:
		return b.appendRays(dst, from, p.Side, bishopRays[:])
	case Rook:
		return b.appendRays(dst, from, p.Side, rookRays[:])
	case Queen:
		dst = b.appendRays(dst, from, p.Side, rookRays[:])
		return b.appendRays(dst, from, p.Side, bishopRays[:])
	case King:
		return b.appendSteps(dst, from, p.Side, kingOffsets[:])
	}
	return dst
}

func (b *Board) appendSteps(dst []Square, from Square, side Side, offsets []offset) []Square {
	f, r := from.File(), from.Rank()
	for _, o := range offsets {
		to := SquareAt(f+o.df, r+o.dr)
		if b.validTarget(to, side) {
			dst = append(dst, to)
		}
	}
	return dst
}

// appendRays slides along each direction until the edge or the first
// occupied square, which is included only when it holds an enemy.
func (b *Board) appendRays(dst []Square, from Square, side Side, rays []offset) []Square {
	f, r := from.File(), from.Rank()
	for _, o := range rays {
		for step := 1; ; step++ {
			to := SquareAt(f+o.df*step, r+o.dr*step)
			if !b.validTarget(to, side) {
				break
			}
			dst = append(dst, to)
			if !b.pieces[to].IsEmpty() {
				break
			}
		}
	}
	return dst
}

func (b *Board) appendPawn(dst []Square, from Square, p Piece) []Square {
	f, r := from.File(), from.Rank()
	dir := PawnDirection(p.Side)

	one := SquareAt(f, r+dir)
	if one.IsValid() && b.pieces[one].IsEmpty() {
		dst = append(dst, one)
		two := SquareAt(f, r+2*dir)
		if !p.Moved && two.IsValid() && b.pieces[two].IsEmpty() {
			dst = append(dst, two)
		}
	}
	for _, df := range [2]int{-1, 1} {
		to := SquareAt(f+df, r+dir)
		if to.IsValid() && !b.pieces[to].IsEmpty() && b.pieces[to].Side != p.Side {
			dst = append(dst, to)
		}
	}
	return dst
}
