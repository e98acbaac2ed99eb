package rules

import (
	"errors"
	"strings"
)

var (
	ErrInvalidSquare = errors.New("invalid algebraic square")
	ErrInvalidMove   = errors.New("invalid move notation")
)

// String returns algebraic coordinates such as "e4", or "-" for NoSquare.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// ParseSquare converts "a1".."h8" into a Square.
func ParseSquare(alg string) (Square, error) {
	if len(alg) != 2 {
		return NoSquare, ErrInvalidSquare
	}
	file, rank := alg[0], alg[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, ErrInvalidSquare
	}
	return SquareAt(int(file-'a'), int(rank-'1')), nil
}

// String produces UCI coordinates ("e2e4"); the null move is "0000".
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	return m.From.String() + m.To.String()
}

// ParseMove converts a UCI string (e2e4, e7e8q, 0000) into a Move. Pawns
// always promote to a queen, so the only accepted suffix is 'q'.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "0000" {
		return NullMove, nil
	}
	if len(s) < 4 || len(s) > 5 {
		return NullMove, ErrInvalidMove
	}
	if len(s) == 5 && s[4] != 'q' {
		return NullMove, ErrInvalidMove
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NullMove, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NullMove, err
	}
	return Move{From: from, To: to}, nil
}

// UCI formats m as played on b, appending "q" for promotions.
func (b *Board) UCI(m Move) string {
	if b.IsPromotion(m) {
		return m.String() + "q"
	}
	return m.String()
}
