package rules

import "fmt"

// Side identifies one of the two players.
type Side uint8

const (
	White Side = 0
	Black Side = 1
)

// Opponent returns the other side.
func (s Side) Opponent() Side { return 1 - s }

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

// ParseSide accepts "white"/"w" and "black"/"b".
func ParseSide(s string) (Side, error) {
	switch s {
	case "white", "w", "White", "W":
		return White, nil
	case "black", "b", "Black", "B":
		return Black, nil
	}
	return White, fmt.Errorf("unknown side %q", s)
}

// PieceKind is a colorless piece type.
type PieceKind uint8

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// pieceWeight is indexed by PieceKind.
var pieceWeight = [7]int{0, 10, 30, 30, 50, 90, 1000}

// Weight returns the material weight of the kind. NoKind weighs nothing.
func (k PieceKind) Weight() int { return pieceWeight[k] }

func (k PieceKind) String() string {
	return [...]string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}[k]
}

// Piece is the content of one square. The zero value is an empty square.
type Piece struct {
	Kind  PieceKind
	Side  Side
	Moved bool // gates a pawn's double step
}

// IsEmpty reports whether the square holds no piece.
func (p Piece) IsEmpty() bool { return p.Kind == NoKind }

// Square is a board index rank*8+file; a1 = 0, h8 = 63.
type Square int8

const NoSquare Square = -1

// SquareAt builds a square from file and rank, or NoSquare if either is off-board.
func SquareAt(file, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}
	return Square(rank*8 + file)
}

// File returns 0 (a) through 7 (h).
func (sq Square) File() int { return int(sq) % 8 }

// Rank returns 0 (rank 1) through 7 (rank 8).
func (sq Square) Rank() int { return int(sq) / 8 }

// IsValid reports whether sq is on the board.
func (sq Square) IsValid() bool { return sq >= 0 && sq < 64 }

// Move is a (source, destination) pair. Legality depends on the board it is played on.
type Move struct {
	From Square
	To   Square
}

// NullMove stands for "no move".
var NullMove = Move{From: NoSquare, To: NoSquare}

// IsNull reports whether m is the null move.
func (m Move) IsNull() bool { return m == NullMove }

// Outcome is the state of the game for the side to move.
type Outcome uint8

const (
	InProgress Outcome = iota
	Draw
	Loss
)

// Result is the terminal status of a board. Loser is meaningful only for Loss.
type Result struct {
	Outcome Outcome
	Loser   Side
}

func (r Result) String() string {
	switch r.Outcome {
	case Draw:
		return "draw"
	case Loss:
		return r.Loser.String() + " loses"
	}
	return "in progress"
}
