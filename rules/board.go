// Package rules holds the board, the piece movement rules, legality and
// terminal status of the game. Castling and en passant are not played and
// pawns always promote to a queen.
package rules

import (
	"errors"
	"fmt"
	"strings"
)

// StartMaterial is each side's material in the initial position, king included.
const StartMaterial = 8*10 + 4*30 + 2*50 + 90 + 1000

// Board represents the game state: placement, side to move, cached king squares,
// material totals, terminal status and the undo history.
type Board struct {
	// Piece placement indexed by Square
	pieces [64]Piece

	// Side to move (which player's turn it is)
	sideToMove Side

	// Side played by the human; bots play the other one
	humanSide Side

	// King location for each side (index 0 = white, 1 = black)
	kings [2]Square

	// Sum of piece weights for each side, king included
	material [2]int

	gameOver bool
	result   Result

	// Fullmove number (starts at 1, incremented after Black's move)
	fullmoveNumber int

	// Stack of undo records, one per committed move
	history []undoRecord

	// Positions already played in the game, filtered out of LegalMoves
	policy    RepetitionPolicy
	positions []positionKey
}

// Option configures a Board at construction.
type Option func(*Board)

// WithRepetitionPolicy selects how previously seen positions are matched.
func WithRepetitionPolicy(p RepetitionPolicy) Option {
	return func(b *Board) { b.policy = p }
}

var backRank = [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the standard starting position with White to move.
func NewBoard(human Side, opts ...Option) *Board {
	b := &Board{humanSide: human, fullmoveNumber: 1, policy: RepetitionStrict}
	for file := 0; file < 8; file++ {
		b.pieces[SquareAt(file, 0)] = Piece{Kind: backRank[file], Side: White}
		b.pieces[SquareAt(file, 1)] = Piece{Kind: Pawn, Side: White}
		b.pieces[SquareAt(file, 6)] = Piece{Kind: Pawn, Side: Black}
		b.pieces[SquareAt(file, 7)] = Piece{Kind: backRank[file], Side: Black}
	}
	b.kings = [2]Square{SquareAt(4, 0), SquareAt(4, 7)}
	b.material = [2]int{StartMaterial, StartMaterial}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// PieceAt returns the piece on sq (empty for off-board squares).
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return Piece{}
	}
	return b.pieces[sq]
}

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Side { return b.sideToMove }

// HumanSide reports the side a human plays on this board.
func (b *Board) HumanSide() Side { return b.humanSide }

// BotSide reports the side the engine plays.
func (b *Board) BotSide() Side { return b.humanSide.Opponent() }

// KingSquare returns the cached king location for side.
func (b *Board) KingSquare(side Side) Square { return b.kings[side] }

// Material returns side's material total.
func (b *Board) Material(side Side) int { return b.material[side] }

// GameOver reports whether the side to move has no legal move.
func (b *Board) GameOver() bool { return b.gameOver }

// Result returns the terminal status evaluated after the last move.
func (b *Board) Result() Result { return b.result }

// FullmoveNumber returns the full move counter.
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// Plies returns the number of moves that can be unmade.
func (b *Board) Plies() int { return len(b.history) }

// Policy returns the repetition policy in effect.
func (b *Board) Policy() RepetitionPolicy { return b.policy }

// Clone returns a deep copy that shares no mutable state with b.
func (b *Board) Clone() *Board {
	c := *b
	c.history = append([]undoRecord(nil), b.history...)
	c.positions = append([]positionKey(nil), b.positions...)
	return &c
}

// Equal reports whether two boards hold the same placement, side to move,
// king caches, material and terminal status. History is not compared.
func (b *Board) Equal(o *Board) bool {
	return b.pieces == o.pieces &&
		b.sideToMove == o.sideToMove &&
		b.kings == o.kings &&
		b.material == o.material &&
		b.gameOver == o.gameOver &&
		b.result == o.result
}

// Validate checks the board invariants: one king per side matching the cache,
// and material totals matching the pieces on the board.
func (b *Board) Validate() error {
	var kings [2]int
	var material [2]int
	for sq := Square(0); sq < 64; sq++ {
		p := b.pieces[sq]
		if p.IsEmpty() {
			continue
		}
		material[p.Side] += p.Kind.Weight()
		if p.Kind == King {
			kings[p.Side]++
			if b.kings[p.Side] != sq {
				return fmt.Errorf("%s king on %s but cached on %s", p.Side, sq, b.kings[p.Side])
			}
		}
	}
	for _, side := range []Side{White, Black} {
		if kings[side] != 1 {
			return fmt.Errorf("%s has %d kings", side, kings[side])
		}
		if material[side] != b.material[side] {
			return fmt.Errorf("%s material %d, pieces sum to %d", side, b.material[side], material[side])
		}
	}
	return nil
}

var errNoKing = errors.New("missing king")

// String renders the board from the human side's point of view.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		rank := 7 - row
		if b.humanSide == Black {
			rank = row
		}
		sb.WriteByte('1' + byte(rank))
		sb.WriteByte(' ')
		for col := 0; col < 8; col++ {
			file := col
			if b.humanSide == Black {
				file = 7 - col
			}
			p := b.pieces[SquareAt(file, rank)]
			if p.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteRune(charFromPiece(p))
			}
			if col < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for col := 0; col < 8; col++ {
		file := col
		if b.humanSide == Black {
			file = 7 - col
		}
		sb.WriteByte('a' + byte(file))
		if col < 7 {
			sb.WriteByte(' ')
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}
