package rules

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// ErrInvalidFEN is wrapped by every ParseFEN failure.
var ErrInvalidFEN = errors.New("invalid FEN")

var fenKinds = map[rune]PieceKind{
	'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King,
}

// pieceFromChar converts a FEN character to a Piece.
func pieceFromChar(ch rune) (Piece, bool) {
	side := White
	if ch >= 'a' && ch <= 'z' {
		side = Black
	} else {
		ch += 'a' - 'A'
	}
	kind, ok := fenKinds[ch]
	if !ok {
		return Piece{}, false
	}
	return Piece{Kind: kind, Side: side}, true
}

// charFromPiece converts a Piece to its FEN character representation.
func charFromPiece(p Piece) rune {
	ch := rune(" pnbrqk"[p.Kind])
	if p.Side == White {
		ch -= 'a' - 'A'
	}
	return ch
}

func fenError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidFEN, fmt.Sprintf(format, args...))
}

// ParseFEN builds a board from the placement and side-to-move fields of a FEN
// string. Castling and en passant fields are accepted and ignored.
func ParseFEN(fen string, human Side, opts ...Option) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return nil, fenError("not enough fields")
	}

	b := &Board{humanSide: human, fullmoveNumber: 1, policy: RepetitionStrict}
	for i := range b.kings {
		b.kings[i] = NoSquare
	}

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fenError("incorrect number of ranks")
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			p, ok := pieceFromChar(ch)
			if !ok {
				return nil, fenError("unrecognized piece character %q", ch)
			}
			if file >= 8 {
				return nil, fenError("too many squares in rank %d", rank+1)
			}
			sq := SquareAt(file, rank)
			if p.Kind == Pawn {
				home := 1
				if p.Side == Black {
					home = 6
				}
				p.Moved = rank != home
			}
			if p.Kind == King {
				if b.kings[p.Side] != NoSquare {
					return nil, fenError("more than one %s king", p.Side)
				}
				b.kings[p.Side] = sq
			}
			b.pieces[sq] = p
			b.material[p.Side] += p.Kind.Weight()
			file++
		}
		if file != 8 {
			return nil, fenError("rank %d has %d squares", rank+1, file)
		}
	}
	if b.kings[White] == NoSquare || b.kings[Black] == NoSquare {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFEN, errNoKing)
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return nil, fenError("bad side to move %q", fields[1])
	}

	// 6. Fullmove number
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fenError("fullmove number %q", fields[5])
		}
		b.fullmoveNumber = n
	}

	for _, opt := range opts {
		opt(b)
	}
	if b.IsInCheck(b.sideToMove.Opponent()) {
		return nil, fenError("%s is in check but not to move", b.sideToMove.Opponent())
	}
	b.updateStatus()
	return b, nil
}

// ToFEN produces the FEN string of the board. Castling and en passant are
// always "-" and the halfmove clock is 0.
func (b *Board) ToFEN() string {
	var sb strings.Builder

	// 1. Piece placement
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.pieces[SquareAt(file, rank)]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteRune(charFromPiece(p))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	// 2. Side to move
	if b.sideToMove == White {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}

	// 3-5. No castling, no en passant, halfmove clock unused
	sb.WriteString(" - - 0 ")

	// 6. Fullmove number
	sb.WriteString(strconv.Itoa(b.fullmoveNumber))
	return sb.String()
}
