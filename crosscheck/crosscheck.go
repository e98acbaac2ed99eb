// Package crosscheck compares the move generator in rules against
// dragontoothmg on the same positions. Castling and en passant do not exist
// in rules, and ToFEN never grants them, so both generators play the same
// game apart from underpromotions, which are skipped.
package crosscheck

import (
	"fmt"
	"sort"

	"github.com/dylhunn/dragontoothmg"

	"chess-bot/rules"
)

// Report lists the moves on which the two generators disagree.
type Report struct {
	FEN     string
	Missing []rules.Move // generated by dragontoothmg only
	Extra   []rules.Move // generated by rules only
}

// OK reports whether both generators agree.
func (r Report) OK() bool {
	return len(r.Missing) == 0 && len(r.Extra) == 0
}

func (r Report) String() string {
	if r.OK() {
		return fmt.Sprintf("%s: ok", r.FEN)
	}
	return fmt.Sprintf("%s: missing %v, extra %v", r.FEN, r.Missing, r.Extra)
}

// Compare checks the legal moves of b's side to move. Seen positions are
// ignored.
func Compare(b *rules.Board) (Report, error) {
	fen := b.ToFEN()
	rep := Report{FEN: fen}

	want, err := referenceMoves(fen)
	if err != nil {
		return rep, err
	}
	got := make(map[rules.Move]bool)
	for _, m := range b.AllLegalMoves() {
		got[m] = true
	}

	for m := range want {
		if !got[m] {
			rep.Missing = append(rep.Missing, m)
		}
	}
	for m := range got {
		if !want[m] {
			rep.Extra = append(rep.Extra, m)
		}
	}
	sortMoves(rep.Missing)
	sortMoves(rep.Extra)
	return rep, nil
}

// Walk runs Compare on every node of the tree below b up to depth plies and
// returns the first disagreement. b is restored before returning.
func Walk(b *rules.Board, depth int) (Report, error) {
	rep, err := Compare(b)
	if err != nil || !rep.OK() || depth <= 0 {
		return rep, err
	}
	for _, m := range b.AllLegalMoves() {
		b.MakeMove(m)
		rep, err = Walk(b, depth-1)
		b.UnmakeMove()
		if err != nil || !rep.OK() {
			return rep, err
		}
	}
	return rep, nil
}

func referenceMoves(fen string) (moves map[rules.Move]bool, err error) {
	// ParseFen panics on malformed input
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dragontoothmg rejected %q: %v", fen, r)
		}
	}()

	board := dragontoothmg.ParseFen(fen)
	legal := board.GenerateLegalMoves()
	moves = make(map[rules.Move]bool, len(legal))
	for i := range legal {
		mv := &legal[i]
		if p := mv.Promote(); p != dragontoothmg.Nothing && p != dragontoothmg.Queen {
			continue
		}
		moves[rules.Move{From: rules.Square(mv.From()), To: rules.Square(mv.To())}] = true
	}
	return moves, nil
}

func sortMoves(moves []rules.Move) {
	sort.Slice(moves, func(i, j int) bool {
		if moves[i].From != moves[j].From {
			return moves[i].From < moves[j].From
		}
		return moves[i].To < moves[j].To
	})
}
