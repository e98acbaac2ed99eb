package bench

import (
	"testing"

	"chess-bot/crosscheck"
	"chess-bot/engine"
	"chess-bot/rules"
)

func benchLegalMoves(b *testing.B, fen string) {
	board := parse(b, fen)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.LegalMoves()
	}
}

func BenchmarkLegalMoves_Initial(b *testing.B) {
	benchLegalMoves(b, rules.FENStartPos)
}

func BenchmarkLegalMoves_Kiwipete(b *testing.B) {
	benchLegalMoves(b, kiwipete)
}

func BenchmarkLegalMoves_Pos6(b *testing.B) {
	benchLegalMoves(b, pos6)
}

func BenchmarkLegalMoves_RecordedHistory(b *testing.B) {
	board := parse(b, pos6)
	for _, m := range board.AllLegalMoves() {
		board.MakeMove(m)
		board.RecordPosition()
		board.UnmakeMove()
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.LegalMoves()
	}
}

func BenchmarkIsInCheck_Pos6(b *testing.B) {
	board := parse(b, pos6)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.IsInCheck(rules.White)
	}
}

func BenchmarkMakeUnmake_AllMoves_Initial(b *testing.B) {
	board := parse(b, rules.FENStartPos)
	moves := board.AllLegalMoves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			board.MakeMove(m)
			board.UnmakeMove()
		}
	}
}

func BenchmarkSearch_Pos6_D2(b *testing.B) {
	board := parse(b, pos6)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.Search(board, engine.Options{Depth: 2})
	}
}

func BenchmarkCrosscheck_Kiwipete(b *testing.B) {
	board := parse(b, kiwipete)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := crosscheck.Compare(board); err != nil {
			b.Fatal(err)
		}
	}
}

// The positions above must agree with dragontoothmg for the numbers to
// mean anything.
func TestBenchPositionsAgree(t *testing.T) {
	for _, fen := range []string{rules.FENStartPos, kiwipete, pos6} {
		board, err := rules.ParseFEN(fen, rules.White)
		if err != nil {
			t.Fatal(err)
		}
		rep, err := crosscheck.Walk(board, 1)
		if err != nil {
			t.Fatal(err)
		}
		if !rep.OK() {
			t.Errorf("%s", rep)
		}
	}
}
