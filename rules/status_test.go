package rules_test

import (
	"testing"

	"chess-bot/rules"
)

func TestCheckmate_KingAndQueen(t *testing.T) {
	// Black king a8 mated by a queen on b7 guarded by the king on b6
	b := mustFEN(t, "k7/1Q6/1K6/8/8/8/8/8 b - - 0 1")
	if !b.IsInCheck(rules.Black) {
		t.Fatalf("expected black to be in check")
	}
	if b.HasLegalMoves() {
		t.Fatalf("expected no legal moves for black in mate")
	}
	want := rules.Result{Outcome: rules.Loss, Loser: rules.Black}
	if got := b.TerminalStatus(); got != want {
		t.Fatalf("TerminalStatus: got %v want %v", got, want)
	}
	if !b.GameOver() || b.Result() != want {
		t.Fatalf("board status not set on load: over=%v result=%v", b.GameOver(), b.Result())
	}
}

func TestStalemate_Basic(t *testing.T) {
	b := mustFEN(t, "k7/8/1Q6/8/8/8/8/1K6 b - - 0 1")
	if b.IsInCheck(rules.Black) {
		t.Fatalf("expected black not in check")
	}
	if got := b.TerminalStatus(); got.Outcome != rules.Draw {
		t.Fatalf("TerminalStatus: got %v want draw", got)
	}
	if len(b.LegalMoves()) != 0 {
		t.Fatalf("stalemated side should have no legal moves")
	}
}

// Making the mating move flips the status; unmaking it restores InProgress.
func TestMateInOne_MakeAndDetect(t *testing.T) {
	b := mustFEN(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	if b.GameOver() {
		t.Fatalf("position should be in progress")
	}
	b.MakeMove(mustMove(t, "a1a8"))
	want := rules.Result{Outcome: rules.Loss, Loser: rules.Black}
	if !b.GameOver() || b.Result() != want {
		t.Fatalf("after Ra8: over=%v result=%v", b.GameOver(), b.Result())
	}
	b.UnmakeMove()
	if b.GameOver() || b.Result().Outcome != rules.InProgress {
		t.Fatalf("unmake did not restore status: over=%v result=%v", b.GameOver(), b.Result())
	}
}

func TestStalemateAfterMove(t *testing.T) {
	b := mustFEN(t, "k7/8/8/1Q6/8/8/8/1K6 w - - 0 1")
	b.MakeMove(mustMove(t, "b5b6"))
	if got := b.Result(); got.Outcome != rules.Draw || !b.GameOver() {
		t.Fatalf("after Qb6: got %v over=%v, want draw", got, b.GameOver())
	}
}

func TestResultString(t *testing.T) {
	tests := []struct {
		r    rules.Result
		want string
	}{
		{rules.Result{}, "in progress"},
		{rules.Result{Outcome: rules.Draw}, "draw"},
		{rules.Result{Outcome: rules.Loss, Loser: rules.White}, "white loses"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("got %q want %q", got, tt.want)
		}
	}
}
