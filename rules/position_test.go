package rules

import "testing"

func playUCI(t *testing.T, b *Board, moves ...string) {
	t.Helper()
	for _, s := range moves {
		m, err := ParseMove(s)
		if err != nil {
			t.Fatal(err)
		}
		if !b.IsLegal(m) {
			t.Fatalf("%s is not legal\n%s", s, b)
		}
		b.MakeMove(m)
		b.RecordPosition()
	}
}

func containsMove(moves []Move, s string) bool {
	for _, m := range moves {
		if m.String() == s {
			return true
		}
	}
	return false
}

func TestRepetition_StrictFiltersReturnToSeenPosition(t *testing.T) {
	b := NewBoard(White)
	b.RecordPosition()
	playUCI(t, b, "g1f3", "g8f6", "f3g1")

	if containsMove(b.LegalMoves(), "f6g8") {
		t.Fatalf("f6g8 returns to the recorded start position and should be filtered")
	}
	if !containsMove(b.AllLegalMoves(), "f6g8") {
		t.Fatalf("AllLegalMoves must not apply the filter")
	}
	if len(b.AllLegalMoves())-len(b.LegalMoves()) != 1 {
		t.Fatalf("expected exactly one filtered move")
	}
}

func TestRepetition_Off(t *testing.T) {
	b := NewBoard(White, WithRepetitionPolicy(RepetitionOff))
	b.RecordPosition()
	playUCI(t, b, "g1f3", "g8f6", "f3g1")
	if !containsMove(b.LegalMoves(), "f6g8") {
		t.Fatalf("repetition filter should be disabled")
	}
	if b.Seen() {
		t.Fatalf("Seen must report false when the filter is off")
	}
}

func TestRepetition_LegacyIgnoresColor(t *testing.T) {
	recorded, err := ParseFEN("4k3/8/8/8/8/8/r7/4K3 w - - 0 1", White)
	if err != nil {
		t.Fatal(err)
	}
	for _, policy := range []RepetitionPolicy{RepetitionStrict, RepetitionLegacy} {
		b, err := ParseFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1", White, WithRepetitionPolicy(policy))
		if err != nil {
			t.Fatal(err)
		}
		b.positions = append(b.positions, recorded.currentKey())

		filtered := !containsMove(b.LegalMoves(), "a1a2")
		if filtered != (policy == RepetitionLegacy) {
			t.Fatalf("%s: a1a2 filtered=%v", policy, filtered)
		}
	}
}

func TestForgetLastPosition(t *testing.T) {
	b := NewBoard(White)
	b.RecordPosition()
	playUCI(t, b, "g1f3", "g8f6", "f3g1")
	b.ForgetLastPosition()
	b.ForgetLastPosition()
	b.ForgetLastPosition()
	b.ForgetLastPosition()
	b.ForgetLastPosition()
	if b.SeenPositions() != 0 {
		t.Fatalf("got %d positions want 0", b.SeenPositions())
	}
}

func TestParseRepetitionPolicy(t *testing.T) {
	for _, s := range []string{"", "strict", "off", "none", "legacy"} {
		if _, err := ParseRepetitionPolicy(s); err != nil {
			t.Errorf("%q: %v", s, err)
		}
	}
	if _, err := ParseRepetitionPolicy("loose"); err == nil {
		t.Errorf("expected error for unknown policy")
	}
}

func TestHashIgnoresSideToMove(t *testing.T) {
	w, _ := ParseFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1", White)
	bl, _ := ParseFEN("4k3/8/8/8/8/8/8/R3K3 b - - 0 1", White)
	if w.Hash() != bl.Hash() {
		t.Fatalf("hash should depend on placement only")
	}
}
