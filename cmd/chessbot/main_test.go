package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("%v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestPerftCmd(t *testing.T) {
	out := run(t, "", "perft", "--depth", "2")
	if !strings.Contains(out, "nodes 400 ") {
		t.Fatalf("got %q", out)
	}

	out = run(t, "", "perft", "--depth", "2", "--divide")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 21 || lines[20] != "Total: 400" || lines[0] != "a2a3: 20" {
		t.Fatalf("got %q", out)
	}

	out = run(t, "", "perft", "--depth", "2", "--verify")
	if !strings.Contains(out, "verified against dragontoothmg") {
		t.Fatalf("got %q", out)
	}
}

func TestPerftCmd_RequiresDepth(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"perft"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error without --depth")
	}
}

func TestBestMoveCmd(t *testing.T) {
	out := run(t, "", "bestmove", "--fen", "n5k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", "--depth", "1", "--stats")
	if !strings.Contains(out, "bestmove a1a8\n") {
		t.Fatalf("got %q", out)
	}
	if !strings.Contains(out, "info string Search statistics:") {
		t.Fatalf("missing stats in %q", out)
	}

	out = run(t, "", "bestmove", "--fen", "k7/8/1Q6/8/8/8/8/1K6 b - - 0 1")
	if !strings.Contains(out, "bestmove 0000") {
		t.Fatalf("got %q", out)
	}
}

func TestLegalCmd(t *testing.T) {
	out := run(t, "", "legal")
	if !strings.Contains(out, "20 moves:") || !strings.Contains(out, "white to move") {
		t.Fatalf("got %q", out)
	}
}

func TestSelfPlayCmd(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "chessbot.yaml")
	if err := os.WriteFile(cfgPath, []byte("difficulty: easy\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	pgnPath := filepath.Join(dir, "game.pgn")

	out := run(t, "", "--config", cfgPath, "selfplay", "--plies", "4", "--pgn", pgnPath)
	if !strings.Contains(out, "4. ") || !strings.Contains(out, "result: in progress") {
		t.Fatalf("got %q", out)
	}
	pgn, err := os.ReadFile(pgnPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(pgn), "1. ") || !strings.Contains(string(pgn), `[Result "*"]`) {
		t.Fatalf("got %q", pgn)
	}
}
