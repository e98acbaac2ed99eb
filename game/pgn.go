package game

import (
	"fmt"
	"strings"

	chess "github.com/corentings/chess/v2"

	"chess-bot/rules"
)

// PGN exports the game with SAN move text. The starting position is
// included as a FEN tag when it is not the initial one.
func (s *Session) PGN() (string, error) {
	fenOpt, err := chess.FEN(s.startFEN)
	if err != nil {
		return "", fmt.Errorf("pgn: %w", err)
	}
	g := chess.NewGame(fenOpt)

	for i, uci := range s.moves {
		mv, err := chess.UCINotation{}.Decode(g.Position(), uci)
		if err != nil {
			return "", fmt.Errorf("pgn: move %d %s: %w", i+1, uci, err)
		}
		san := chess.AlgebraicNotation{}.Encode(g.Position(), mv)
		if err := g.PushMove(san, &chess.PushMoveOptions{ForceMainline: true}); err != nil {
			return "", fmt.Errorf("pgn: move %d %s (%s): %w", i+1, uci, san, err)
		}
	}

	g.AddTagPair("Event", "chess-bot "+s.ID.String())
	g.AddTagPair("White", s.playerName(rules.White))
	g.AddTagPair("Black", s.playerName(rules.Black))
	g.AddTagPair("Result", resultTag(s.board.Result()))
	if s.startFEN != rules.FENStartPos {
		g.AddTagPair("SetUp", "1")
		g.AddTagPair("FEN", s.startFEN)
	}
	// The movetext terminator follows the rules result, not the library's
	// own automatic draws.
	pgn := strings.TrimSuffix(g.String(), g.Outcome().String())
	return pgn + resultTag(s.board.Result()), nil
}

func (s *Session) playerName(side rules.Side) string {
	if side == s.human {
		return "Human"
	}
	return fmt.Sprintf("chess-bot (depth %d)", s.depth)
}

func resultTag(r rules.Result) string {
	switch {
	case r.Outcome == rules.Draw:
		return "1/2-1/2"
	case r.Outcome == rules.Loss && r.Loser == rules.White:
		return "0-1"
	case r.Outcome == rules.Loss && r.Loser == rules.Black:
		return "1-0"
	}
	return "*"
}
