package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"chess-bot/rules"
)

func newLegalCmd(root *rootOptions) *cobra.Command {
	var fen string
	cmd := &cobra.Command{
		Use:   "legal",
		Short: "Print the board and the legal moves of the side to move",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			board, err := loadBoard(cfg, fen)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, board)
			fmt.Fprintf(out, "%s to move, %s\n", board.SideToMove(), board.Result())

			moves := board.LegalMoves()
			names := make([]string, len(moves))
			for i, m := range moves {
				names[i] = board.UCI(m)
			}
			fmt.Fprintf(out, "%d moves: %s\n", len(moves), strings.Join(names, " "))
			return nil
		},
	}
	cmd.Flags().StringVar(&fen, "fen", rules.FENStartPos, "FEN string (defaults to initial position)")
	return cmd
}
