package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chess-bot/game"
	"chess-bot/rules"
)

func newSelfPlayCmd(root *rootOptions) *cobra.Command {
	var (
		fen     string
		plies   int
		pgnPath string
	)
	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Let the bot play both sides",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			s, err := game.NewSessionFromFEN(cfg, fen)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			ctx := cmd.Context()

			for i := 0; i < plies && !s.Over(); i++ {
				m, err := s.AutoMove(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%d. %s\n", i+1, m)
			}
			fmt.Fprint(out, s.Board())
			fmt.Fprintf(out, "result: %s\n", s.Result())

			if pgnPath == "" {
				return nil
			}
			pgn, err := s.PGN()
			if err != nil {
				return err
			}
			if pgnPath == "-" {
				fmt.Fprintln(out, pgn)
				return nil
			}
			return os.WriteFile(pgnPath, []byte(pgn+"\n"), 0o644)
		},
	}
	cmd.Flags().StringVar(&fen, "fen", rules.FENStartPos, "starting position")
	cmd.Flags().IntVar(&plies, "plies", 40, "maximum number of plies to play")
	cmd.Flags().StringVar(&pgnPath, "pgn", "", "write the game as PGN to this file (- for stdout)")
	return cmd
}
