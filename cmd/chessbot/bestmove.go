package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"chess-bot/engine"
	"chess-bot/rules"
)

func newBestMoveCmd(root *rootOptions) *cobra.Command {
	var (
		fen   string
		depth int
		stats bool
	)
	cmd := &cobra.Command{
		Use:   "bestmove",
		Short: "Search a position and print the chosen move",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if depth > 0 {
				cfg.Depth = depth
			}
			board, err := loadBoard(cfg, fen)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if board.GameOver() {
				fmt.Fprintf(out, "info string %s\n", board.Result())
				fmt.Fprintln(out, "bestmove 0000")
				return nil
			}

			ctx := cmd.Context()
			if cfg.MoveTimeout() > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, cfg.MoveTimeout())
				defer cancel()
			}
			res, err := engine.SearchWithDeadline(ctx, board, engine.Options{Depth: cfg.SearchDepth()})
			if err != nil {
				return err
			}

			fmt.Fprintln(out,
				"info depth", res.Depth,
				"score", res.Score,
				"nodes", res.Stats.Nodes,
				"time", res.Elapsed.Milliseconds(),
			)
			if stats {
				engine.DumpStats(out, res.Stats)
			}
			if res.Move.IsNull() {
				fmt.Fprintln(out, "bestmove 0000")
				return nil
			}
			fmt.Fprintln(out, "bestmove", board.UCI(res.Move))
			return nil
		},
	}
	cmd.Flags().StringVar(&fen, "fen", rules.FENStartPos, "FEN string (defaults to initial position)")
	cmd.Flags().IntVar(&depth, "depth", 0, "search depth in plies (defaults to the configured difficulty)")
	cmd.Flags().BoolVar(&stats, "stats", false, "print search statistics")
	return cmd
}
