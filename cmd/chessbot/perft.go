package main

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"chess-bot/crosscheck"
	"chess-bot/rules"
)

func newPerftCmd(root *rootOptions) *cobra.Command {
	var (
		fen    string
		depth  int
		divide bool
		verify bool
	)
	cmd := &cobra.Command{
		Use:   "perft",
		Short: "Count leaf nodes of the move tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			if depth <= 0 {
				return errors.New("--depth must be > 0")
			}
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			board, err := loadBoard(cfg, fen)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if verify {
				rep, err := crosscheck.Walk(board, depth-1)
				if err != nil {
					return err
				}
				if !rep.OK() {
					return fmt.Errorf("move generator mismatch: %s", rep)
				}
				fmt.Fprintf(out, "verified against dragontoothmg to depth %d\n", depth)
			}

			if divide {
				div := rules.PerftDivide(board, depth)
				type kv struct {
					m rules.Move
					n uint64
				}
				arr := make([]kv, 0, len(div))
				var sum uint64
				for m, n := range div {
					arr = append(arr, kv{m, n})
					sum += n
				}
				sort.Slice(arr, func(i, j int) bool { return arr[i].m.String() < arr[j].m.String() })
				for _, x := range arr {
					fmt.Fprintf(out, "%s: %d\n", board.UCI(x.m), x.n)
				}
				fmt.Fprintf(out, "Total: %d\n", sum)
				return nil
			}

			start := time.Now()
			nodes := rules.Perft(board, depth)
			elapsed := time.Since(start)
			nps := 0.0
			if secs := elapsed.Seconds(); secs > 0 {
				nps = float64(nodes) / secs
			}
			fmt.Fprintf(out, "perft depth %d nodes %d time %s nps %.0f\n", depth, nodes, elapsed.Round(time.Millisecond), nps)
			return nil
		},
	}
	cmd.Flags().StringVar(&fen, "fen", rules.FENStartPos, "FEN string (defaults to initial position)")
	cmd.Flags().IntVar(&depth, "depth", 0, "perft depth (required)")
	cmd.Flags().BoolVar(&divide, "divide", false, "print per-move node counts at root")
	cmd.Flags().BoolVar(&verify, "verify", false, "cross-check every node against dragontoothmg first")
	return cmd
}
