package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"chess-bot/config"
	"chess-bot/rules"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "chessbot",
		Short:        "Chess rules engine with a minimax bot",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetFlags(log.Ltime | log.Lmicroseconds)
			log.SetOutput(os.Stderr)
			if !opts.verbose {
				log.SetOutput(io.Discard)
			}
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log game events to stderr")

	cmd.AddCommand(
		newPerftCmd(opts),
		newBestMoveCmd(opts),
		newLegalCmd(opts),
		newSelfPlayCmd(opts),
	)
	return cmd
}

func (o *rootOptions) loadConfig() (config.Config, error) {
	if o.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(o.configPath)
}

// loadBoard parses fen with the configured human side and repetition policy.
func loadBoard(cfg config.Config, fen string) (*rules.Board, error) {
	return rules.ParseFEN(fen, cfg.Side(), rules.WithRepetitionPolicy(cfg.Policy()))
}
