package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/codebreaker/internal/cli"
	"github.com/robalobadob/codebreaker/internal/config"
	"github.com/robalobadob/codebreaker/internal/daily"
	"github.com/robalobadob/codebreaker/internal/difficulty"
	"github.com/robalobadob/codebreaker/internal/game"
	"github.com/robalobadob/codebreaker/internal/render"
	"github.com/robalobadob/codebreaker/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(cfg).ExecuteContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("codebreaker exited")
	}
}

type playFlags struct {
	difficulty string
	plain      bool
	seed       uint64
	daily      bool
}

func newRootCmd(cfg config.Config) *cobra.Command {
	var pf playFlags

	play := &cobra.Command{
		Use:   "play",
		Short: "Play a game (the default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, cfg, pf)
		},
	}
	addPlayFlags(play, &pf)

	root := &cobra.Command{
		Use:           "codebreaker",
		Short:         "Break a secret numeric code from exact/present clues",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, cfg, pf)
		},
	}
	addPlayFlags(root, &pf)

	root.AddCommand(play, &cobra.Command{
		Use:   "difficulties",
		Short: "List the difficulty table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tbl, err := difficulty.Load(cfg.DifficultiesFile)
			if err != nil {
				return err
			}
			r, err := render.NewText(cmd.OutOrStdout(), render.Options{})
			if err != nil {
				return err
			}
			r.Table(tbl)
			return nil
		},
	})
	return root
}

func addPlayFlags(cmd *cobra.Command, pf *playFlags) {
	cmd.Flags().StringVarP(&pf.difficulty, "difficulty", "d", "", "difficulty number or key; skips the menu")
	cmd.Flags().BoolVar(&pf.plain, "plain", false, "disable colors")
	cmd.Flags().Uint64Var(&pf.seed, "seed", 0, "seed the code generator for a reproducible game")
	cmd.Flags().BoolVar(&pf.daily, "daily", false, "play today's code (same for everyone with the same DAILY_SALT)")
	cmd.MarkFlagsMutuallyExclusive("seed", "daily")
}

func runPlay(cmd *cobra.Command, cfg config.Config, pf playFlags) error {
	ctx := cmd.Context()

	tbl, err := difficulty.Load(cfg.DifficultiesFile)
	if err != nil {
		return err
	}

	var preset *game.Difficulty
	if pf.difficulty != "" {
		d, err := tbl.Lookup(pf.difficulty)
		if err != nil {
			return err
		}
		preset = &d
	}

	var rng game.RNG
	if cmd.Flags().Changed("seed") {
		rng = game.NewSeededRNG(pf.seed)
	} else if rng, err = game.NewRNG(); err != nil {
		return err
	}

	results, err := openStore(ctx, cfg.StatsBackend)
	if err != nil {
		return err
	}
	defer results.Close()

	colorMode := string(cfg.Color)
	if pf.plain {
		colorMode = string(config.ColorNever)
	}
	r, err := render.NewText(render.Stdout(), render.DetectOptions(colorMode, os.Stdin, os.Stdout))
	if err != nil {
		return err
	}

	g := cli.New(cmd.InOrStdin(), r, tbl, results, rng)
	g.Preset = preset
	if pf.daily {
		g.RNGFor = func(d game.Difficulty) game.RNG {
			return daily.NewRNG(time.Now(), cfg.DailySalt, d.Key)
		}
	}
	log.Debug().Int("difficulties", len(tbl)).Str("stats", cfg.StatsBackend).Msg("starting codebreaker")
	return g.Run(ctx)
}

func openStore(ctx context.Context, backend string) (store.Store, error) {
	if backend == "memory" {
		return store.NewMemoryStore(), nil
	}
	return store.OpenSQLite(ctx)
}
