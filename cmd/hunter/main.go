// Package main is the Hunter command line. It runs one analysis and prints
// the report as indented JSON on stdout. Actions return plain errors; only
// main decides the exit code.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aristath/hunter/internal/modules/draws"
	"github.com/aristath/hunter/internal/modules/hunter"
	"github.com/aristath/hunter/internal/modules/scoring"
	"github.com/aristath/hunter/pkg/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "hunter",
		Usage:     "descriptive analytics over synthetic keno and positional draw histories",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "debug, info, warn, error or disabled",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "keno",
				Usage: "analyze a 20-of-80 history and score the recommended combination",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "periods", Value: hunter.DefaultKenoPeriods, Usage: "number of draws to simulate"},
					&cli.IntFlag{Name: "stars", Value: hunter.DefaultStarCount, Usage: "combination size"},
					&cli.IntFlag{Name: "top", Value: hunter.DefaultTopN, Usage: "size of the candidate pool"},
					&cli.Uint64Flag{Name: "seed", Value: draws.DefaultSeed, Usage: "simulator seed"},
					&cli.StringFlag{Name: "profile", Value: scoring.ProfileStandard, Usage: "scoring profile"},
				},
				Action: func(c *cli.Context) error {
					cfg, err := scoring.ConfigForProfile(c.String("profile"))
					if err != nil {
						return err
					}
					params := hunter.KenoParams{
						Scoring:   cfg,
						Seed:      c.Uint64("seed"),
						Periods:   c.Int("periods"),
						StarCount: c.Int("stars"),
						TopN:      c.Int("top"),
					}
					report, err := service(c, stderr).RunKeno(params)
					if err != nil {
						return fmt.Errorf("keno analysis: %w", err)
					}
					return printJSON(c.App.Writer, report)
				},
			},
			{
				Name:  "positional",
				Usage: "backtest the per-position mode model on a 3-digit history",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "periods", Value: hunter.DefaultPositionalPeriods, Usage: "number of draws to simulate"},
					&cli.IntFlag{Name: "test-size", Value: hunter.DefaultTestSize, Usage: "holdout size"},
					&cli.Uint64Flag{Name: "seed", Value: draws.DefaultSeed, Usage: "simulator seed"},
				},
				Action: func(c *cli.Context) error {
					params := hunter.PositionalParams{
						Seed:     c.Uint64("seed"),
						Periods:  c.Int("periods"),
						TestSize: c.Int("test-size"),
					}
					report, err := service(c, stderr).RunPositional(params)
					if err != nil {
						return fmt.Errorf("positional analysis: %w", err)
					}
					return printJSON(c.App.Writer, report)
				},
			},
		},
	}
}

func service(c *cli.Context, stderr io.Writer) *hunter.Service {
	log := logger.New(logger.Config{
		Level:  c.String("log-level"),
		Pretty: true,
		Out:    stderr,
	})
	return hunter.NewService(log)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
