package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"dragon-clan/clan"
)

type logConfig struct {
	Level  string `env:"DRAGONCLAN_LOG_LEVEL" envDefault:"warn"`
	Format string `env:"DRAGONCLAN_LOG_FORMAT" envDefault:"text"`
}

// app carries state shared by every subcommand, resolved in PersistentPreRunE.
type app struct {
	cfg    clan.Config
	logs   logConfig
	seed   int64
	base   *slog.Logger
	logger *slog.Logger
}

func newLogger(w io.Writer, lc logConfig) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(lc.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", lc.Level)
	}
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(lc.Format) {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (want text or json)", lc.Format)
	}
}

func newRootCommand() *cobra.Command {
	a := &app{}
	var (
		level  string
		format string
	)

	cmd := &cobra.Command{
		Use:           "dragonclan",
		Short:         "Simulate relationships in a clan of dragons",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := clan.LoadConfigFromEnv()
			if err != nil {
				return err
			}
			lc, err := env.ParseAs[logConfig]()
			if err != nil {
				return fmt.Errorf("load log config: %w", err)
			}
			flags := cmd.Flags()
			if flags.Changed("seed") {
				cfg.Seed = a.seed
			}
			if flags.Changed("log-level") {
				lc.Level = level
			}
			if flags.Changed("log-format") {
				lc.Format = format
			}
			logger, err := newLogger(cmd.ErrOrStderr(), lc)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logs = lc
			a.base = logger
			a.logger = logger.With(slog.String("component", "cli"))
			return nil
		},
	}

	cmd.PersistentFlags().Int64Var(&a.seed, "seed", 0, "RNG seed (0 => time-based)")
	cmd.PersistentFlags().StringVar(&level, "log-level", "warn", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&format, "log-format", "text", "Log format: text or json")

	cmd.AddCommand(
		newSimulateCommand(a),
		newReplayCommand(a),
		newNamesCommand(a),
		newInspectCommand(a),
	)
	return cmd
}

// newClan builds a clan from the resolved config. An explicit roster path
// replaces the random founding population.
func (a *app) newClan(dragons int, roster string, strict bool, opts ...clan.Option) (*clan.Clan, error) {
	cfg := a.cfg
	if dragons >= 0 {
		cfg.InitialDragons = dragons
	}
	if roster != "" {
		cfg.InitialDragons = 0
	}
	opts = append([]clan.Option{clan.WithLogger(a.base)}, opts...)
	c, err := clan.New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	if roster == "" {
		return c, nil
	}
	r, err := clan.LoadRosterFile(roster)
	if err != nil {
		return nil, err
	}
	if _, err := c.LoadRoster(r, strict); err != nil {
		return nil, fmt.Errorf("load roster %s: %w", roster, err)
	}
	return c, nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
