package cmd

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/crittersort/internal/logging"
	"github.com/abhisek/crittersort/internal/scenario"
	"github.com/abhisek/crittersort/internal/simulation"
)

// env holds the services shared by every command.
type env struct {
	cfg     simulation.Config
	engine  *simulation.Engine
	catalog *scenario.Catalog
	logger  *logrus.Logger
	seed    uint64
	close   func() error
}

// envOptions adjusts how newEnv wires things for a specific command.
type envOptions struct {
	// quietLogs drops log output unless --log-file is set. The TUI needs
	// this because stderr writes would corrupt the alt screen.
	quietLogs bool

	// configure edits the engine configuration before validation.
	configure func(*simulation.Config)
}

// newEnv reads the persistent flags and builds the logger, catalog and
// engine.
func newEnv(cmd *cobra.Command, opts envOptions) (*env, error) {
	flags := cmd.Flags()
	level, _ := flags.GetString("log-level")
	file, _ := flags.GetString("log-file")
	jsonLogs, _ := flags.GetBool("log-json")

	logOpts := logging.Options{Level: level, File: file, JSON: jsonLogs, Output: cmd.ErrOrStderr()}
	if opts.quietLogs && file == "" {
		logOpts.Output = io.Discard
	}
	logger, closeLog, err := logging.New(logOpts)
	if err != nil {
		return nil, err
	}
	e := &env{logger: logger, close: closeLog}

	catalog, err := loadCatalog(cmd, logger)
	if err != nil {
		closeLog()
		return nil, err
	}
	e.catalog = catalog

	cfg := simulation.DefaultConfig()
	scoreSet, _ := flags.GetString("score-set")
	if cfg.ScoreSet, err = simulation.ParseScoreSet(scoreSet); err != nil {
		closeLog()
		return nil, err
	}
	if opts.configure != nil {
		opts.configure(&cfg)
	}

	e.seed, _ = flags.GetUint64("seed")
	if e.seed == 0 {
		e.seed = rand.Uint64()
	}
	engine, err := simulation.New(cfg, rand.New(rand.NewPCG(e.seed, e.seed)))
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("create engine: %w", err)
	}
	e.cfg = cfg
	e.engine = engine

	logger.WithFields(logrus.Fields{
		"seed":      e.seed,
		"domain":    fmt.Sprintf("[%g,%g)", cfg.Domain.Lo, cfg.Domain.Hi),
		"cap":       cfg.MaxStackHeight,
		"score_set": cfg.ScoreSet.String(),
		"scenarios": catalog.Len(),
	}).Debug("environment ready")
	return e, nil
}

// loadCatalog merges the --scenarios file, if any, over the built-ins.
func loadCatalog(cmd *cobra.Command, logger logrus.FieldLogger) (*scenario.Catalog, error) {
	path, _ := cmd.Flags().GetString("scenarios")
	if path == "" {
		return scenario.NewCatalog(scenario.Builtin()), nil
	}
	extra, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}
	logger.WithFields(logrus.Fields{"file": path, "count": len(extra)}).Info("loaded scenario file")
	return scenario.NewCatalog(scenario.Builtin(), extra), nil
}
