// Command cubesolve reads six photos of a Rubik's cube, reconstructs its
// state and prints the moves that solve it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"svw.info/cube/internal/classifier"
	"svw.info/cube/internal/config"
	"svw.info/cube/internal/domain"
	"svw.info/cube/internal/engine"
	"svw.info/cube/internal/explain"
	"svw.info/cube/internal/infrastructure/storage"
	"svw.info/cube/internal/ports"
	"svw.info/cube/internal/sampler"
	"svw.info/cube/internal/usecase"
	"svw.info/cube/internal/validator"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// app is the state shared by all subcommands once the root has run.
type app struct {
	cfgPath string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "cubesolve",
		Short: "Solve a Rubik's cube from six face photos",
		Long: `cubesolve samples a 3x3 grid of stickers from one photo per face,
assembles the 54 facelets, checks that they could come from a real cube
and asks an external solving engine for a move sequence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger, err = buildLogger(cfg.LogLevel, a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "cubesolve.yaml", "Path to the YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newServeCmd(a),
		newSolveCmd(a),
		newValidateCmd(a),
		newExplainCmd(a),
		newRenderCmd(a),
		newHistoryCmd(a),
		newVersionCmd(),
	)
	return root
}

func buildLogger(level string, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

// storeMode says how a subcommand depends on the attempt store.
type storeMode int

const (
	// noStore skips opening the store; nothing is recorded.
	noStore storeMode = iota
	// bestEffort opens the store but runs without it when that fails.
	bestEffort
	// requireStore fails when the store cannot be opened.
	requireStore
)

// service wires the pipeline from the loaded config. The returned close
// func releases the attempt store and is never nil.
func (a *app) service(mode storeMode) (*usecase.Service, func() error, error) {
	nop := func() error { return nil }
	smp, err := sampler.New(classifier.NewNearest(), a.cfg.Sampler)
	if err != nil {
		return nil, nop, err
	}
	eng := engine.NewCommand(a.cfg.Engine.Command, a.cfg.Engine.Args, a.cfg.Engine.Env, a.cfg.EngineTimeout(), a.logger)

	var st ports.Storage
	closeStore := nop
	if mode != noStore {
		st, closeStore, err = storage.Open(a.cfg.Storage.Driver, a.cfg.Storage.Path)
		if err != nil {
			if mode == requireStore {
				return nil, nop, err
			}
			a.logger.Warn("attempt store unavailable, not recording",
				zap.String("driver", a.cfg.Storage.Driver),
				zap.String("path", a.cfg.Storage.Path),
				zap.Error(err),
			)
			st, closeStore = storage.Discard{}, nop
		}
	}
	svc := usecase.NewService(smp, validator.New(), eng, explain.New(), st, a.logger)
	return svc, closeStore, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// The root pre-run loads config; version must work without one.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "cubesolve", version)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", domain.KindOf(err), err)
		os.Exit(1)
	}
}
