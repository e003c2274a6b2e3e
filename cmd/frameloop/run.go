package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	frameebiten "github.com/plus3/frameloop/backend/ebiten"
	"github.com/plus3/frameloop/backend/headless"
	"github.com/plus3/frameloop/debugui"
	"github.com/plus3/frameloop/frame"
	"github.com/plus3/frameloop/internal/config"
	"github.com/plus3/frameloop/internal/logging"
	"github.com/plus3/frameloop/scene"
)

const debugHistoryFrames = 120

func runLoop(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := applyFlags(cfg, cmd.Flags()); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()
	logger, _ = logging.WithSession(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	stats, err := execute(ctx, cfg, logger)
	if err != nil {
		logger.Error("frame loop failed", zap.Error(err))
		return err
	}

	logger.Info("frame loop finished",
		zap.Uint64("iterations", stats.Iterations),
		zap.Uint64("frames", stats.Frames),
		zap.Stringer("stopped_by", stats.StopEvent),
	)
	return nil
}

// applyFlags overrides config values with the flags set on the command line.
func applyFlags(cfg *config.Config, flags *pflag.FlagSet) error {
	if flags.Changed("variant") {
		cfg.Loop.Variant = flagVariant
	}
	if flags.Changed("tps") {
		cfg.Loop.TickRate = flagTPS
	}
	if flags.Changed("headless") {
		cfg.Loop.Headless = flagHeadless
	}
	if flags.Changed("max-frames") {
		cfg.Loop.MaxFrames = flagMaxFrames
	}
	if flags.Changed("debug-ui") {
		cfg.Loop.DebugUI = flagDebugUI
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}

// execute builds the scene and loop described by cfg and runs it to
// completion on the configured backend.
func execute(ctx context.Context, cfg *config.Config, logger *zap.Logger) (frame.Stats, error) {
	variant, err := cfg.Variant()
	if err != nil {
		return frame.Stats{}, err
	}
	s, entity, err := scene.Build(variant, cfg.SceneOptions())
	if err != nil {
		return frame.Stats{}, err
	}
	if entity != nil {
		logger.Info("entity created", zap.String("variant", string(variant)), zap.Stringer("rect", entity.Rect()))
	}

	opts := []frame.Option{
		frame.WithWindowSize(cfg.Window.Width, cfg.Window.Height),
		frame.WithLogger(logger),
	}
	if variant.Draws() {
		opts = append(opts, frame.WithScene(s))
	}

	if cfg.Loop.Headless {
		return runHeadless(ctx, cfg, logger, opts)
	}
	return runWindowed(cfg, opts)
}

func runHeadless(ctx context.Context, cfg *config.Config, logger *zap.Logger, opts []frame.Option) (frame.Stats, error) {
	if cfg.Loop.MaxFrames == 0 {
		logger.Warn("headless run without max_frames, interrupt to stop")
	}

	backend := headless.New(headless.WithMaxPolls(cfg.Loop.MaxFrames))
	loop := frame.New(backend, append(opts, frame.WithTickRate(cfg.Loop.TickRate))...)

	err := loop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	return loop.Stats(), err
}

func runWindowed(cfg *config.Config, opts []frame.Option) (frame.Stats, error) {
	backend := frameebiten.NewBackend(cfg.Window.Title, cfg.Loop.TickRate)
	loop := frame.New(backend, opts...)

	var overlay frameebiten.Overlay
	if cfg.Loop.DebugUI {
		overlay = debugui.NewOverlay(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height, debugHistoryFrames)
	}

	err := frameebiten.Run(loop, backend, overlay)
	return loop.Stats(), err
}
