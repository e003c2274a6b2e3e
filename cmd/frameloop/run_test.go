package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/plus3/frameloop/event"
	"github.com/plus3/frameloop/frame"
	"github.com/plus3/frameloop/internal/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func headlessConfig(variant string, maxFrames int) *config.Config {
	cfg := config.Default()
	cfg.Loop.Variant = variant
	cfg.Loop.Headless = true
	cfg.Loop.MaxFrames = maxFrames
	cfg.Loop.TickRate = 0
	return cfg
}

func TestExecuteHeadless(t *testing.T) {
	tests := []struct {
		variant string
		frames  uint64
	}{
		{"bare", 0},
		{"rect", 4},
		{"player", 4},
	}

	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			stats, err := execute(context.Background(), headlessConfig(tt.variant, 5), zap.NewNop())
			require.NoError(t, err)

			assert.Equal(t, frame.StateStopped, stats.State)
			assert.Equal(t, uint64(5), stats.Iterations)
			assert.Equal(t, tt.frames, stats.Frames)
			assert.Equal(t, event.Quit(), stats.StopEvent)
		})
	}
}

func TestExecuteLogsEntityRect(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	_, err := execute(context.Background(), headlessConfig("player", 1), zap.New(core))
	require.NoError(t, err)

	entries := logs.FilterMessage("entity created").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "<rect(0, 0, 75, 25)>", entries[0].ContextMap()["rect"])
}

func TestExecuteCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := execute(ctx, headlessConfig("rect", 0), zap.NewNop())
	require.NoError(t, err, "interrupt is a clean exit")
	assert.Equal(t, frame.StateRunning, stats.State)
}

func TestApplyFlags(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringVar(&flagVariant, "variant", "", "")
	flags.IntVar(&flagTPS, "tps", 60, "")
	flags.BoolVar(&flagHeadless, "headless", false, "")
	flags.IntVar(&flagMaxFrames, "max-frames", 0, "")
	flags.BoolVar(&flagDebugUI, "debug-ui", false, "")
	flags.StringVar(&flagLogLevel, "log-level", "", "")

	require.NoError(t, flags.Parse([]string{"--variant", "bare", "--tps", "0", "--headless", "--log-level", "debug"}))

	cfg := config.Default()
	require.NoError(t, applyFlags(cfg, flags))

	assert.Equal(t, "bare", cfg.Loop.Variant)
	assert.Equal(t, 0, cfg.Loop.TickRate)
	assert.True(t, cfg.Loop.Headless)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 0, cfg.Loop.MaxFrames, "unset flags keep config values")
	assert.False(t, cfg.Loop.DebugUI)

	require.NoError(t, flags.Parse([]string{"--variant", "sprite"}))
	assert.Error(t, applyFlags(cfg, flags))
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "frameloop "+version+"\n", out.String())
}
