// frameloop opens an 800x600 window and runs a minimal frame loop until
// escape is pressed or the window is closed.
//
// Usage:
//
//	frameloop [run]          - Open the window and run the loop
//	frameloop version        - Print the version
//
// Flags:
//
//	--config <path>     - YAML or TOML config file
//	--variant <name>    - bare, rect or player
//	--tps <rate>        - Iterations per second, 0 for unbounded
//	--headless          - Run without a window
//	--max-frames <n>    - Stop a headless run after n iterations
//	--debug-ui          - Show the loop stats overlay
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	flagConfig    string
	flagVariant   string
	flagTPS       int
	flagHeadless  bool
	flagMaxFrames int
	flagDebugUI   bool
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frameloop",
	Short: "Minimal window and frame loop",
	Long: `frameloop opens a window, drains its event queue every frame and
draws a single rectangle until Escape is pressed or the window is closed.

Variants:
  bare    - Poll events only, nothing is drawn
  rect    - Draw a 50x50 white box
  player  - Draw a 75x25 white player

Examples:
  frameloop
  frameloop run --variant rect
  frameloop run --tps 0
  frameloop run --headless --max-frames 600
  frameloop run --config ./frameloop.toml --debug-ui`,
	SilenceUsage: true,
	RunE:         runLoop,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the window and run the frame loop",
	Args:  cobra.NoArgs,
	RunE:  runLoop,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "frameloop", version)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	flags.StringVar(&flagVariant, "variant", "", "Loop variant: bare, rect, player")
	flags.IntVar(&flagTPS, "tps", 60, "Iterations per second (0 = unbounded)")
	flags.BoolVar(&flagHeadless, "headless", false, "Run without opening a window")
	flags.IntVar(&flagMaxFrames, "max-frames", 0, "Stop a headless run after this many iterations (0 = no limit)")
	flags.BoolVar(&flagDebugUI, "debug-ui", false, "Show the loop stats overlay")
	flags.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}
