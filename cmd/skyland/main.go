// skyland is a one-button terminal arcade game: a creature alternates
// between eating in the sky and on the land while enemies drift past.
//
// Usage:
//
//	skyland play             - Play (default game)
//	skyland list             - List available games
//	skyland config print     - Print the default tuning as YAML
//	skyland config check <f> - Validate a tuning file
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Tuning YAML (default: search path)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file while the TUI runs
//	--mute               - Disable sound
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/skyland/internal/games/skyland"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
	flagMute     bool
)

// logger is set up by the root command before any subcommand runs.
var (
	logger  = log.New(io.Discard)
	logSink io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logSink != nil {
		logSink.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyland",
	Short: "Skyland - eat in the sky, eat on the land, don't eat the enemies",
	Long: `Skyland is a one-button arcade game for the terminal.

A creature walks back and forth across a world that flips between the
sky and the land. Hold the button to open its mouth in the sky or to
jump on the land; whatever is under it when the mouth is open or when
it lands gets eaten. Food scores a point. An enemy ends the run.

Available commands:
  play     - Play the game
  list     - Show all available games
  config   - Print or validate tuning files

Examples:
  skyland play
  skyland play --seed 42 --fps 30
  skyland play --config ./skyland.yaml --watch
  skyland config print > skyland.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default: logs discarded while playing)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogger builds the process logger from the log flags.
func setupLogger(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}

	var w io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		w, logSink = f, f
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyland",
		Level:           level,
	})
	return nil
}
