// honeyrun is a terminal arcade game: steer the bear, eat the honey and keep
// away from the bees.
//
// Usage:
//
//	honeyrun play            - Play (continue a saved game from the menu)
//	honeyrun play --new      - Skip the menu and start a fresh game
//	honeyrun scores          - Show the high-score list
//	honeyrun scores --clear  - Delete every recorded score
//	honeyrun serve           - Start SSH server for remote play
//	honeyrun config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Spawn/collision tick rate (default: 60)
//	--seed <value>        - RNG seed for reproducible lanes
//	--db <path>           - Scores database (default: ~/.honeyrun/scores.db)
//	--config <path>       - Custom config YAML
//	--save <path>         - Save file (default: from config, "gamestate")
//	--difficulty <preset> - easy, normal or hard
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/honeyrun/internal/config"
	"github.com/vovakirdan/honeyrun/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagSavePath   string
	flagDifficulty string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "honeyrun",
	Short: "Honey Run - help the bear eat honey and dodge the bees",
	Long: `Honey Run is a terminal arcade game. Move the bear around the field,
eat the honey pots drifting by and avoid the bees. Every sting costs a life.

Available commands:
  play     - Play the game (default)
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  honeyrun
  honeyrun play --new --difficulty hard
  honeyrun scores
  honeyrun serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSavePath, "save", "", "Path to the save file (overrides save_file)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	// bare "honeyrun" behaves like "honeyrun play"
	rootCmd.Flags().BoolVar(&flagNew, "new", false, "Start a new game, discarding any saved one")
	rootCmd.Flags().StringVar(&flagName, "name", "", "Name recorded with your high scores (default: login name)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file, the difficulty preset and the
// --save override.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}

	if flagSavePath != "" {
		cfg.SaveFile = flagSavePath
	}
	return cfg, nil
}

// newRand seeds from --seed, or the clock when it is 0.
func newRand() *rand.Rand {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// newLogger builds the logger for commands that own the terminal: output
// goes to ~/.honeyrun/honeyrun.log so it never tears the game screen.
// The returned func closes the log file.
func newLogger(prefix string) (*log.Logger, func()) {
	level := log.WarnLevel
	if flagVerbose {
		level = log.DebugLevel
	}

	var out io.Writer = io.Discard
	closeFn := func() {}
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".honeyrun")
		if err := os.MkdirAll(dir, 0o755); err == nil {
			f, err := os.OpenFile(filepath.Join(dir, "honeyrun.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if err == nil {
				out = f
				closeFn = func() { f.Close() }
			}
		}
	}

	return log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), closeFn
}
