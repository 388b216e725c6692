package main

import (
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/honeyrun/internal/core"
	"github.com/vovakirdan/honeyrun/internal/engine"
	"github.com/vovakirdan/honeyrun/internal/platform/tui"
	"github.com/vovakirdan/honeyrun/internal/storage"
)

var (
	flagNew  bool
	flagName string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game. When a saved game exists the menu offers to continue it.

Controls:
  Arrows/WASD  - Move the bear
  P/Esc        - Pause / resume
  N            - New game
  Tab          - High scores
  Q/Ctrl+C     - Save and quit

Difficulty options:
  easy   - 5 lives, slower bees and honey
  normal - the default
  hard   - 2 lives, faster bees and honey

Examples:
  honeyrun play
  honeyrun play --new
  honeyrun play --difficulty easy
  honeyrun play --config ./my-honeyrun.yaml --save ./slot1`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNew, "new", false, "Start a new game, discarding any saved one")
	playCmd.Flags().StringVar(&flagName, "name", "", "Name recorded with your high scores (default: login name)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog := newLogger("honeyrun")
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be kept", "path", flagDBPath, "error", err)
		cmd.PrintErrf("Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	game := engine.New(cfg,
		engine.WithLogger(logger.WithPrefix("engine")),
		engine.WithRand(newRand()),
	)
	defer game.Shutdown()

	return tui.Run(tui.Options{
		Game:  game,
		Store: store,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
		Player: playerName(),
		Logger: logger,
		Fresh:  flagNew,
	})
}

func playerName() string {
	if flagName != "" {
		return flagName
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "bear"
}
