// match3 is a Match-3 puzzle game for the terminal.
//
// Usage:
//
//	match3 play [level]      - Play the campaign (or endless with --endless)
//	match3 menu              - Pick a level interactively
//	match3 scores [game]     - Show high scores and level progress
//	match3 levels list       - List campaign levels
//	match3 levels show <id>  - Print a level and a sample board
//	match3 levels check      - Validate every level file
//	match3 serve             - Start SSH server for remote play
//	match3 web               - Start HTTP/WebSocket server
//	match3 simulate [level]  - Autoplay a board headlessly
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.match3/scores.db)
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--levels <dir>        - Load levels from a directory instead of the built-in campaign
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevels     string
	flagPlayer     string
	flagVerbose    bool

	// gameConfig is the loaded configuration, set in setup.
	gameConfig config.Match3Config

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "match3"})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match-3 - swap tiles, make runs, clear the board",
	Long: `Match-3 is a terminal puzzle game. Swap neighboring tiles to line up
three or more of a color; longer runs and crosses leave boosters behind.

Available commands:
  play      - Play the campaign or endless mode
  menu      - Interactive level picker
  scores    - View high scores and level progress
  levels    - List, show and check level files
  serve     - Start SSH server for remote play
  web       - Start HTTP/WebSocket server
  simulate  - Autoplay a board and print the result

Examples:
  match3 play
  match3 play 03 --difficulty hard
  match3 play --endless
  match3 levels check --levels ./my-levels
  match3 serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.match3/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of level files (default: built-in campaign)")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", storage.LocalPlayer, "Player name for saved scores")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(simulateCmd)
}

// setup loads the configuration and level source shared by every command.
func setup(_ *cobra.Command, _ []string) error {
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.LoadMatch3(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyPreset(&cfg, preset)
	}
	gameConfig = cfg
	match3.Configure(cfg)
	logger.Debug("config loaded", "path", flagConfig, "difficulty", flagDifficulty,
		"size", cfg.Board.Size, "colors", cfg.Board.Colors)

	if flagLevels != "" {
		match3.SetLevelLoader(levels.NewLoader(flagLevels))
		logger.Debug("using level directory", "dir", flagLevels)
	}
	return nil
}

// levelLoader returns the level source selected by --levels.
func levelLoader() *levels.Loader {
	if flagLevels != "" {
		return levels.NewLoader(flagLevels)
	}
	return levels.Campaign()
}

// openStore opens the scores database, warning and returning nil on failure
// so play can continue without saving.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
