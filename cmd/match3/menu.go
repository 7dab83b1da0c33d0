package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a level picker menu",
	Long: `Start in interactive menu mode.

The menu lists every campaign level with your best score, plus endless
mode. After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - Scoreboard
  Q            - Quit

Examples:
  match3 menu
  match3 menu --player alice
  match3 menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg, flagPlayer)
		if err != nil {
			return err
		}

		// Keep size changes, drop the level picked last time
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, flagPlayer, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				logger.Error("scoreboard", "error", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("creating game", "error", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, store, cfg, flagPlayer); err != nil {
			logger.Error("running game", "error", err)
		}
		cfg.Level = ""
	}
}
