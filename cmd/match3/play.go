package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

var flagEndless bool

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the game",
	Long: `Start playing the campaign from the first level, or from the given
level ID. With --endless, play one board until it runs out.

Controls:
  Arrows/WASD/hjkl - Move cursor (with a tile selected: swap that way)
  Space/Enter      - Select tile, or swap with the selected neighbor
  X                - Fire the booster under the cursor
  ?                - Show a hint
  Esc/B            - Cancel selection
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a screenshot

Difficulty options:
  easy   - Endless boards use one color fewer, campaign goals unchanged
  normal - Campaign targets up 15%, two moves fewer
  hard   - Endless boards use one color more, targets up 35%, four moves fewer
  fixed  - No color progression in endless mode

Examples:
  match3 play
  match3 play 04
  match3 play --endless --difficulty hard
  match3 play --config ./my-match3.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play endless mode instead of the campaign")
}

// terminalConfig builds a runtime config sized to the terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	cfg := terminalConfig()

	gameID := match3.CampaignID
	if flagEndless {
		gameID = match3.EndlessID
	} else if len(args) == 1 {
		if _, err := levelLoader().LoadByID(args[0]); err != nil {
			return fmt.Errorf("%w (run 'match3 levels list')", err)
		}
		cfg.Level = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, cfg, flagPlayer); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
