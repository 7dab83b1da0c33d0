package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

var (
	flagSimMoves int
	flagSimShow  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [level]",
	Short: "Autoplay a board with hints and print the result",
	Long: `Play a board without a terminal UI by always taking the first hint.
Useful for checking that a level is winnable and for reproducing a board
from a seed.

Without a level ID the endless board from the config is used.

Examples:
  match3 simulate 01 --seed 7
  match3 simulate --moves 100 --show -v`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimMoves, "moves", 50, "Maximum moves to play")
	simulateCmd.Flags().BoolVar(&flagSimShow, "show", false, "Print the board after every move")
}

func runSimulate(_ *cobra.Command, args []string) error {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	src := core.NewSource(seed)

	var (
		board  *core.Board
		err    error
		target int
		budget = flagSimMoves
		name   = "endless"
	)
	if len(args) == 1 {
		lvl, loadErr := levelLoader().LoadByID(args[0])
		if loadErr != nil {
			return loadErr
		}
		board, err = lvl.NewBoard(src)
		target = lvl.Target
		if lvl.Moves > 0 && lvl.Moves < budget {
			budget = lvl.Moves
		}
		name = fmt.Sprintf("%s (%s)", lvl.ID, lvl.Name)
	} else {
		board, err = core.NewBoard(core.LevelConfig{
			Size:   gameConfig.Board.Size,
			Colors: gameConfig.Board.Colors,
		}, src)
	}
	if err != nil {
		return err
	}

	logger.Info("simulating", "board", name, "seed", seed, "moves", budget, "target", target)
	fmt.Print(core.RenderASCII(board))
	fmt.Println()

	score, played, reshuffles := 0, 0, 0
	for played < budget {
		move, ok := board.Hint()
		if !ok {
			if !gameConfig.Play.ReseedOnDead || reshuffles >= 10 {
				logger.Warn("no moves left", "after", played)
				break
			}
			board.Reseed()
			reshuffles++
			logger.Debug("reshuffled", "after", played)
			continue
		}

		out := board.ApplyMove(move.From, move.To)
		if !out.Applied {
			return fmt.Errorf("hint %v was rejected", move)
		}
		played++
		points := match3.Score(out, gameConfig.Scoring)
		score += points
		logger.Debug("move", "n", played, "move", move, "waves", len(out.Resolution.Waves),
			"cleared", out.Resolution.Cleared(), "points", points, "score", score)

		if flagSimShow {
			fmt.Print(core.RenderASCII(board))
			fmt.Println()
		}
		if target > 0 && score >= target {
			break
		}
	}

	fmt.Print(core.RenderASCII(board))
	fmt.Println()
	fmt.Printf("Moves played: %d\n", played)
	fmt.Printf("Score: %d\n", score)
	if target > 0 {
		if score >= target {
			fmt.Printf("Target %d reached\n", target)
		} else {
			fmt.Printf("Target %d missed by %d\n", target, target-score)
		}
	}
	return nil
}
