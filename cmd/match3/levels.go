package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Inspect level files",
	Long: `List, show and validate campaign levels.

Levels come from the built-in campaign unless --levels points at a
directory of .yaml/.yml files.

Examples:
  match3 levels list
  match3 levels show 02
  match3 levels check --levels ./my-levels`,
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all levels",
	Run:   runLevelsList,
}

var levelsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a level definition and a sample board",
	Args:  cobra.ExactArgs(1),
	Run:   runLevelsShow,
}

var levelsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate every level file",
	Long: `Load every level file and report the ones that fail to parse or
validate. Exits with status 1 if any file is invalid.`,
	Run: runLevelsCheck,
}

func init() {
	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsShowCmd)
	levelsCmd.AddCommand(levelsCheckCmd)
}

func runLevelsList(_ *cobra.Command, _ []string) {
	lvls, err := levelLoader().LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	if len(lvls) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %-20s  %-5s  %-6s  %-6s  %s\n", maxIDLen, "ID", "Name", "Size", "Colors", "Moves", "Target")
	fmt.Printf("  %-*s  %-20s  %-5s  %-6s  %-6s  %s\n", maxIDLen, "--", "----", "----", "------", "-----", "------")
	for _, l := range lvls {
		moves := "-"
		if l.Moves > 0 {
			moves = fmt.Sprint(l.Moves)
		}
		fmt.Printf("  %-*s  %-20s  %-5d  %-6d  %-6s  %d\n",
			maxIDLen, l.ID, l.Name, l.Config.Size, l.Config.Colors, moves, l.Target)
	}

	fmt.Println()
	fmt.Println("Run 'match3 play <id>' to play a level.")
}

func runLevelsShow(_ *cobra.Command, args []string) {
	lvl, err := levelLoader().LoadByID(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := lvl.YAML()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding level: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
	fmt.Println()

	fmt.Println("Layout:")
	for _, row := range lvl.Map() {
		fmt.Printf("  %s\n", row)
	}
	fmt.Println()

	board, err := lvl.NewBoard(core.NewSource(flagSeed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building board: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Sample board (seed %d):\n", flagSeed)
	fmt.Print(core.RenderASCII(board))
}

func runLevelsCheck(_ *cobra.Command, _ []string) {
	loader := levelLoader()
	lvls, failures, err := loader.Check()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning %s: %v\n", loader.Root(), err)
		os.Exit(1)
	}

	for _, l := range lvls {
		fmt.Printf("  ok    %s  %s\n", l.ID, l.Name)
	}
	for _, f := range failures {
		fmt.Printf("  FAIL  %v\n", f)
	}

	fmt.Println()
	fmt.Printf("%d valid, %d invalid\n", len(lvls), len(failures))
	if len(failures) > 0 {
		os.Exit(1)
	}
}
