// Command sudoku demonstrates the full pipeline this module provides:
// integer variables with a one-hot domain encoding, combined through
// package formula's algebra, Tseytin-transformed to CNF, synthesized
// to a dense clause matrix, and handed to a real SAT solver via
// package ginisolve.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	isatty "github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lumip/satform/ginisolve"
	"github.com/lumip/satform/sudoku"
)

var defaultPuzzle = sudoku.Grid{
	{2, 0, 0, 6, 9, 0, 8, 0, 1},
	{0, 0, 0, 0, 0, 3, 6, 0, 0},
	{0, 1, 3, 8, 0, 2, 5, 4, 0},
	{7, 0, 5, 0, 8, 0, 3, 9, 6},
	{8, 3, 0, 4, 0, 0, 0, 0, 0},
	{1, 0, 6, 0, 0, 5, 0, 0, 0},
	{3, 7, 0, 9, 0, 6, 0, 1, 0},
	{0, 2, 9, 1, 0, 8, 0, 0, 0},
	{5, 6, 0, 3, 0, 0, 0, 2, 0},
}

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Solve a sudoku puzzle by reduction to SAT.",
	RunE:  runSolve,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log the encoding and solving steps")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log.SetLevel(log.DebugLevel)
	}

	puzzle, err := sudoku.NewPuzzle(len(defaultPuzzle))
	if err != nil {
		return err
	}

	printGrid("to solve", defaultPuzzle)

	log.Debug("building constraints")
	cnf := puzzle.Constraints()

	solver := ginisolve.New()
	clauses := cnf.Synthesize(solver.Synthesizer())
	solver.Assert(clauses)

	assumptions := solver.Synthesizer().Assumptions(puzzle.Assumptions(defaultPuzzle))

	log.WithField("clauses", len(clauses)).Debug("solving")
	sat, model, err := solver.Solve(assumptions)
	if err != nil {
		return err
	}
	if !sat {
		fmt.Println("unsatisfiable")
		return nil
	}

	solution, err := puzzle.FormGrid(model)
	if err != nil {
		return err
	}

	printGrid("solution", solution)
	fmt.Printf("solution is valid: %v\n", sudoku.Validate(solution))
	return nil
}

func printGrid(title string, grid sudoku.Grid) {
	heading := fmt.Sprintf("##### %s #####", title)
	if isatty.IsTerminal(os.Stdout.Fd()) {
		heading = color.CyanString(heading)
	}
	fmt.Println(heading)
	for _, row := range grid {
		for i, v := range row {
			if i > 0 {
				fmt.Print(", ")
			}
			if v == 0 {
				fmt.Print(color.New(color.Faint).Sprint("."))
			} else {
				fmt.Print(v)
			}
		}
		fmt.Println()
	}
	fmt.Println()
}
