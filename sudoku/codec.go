package sudoku

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lumip/satform/formula"
)

// Assumptions returns, for every filled cell of given, the literal
// asserting that cell's value — the assumption list a solver needs to
// search only for completions of the partially filled board.
func (p *Puzzle) Assumptions(given Grid) []formula.Literal {
	var lits []formula.Literal
	for y := 0; y < p.size; y++ {
		for x := 0; x < p.size; x++ {
			if given[y][x] > 0 {
				lits = append(lits, p.cells[y][x].Eq(given[y][x]))
			}
		}
	}
	return lits
}

// FormGrid decodes a model (as returned by a Synthesizer's Translate,
// or equivalently a solver's Solve) into a filled Grid. Only the
// positive "cell_y_x==v" literals are load-bearing; negative literals,
// names that are not of the "cell_..==.." shape, and cells outside this
// puzzle's board are ignored. A "cell_" name whose coordinates or value
// do not parse as integers is reported as an error.
func (p *Puzzle) FormGrid(model []string) (Grid, error) {
	grid := make(Grid, p.size)
	for y := range grid {
		grid[y] = make([]int, p.size)
	}

	for _, name := range model {
		if strings.HasPrefix(name, "-") {
			continue
		}
		row, col, value, ok, err := parseCellLiteral(name)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if row < 0 || row >= p.size || col < 0 || col >= p.size {
			continue
		}
		grid[row][col] = value
	}

	return grid, nil
}

func parseCellLiteral(name string) (row, col, value int, ok bool, err error) {
	parts := strings.SplitN(name, "==", 2)
	if len(parts) != 2 {
		return 0, 0, 0, false, nil
	}
	if !strings.HasPrefix(parts[0], "cell_") {
		return 0, 0, 0, false, nil
	}

	coords := strings.Split(strings.TrimPrefix(parts[0], "cell_"), "_")
	if len(coords) != 2 {
		return 0, 0, 0, false, fmt.Errorf("sudoku: malformed cell literal %q", name)
	}

	row, err = strconv.Atoi(coords[0])
	if err != nil {
		return 0, 0, 0, false, fmt.Errorf("sudoku: malformed cell literal %q: %w", name, err)
	}
	col, err = strconv.Atoi(coords[1])
	if err != nil {
		return 0, 0, 0, false, fmt.Errorf("sudoku: malformed cell literal %q: %w", name, err)
	}
	value, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, false, fmt.Errorf("sudoku: malformed cell literal %q: %w", name, err)
	}
	return row, col, value, true, nil
}
