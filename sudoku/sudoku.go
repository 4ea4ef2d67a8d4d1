// Package sudoku is a worked example built on packages formula and
// intvar: it encodes classic sudoku as an integer constraint problem
// and decodes a satisfying assignment back into a grid.
package sudoku

import (
	"fmt"
	"math"

	"github.com/lumip/satform/intvar"
)

// Grid is a size x size board; 0 marks an empty cell.
type Grid [][]int

// Puzzle is a sudoku board of a given size, one IntVariable per cell
// ranging over [1, size].
type Puzzle struct {
	size  int
	block int
	cells [][]*intvar.IntVariable
}

// NewPuzzle creates a puzzle of the given size, which must be a
// perfect square (4, 9, 16, ...) so that it divides evenly into
// square blocks.
func NewPuzzle(size int) (*Puzzle, error) {
	block := int(math.Sqrt(float64(size)))
	if block*block != size {
		return nil, fmt.Errorf("sudoku: size %d is not a perfect square", size)
	}

	cells := make([][]*intvar.IntVariable, size)
	for y := 0; y < size; y++ {
		cells[y] = make([]*intvar.IntVariable, size)
		for x := 0; x < size; x++ {
			cells[y][x] = intvar.MustNew(fmt.Sprintf("cell_%d_%d", y, x), 1, size)
		}
	}

	return &Puzzle{size: size, block: block, cells: cells}, nil
}

// Size returns the puzzle's side length.
func (p *Puzzle) Size() int { return p.size }

// Cell returns the integer variable standing for the cell at (row, col).
func (p *Puzzle) Cell(row, col int) *intvar.IntVariable { return p.cells[row][col] }
