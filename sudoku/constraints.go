package sudoku

import (
	"github.com/lumip/satform/formula"
)

type coord struct{ row, col int }

// Constraints returns the full CNF for p: every cell constrained to
// exactly one value via its own domain specification, plus pairwise
// inequality between every two cells that share a row, column, or
// block.
func (p *Puzzle) Constraints() *formula.CNF {
	phi := formula.And(
		p.restrictRowsAndCols(),
		p.restrictBlocks(),
	)
	combined := formula.And(formula.ToCNF(phi), p.extractSpecs())
	return combined.(*formula.CNF)
}

func (p *Puzzle) restrictRowsAndCols() formula.Formula {
	terms := make([]formula.Formula, 0, 2*p.size)
	for i := 0; i < p.size; i++ {
		row := make([]coord, p.size)
		col := make([]coord, p.size)
		for j := 0; j < p.size; j++ {
			row[j] = coord{i, j}
			col[j] = coord{j, i}
		}
		terms = append(terms, p.createRestrictions(row), p.createRestrictions(col))
	}
	return formula.And(terms...)
}

func (p *Puzzle) restrictBlocks() formula.Formula {
	terms := make([]formula.Formula, 0, p.block*p.block)
	for bx := 0; bx < p.block; bx++ {
		for by := 0; by < p.block; by++ {
			coords := make([]coord, 0, p.size)
			for i := 0; i < p.block; i++ {
				for j := 0; j < p.block; j++ {
					coords = append(coords, coord{bx*p.block + i, by*p.block + j})
				}
			}
			terms = append(terms, p.createRestrictions(coords))
		}
	}
	return formula.And(terms...)
}

// createRestrictions asserts pairwise inequality between the cells at
// every pair of distinct coordinates in coords.
func (p *Puzzle) createRestrictions(coords []coord) formula.Formula {
	terms := make([]formula.Formula, 0)
	for i := 1; i < len(coords); i++ {
		a := p.cells[coords[i].row][coords[i].col]
		for j := 0; j < i; j++ {
			b := p.cells[coords[j].row][coords[j].col]
			terms = append(terms, formula.Not(a.EqVar(b)))
		}
	}
	return formula.And(terms...)
}

// extractSpecs conjoins every cell's own "exactly one value" domain
// specification.
func (p *Puzzle) extractSpecs() *formula.CNF {
	var acc formula.Formula = formula.NewCNF()
	for _, row := range p.cells {
		for _, cell := range row {
			acc = formula.And(acc, cell.Specification())
		}
	}
	return acc.(*formula.CNF)
}
