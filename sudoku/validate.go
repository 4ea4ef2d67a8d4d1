package sudoku

// Validate reports whether grid is a complete, correct solution: every
// row, column, and block contains each value from 1 to len(grid)
// exactly once.
func Validate(grid Grid) bool {
	size := len(grid)
	block := 1
	for block*block < size {
		block++
	}
	if block*block != size {
		return false
	}

	onceEach := func(coords []coord) bool {
		seen := make([]int, size)
		for _, c := range coords {
			v := grid[c.row][c.col]
			if v < 1 || v > size {
				return false
			}
			seen[v-1]++
		}
		for _, n := range seen {
			if n != 1 {
				return false
			}
		}
		return true
	}

	for i := 0; i < size; i++ {
		row := make([]coord, size)
		col := make([]coord, size)
		for j := 0; j < size; j++ {
			row[j] = coord{i, j}
			col[j] = coord{j, i}
		}
		if !onceEach(row) || !onceEach(col) {
			return false
		}
	}

	for bx := 0; bx < block; bx++ {
		for by := 0; by < block; by++ {
			coords := make([]coord, 0, size)
			for i := 0; i < block; i++ {
				for j := 0; j < block; j++ {
					coords = append(coords, coord{bx*block + i, by*block + j})
				}
			}
			if !onceEach(coords) {
				return false
			}
		}
	}

	return true
}

// SameAs reports whether a and b hold identical values cell for cell.
func SameAs(a, b Grid) bool {
	if len(a) != len(b) {
		return false
	}
	for y := range a {
		if len(a[y]) != len(b[y]) {
			return false
		}
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				return false
			}
		}
	}
	return true
}
