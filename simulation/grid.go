package simulation

import (
	"iter"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Grid buckets particle indices into square cells so neighbour searches only
// touch the 3x3 block around a cell. Cells are stored row-major.
type Grid struct {
	cellSize      float64
	width, height float64
	cols, rows    int
	cells         [][]int
}

// NewGrid creates an empty grid with the given cell size
func NewGrid(cellSize float64) *Grid {
	return &Grid{cellSize: cellSize}
}

// Dims returns the number of columns and rows
func (g *Grid) Dims() (cols, rows int) {
	return g.cols, g.rows
}

// CellSize returns the edge length of one cell
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// Rebuild clears every cell and buckets each particle by its position.
// The cell layout is resized when the banner dimensions change.
func (g *Grid) Rebuild(particles []Particle, width, height, cellSize float64) {
	cols := max(1, int(math.Ceil(width/cellSize)))
	rows := max(1, int(math.Ceil(height/cellSize)))

	if cols != g.cols || rows != g.rows || cellSize != g.cellSize {
		g.cols, g.rows, g.cellSize = cols, rows, cellSize
		g.cells = make([][]int, cols*rows)
	} else {
		for i := range g.cells {
			g.cells[i] = g.cells[i][:0]
		}
	}
	g.width, g.height = width, height

	for i := range particles {
		col, row := g.cellOf(particles[i].Pos)
		idx := row*g.cols + col
		g.cells[idx] = append(g.cells[idx], i)
	}
}

// cellOf clamps pos into the banner before bucketing, so particles that are
// mid-wrap still land in an edge cell.
func (g *Grid) cellOf(pos r2.Vec) (col, row int) {
	x := math.Max(0, math.Min(pos.X, g.width-1))
	y := math.Max(0, math.Min(pos.Y, g.height-1))
	col = min(int(x/g.cellSize), g.cols-1)
	row = min(int(y/g.cellSize), g.rows-1)
	return max(col, 0), max(row, 0)
}

// Cell returns the particle indices bucketed at (col, row). Out of range
// cells are empty.
func (g *Grid) Cell(col, row int) []int {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return nil
	}
	idx := row*g.cols + col
	if idx >= len(g.cells) {
		return nil
	}
	return g.cells[idx]
}

// Neighbors yields every particle index in the 3x3 block of cells centred
// on the cell containing pos.
func (g *Grid) Neighbors(pos r2.Vec) iter.Seq[int] {
	return func(yield func(int) bool) {
		if g.cols == 0 || g.rows == 0 {
			return
		}
		col, row := g.cellOf(pos)
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				for _, i := range g.Cell(col+dc, row+dr) {
					if !yield(i) {
						return
					}
				}
			}
		}
	}
}
