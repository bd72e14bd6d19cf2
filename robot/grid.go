package robot

import (
	"fmt"
)

// Point is a cell coordinate; x grows right, y grows down.
type Point struct {
	X int
	Y int
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("[%d, %d]", p.X, p.Y)
}

// Cell state.
type Cell struct {
	Color Color
	Temp  int64
}

// Grid is the robot's world. Cells not set explicitly are unpainted, at
// temperature 0.
type Grid struct {
	Width  int
	Height int
	Finish Point

	blocked map[Point]bool
	cells   map[Point]Cell
}

// NewGrid returns an empty grid; sizes below 1 become 1.
func NewGrid(width, height int) (grid *Grid) {
	grid = &Grid{
		Width:   max(width, 1),
		Height:  max(height, 1),
		blocked: make(map[Point]bool),
		cells:   make(map[Point]Cell),
	}
	grid.Finish = Point{X: grid.Width - 1, Y: grid.Height - 1}

	return
}

// Inside reports whether p is on the grid.
func (grid *Grid) Inside(p Point) bool {
	return p.X >= 0 && p.X < grid.Width && p.Y >= 0 && p.Y < grid.Height
}

// Clamp moves p to the nearest cell on the grid.
func (grid *Grid) Clamp(p Point) Point {
	return Point{
		X: min(max(p.X, 0), grid.Width-1),
		Y: min(max(p.Y, 0), grid.Height-1),
	}
}

// Block marks a cell as blocked. Points outside the grid are ignored.
func (grid *Grid) Block(p Point) {
	if grid.Inside(p) {
		grid.blocked[p] = true
	}
}

// Blocked reports whether p is blocked or outside the grid.
func (grid *Grid) Blocked(p Point) bool {
	return !grid.Inside(p) || grid.blocked[p]
}

// Cell returns the state of the cell at p.
func (grid *Grid) Cell(p Point) Cell {
	return grid.cells[p]
}

// SetCell replaces the cell at p. Points outside the grid are ignored.
func (grid *Grid) SetCell(p Point, cell Cell) {
	if !grid.Inside(p) {
		return
	}
	if cell == (Cell{}) {
		delete(grid.cells, p)
		return
	}
	grid.cells[p] = cell
}

// Paint sets the color of the cell at p.
func (grid *Grid) Paint(p Point, color Color) {
	cell := grid.Cell(p)
	cell.Color = color
	grid.SetCell(p, cell)
}
