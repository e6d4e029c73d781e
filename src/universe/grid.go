package universe

import (
	"github.com/pkg/errors"
)

type Cell bool

//Grid is the bounded universe area where cells are living
//dimensions never change after construction and every access is range checked
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

//NewGrid creates the all-dead grid with the given dimensions
func NewGrid(width int, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "%vx%v", width, height)
	}
	return &Grid{width: width, height: height, cells: createCells(width, height)}, nil
}

//FromAliveSet creates the grid with the given cells alive and the rest dead
//vc - array of [x,y] coordinates
func FromAliveSet(width int, height int, vc [][]int) (*Grid, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	for _, v := range vc {
		if v[0] < 0 || v[0] >= width || v[1] < 0 || v[1] >= height {
			return nil, errors.Wrapf(ErrOutOfBounds, "cell (%v,%v) in a %vx%v grid", v[0], v[1], width, height)
		}
		g.cells[v[1]][v[0]] = true
	}
	return g, nil
}

//Width returns the fixed grid width
func (g *Grid) Width() int {
	return g.width
}

//Height returns the fixed grid height
func (g *Grid) Height() int {
	return g.height
}

//IsAlive reports whether the cell at x, y is alive
//coordinates outside the grid read as dead
func (g *Grid) IsAlive(x int, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return bool(g.cells[y][x])
}

//Set places the cell state at x, y, positions outside the grid are ignored
func (g *Grid) Set(x int, y int, alive bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[y][x] = Cell(alive)
}

//AliveCells calculates the count of live cells
func (g *Grid) AliveCells() int {
	alive := 0
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] {
				alive++
			}
		}
	}
	return alive
}

//Equal reports whether both grids have the same dimensions and alive set
func (g *Grid) Equal(o *Grid) bool {
	if g.width != o.width || g.height != o.height {
		return false
	}
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] != o.cells[y][x] {
				return false
			}
		}
	}
	return true
}

//createCells allocates the cell matrix backed by a single flat buffer
func createCells(width int, height int) [][]Cell {
	cells := make([][]Cell, height)
	b := make([]Cell, width*height)
	for i := range cells {
		start := width * i
		cells[i] = b[start : start+width : start+width]
	}
	return cells
}
