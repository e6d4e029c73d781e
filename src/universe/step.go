package universe

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

//StepFunc computes the next generation of a grid
type StepFunc func(g *Grid) *Grid

//Step computes the next generation and returns it as a fresh grid
//the receiver is never modified, so the caller can keep the previous
//generation around for comparison
func (g *Grid) Step() *Grid {
	next := &Grid{width: g.width, height: g.height, cells: createCells(g.width, g.height)}
	for y := range g.cells {
		for x := range g.cells[y] {
			next.cells[y][x] = Cell(g.cellNextState(x, y))
		}
	}
	return next
}

//StepParallel computes the same next generation as Step
//the rows are split into bands, each computed by an individual goroutine
func (g *Grid) StepParallel() *Grid {
	next := &Grid{width: g.width, height: g.height, cells: createCells(g.width, g.height)}
	var (
		eg      errgroup.Group
		workers = runtime.NumCPU()
		band    = (g.height + workers - 1) / workers
	)
	for i := 0; i < workers; i++ {
		y1 := i * band
		if y1 >= g.height {
			break
		}
		y2 := y1 + band
		if y2 > g.height {
			y2 = g.height
		}
		eg.Go(func() error {
			for y := y1; y < y2; y++ {
				for x := 0; x < g.width; x++ {
					next.cells[y][x] = Cell(g.cellNextState(x, y))
				}
			}
			return nil
		})
	}
	//the workers never fail, Wait only synchronizes
	_ = eg.Wait()
	return next
}

//cellNextState calculates the next state for the cell under the B3/S23 rule
//neighbors outside the grid count as dead (bounded edges, not toroidal)
func (g *Grid) cellNextState(x int, y int) (live bool) {
	liveNeighbours := 0
	for i := -1; i < 2; i++ {
		for j := -1; j < 2; j++ {
			//skip my position
			if i == 0 && j == 0 {
				continue
			}
			nx := x + i
			ny := y + j
			//skip coordinates outside the area
			if nx < 0 || ny < 0 || nx >= g.width || ny >= g.height {
				continue
			}
			if g.cells[ny][nx] {
				liveNeighbours++
			}
		}
	}

	if liveNeighbours < 2 {
		return false
	} else if liveNeighbours > 3 {
		return false
	} else if liveNeighbours == 3 {
		return true
	} else if liveNeighbours == 2 && g.cells[y][x] {
		return true
	}

	return false
}
