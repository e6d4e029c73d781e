package universe

import (
	"math/rand"

	"github.com/pkg/errors"
)

//Random creates a grid populated from a seeded pseudo-random stream
//one draw is taken per cell in row-major order and the cell is alive
//when the draw falls below density
//the same width, height, seed and density always reproduce the same grid
func Random(width int, height int, seed int64, density float64) (*Grid, error) {
	if density < 0 || density > 1 {
		return nil, errors.Wrapf(ErrInvalidDensity, "%v", density)
	}
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[y][x] = Cell(rng.Float64() < density)
		}
	}
	return g, nil
}
