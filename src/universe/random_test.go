package universe

import (
	"testing"

	"github.com/pkg/errors"
)

func TestRandomDeterministic(t *testing.T) {
	a, err := Random(40, 15, 42, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Random(40, 15, 42, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Error("same seed and density produced different grids")
	}
}

func TestRandomSeedChangesGrid(t *testing.T) {
	a, _ := Random(40, 15, 1, 0.5)
	b, _ := Random(40, 15, 2, 0.5)
	if a.Equal(b) {
		t.Error("different seeds produced identical grids")
	}
}

func TestRandomDensityExtremes(t *testing.T) {
	empty, err := Random(10, 10, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if n := empty.AliveCells(); n != 0 {
		t.Errorf("density 0: %v alive cells, want 0", n)
	}
	full, err := Random(10, 10, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if n := full.AliveCells(); n != 100 {
		t.Errorf("density 1: %v alive cells, want 100", n)
	}
}

func TestRandomInvalidDensity(t *testing.T) {
	for _, d := range []float64{-0.1, 1.1, 2} {
		if _, err := Random(10, 10, 1, d); !errors.Is(err, ErrInvalidDensity) {
			t.Errorf("density %v: err = %v, want ErrInvalidDensity", d, err)
		}
	}
}
