package universe

import (
	"testing"

	"github.com/pkg/errors"
)

var gliderCells = [][]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}

func aliveSet(g *Grid) map[[2]int]bool {
	set := map[[2]int]bool{}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.IsAlive(x, y) {
				set[[2]int{x, y}] = true
			}
		}
	}
	return set
}

func sameAliveSet(t *testing.T, g *Grid, want [][]int) {
	t.Helper()
	got := aliveSet(g)
	if len(got) != len(want) {
		t.Fatalf("alive set size %v, want %v (got %v)", len(got), len(want), got)
	}
	for _, v := range want {
		if !got[[2]int{v[0], v[1]}] {
			t.Fatalf("cell (%v,%v) should be alive, got %v", v[0], v[1], got)
		}
	}
}

func translate(vc [][]int, dx int, dy int) [][]int {
	out := make([][]int, 0, len(vc))
	for _, v := range vc {
		out = append(out, []int{v[0] + dx, v[1] + dy})
	}
	return out
}

func TestNewGridInvalidDimensions(t *testing.T) {
	for _, d := range [][]int{{0, 5}, {5, 0}, {0, 0}, {-1, 3}} {
		if _, err := NewGrid(d[0], d[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewGrid(%v, %v): err = %v, want ErrInvalidDimensions", d[0], d[1], err)
		}
	}
	if g, err := NewGrid(3, 2); err != nil || g.Width() != 3 || g.Height() != 2 {
		t.Errorf("NewGrid(3, 2) = %v, %v", g, err)
	}
}

func TestFromAliveSetOutOfBounds(t *testing.T) {
	for _, v := range [][]int{{3, 0}, {0, 3}, {-1, 0}, {0, -1}} {
		if _, err := FromAliveSet(3, 3, [][]int{v}); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("FromAliveSet with cell %v: err = %v, want ErrOutOfBounds", v, err)
		}
	}
}

func TestIsAliveOutsideGridReadsDead(t *testing.T) {
	g, err := FromAliveSet(2, 2, [][]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}})
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range [][]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {100, 100}} {
		if g.IsAlive(v[0], v[1]) {
			t.Errorf("IsAlive(%v, %v) = true outside the grid", v[0], v[1])
		}
	}
}

func TestStepStillLife(t *testing.T) {
	//a 2x2 block is fixed under the rule
	block := [][]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}}
	g, err := FromAliveSet(4, 4, block)
	if err != nil {
		t.Fatal(err)
	}
	sameAliveSet(t, g.Step(), block)
}

func TestStepDoesNotMutateReceiver(t *testing.T) {
	g, err := FromAliveSet(8, 8, translate(gliderCells, 2, 2))
	if err != nil {
		t.Fatal(err)
	}
	before := aliveSet(g)
	_ = g.Step()
	after := aliveSet(g)
	if len(before) != len(after) {
		t.Fatalf("Step mutated the receiver: %v -> %v", before, after)
	}
	for k := range before {
		if !after[k] {
			t.Fatalf("Step mutated the receiver at %v", k)
		}
	}
}

func TestStepGliderPeriod(t *testing.T) {
	//away from the borders a glider returns to its shape translated
	//one cell diagonally after 4 generations
	start := translate(gliderCells, 2, 2)
	g, err := FromAliveSet(8, 8, start)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		g = g.Step()
	}
	sameAliveSet(t, g, translate(start, 1, 1))
}

func TestStepGliderAtBoundedEdge(t *testing.T) {
	//a glider filling a 3x3 grid loses the cells that would be born
	//outside, neighbors beyond the border count as dead
	g, err := FromAliveSet(3, 3, gliderCells)
	if err != nil {
		t.Fatal(err)
	}
	sameAliveSet(t, g.Step(), [][]int{{0, 1}, {2, 1}, {1, 2}, {2, 2}})
}

func TestStepParallelMatchesStep(t *testing.T) {
	g, err := Random(64, 48, 7, 0.35)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		a := g.Step()
		b := g.StepParallel()
		if !a.Equal(b) {
			t.Fatalf("StepParallel diverged from Step at generation %v", i+1)
		}
		g = a
	}
}

func TestEqual(t *testing.T) {
	a, _ := FromAliveSet(3, 3, [][]int{{1, 1}})
	b, _ := FromAliveSet(3, 3, [][]int{{1, 1}})
	c, _ := FromAliveSet(3, 3, [][]int{{0, 1}})
	d, _ := NewGrid(3, 4)
	if !a.Equal(b) {
		t.Error("identical grids reported unequal")
	}
	if a.Equal(c) {
		t.Error("different alive sets reported equal")
	}
	if a.Equal(d) {
		t.Error("different dimensions reported equal")
	}
}
