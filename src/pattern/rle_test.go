package pattern

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestParseRLEGlider(t *testing.T) {
	src := "#C canonical glider\nx = 3, y = 3, rule = B3/S23\nbob$2bo$3o!\n"
	g, err := ParseRLE(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if g.Width() != 3 || g.Height() != 3 {
		t.Fatalf("dimensions %vx%v, want 3x3", g.Width(), g.Height())
	}
	sameAliveSet(t, g, [][]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}})
}

func TestParseRLEHeaderless(t *testing.T) {
	g, err := ParseRLE(strings.NewReader("bob$2bo$3o!"))
	if err != nil {
		t.Fatal(err)
	}
	sameAliveSet(t, g, [][]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}})
}

func TestParseRLEBlock(t *testing.T) {
	g, err := ParseRLE(strings.NewReader("2o$2o!"))
	if err != nil {
		t.Fatal(err)
	}
	if g.Width() != 2 || g.Height() != 2 {
		t.Fatalf("dimensions %vx%v, want 2x2", g.Width(), g.Height())
	}
	if g.AliveCells() != 4 {
		t.Fatalf("alive cells %v, want 4", g.AliveCells())
	}
}

func TestParseRLEBlankRowRun(t *testing.T) {
	//a repeated $ inserts blank rows
	g, err := ParseRLE(strings.NewReader("3o2$3o!"))
	if err != nil {
		t.Fatal(err)
	}
	if g.Width() != 3 || g.Height() != 3 {
		t.Fatalf("dimensions %vx%v, want 3x3", g.Width(), g.Height())
	}
	sameAliveSet(t, g, [][]int{{0, 0}, {1, 0}, {2, 0}, {0, 2}, {1, 2}, {2, 2}})
}

func TestParseRLEEmbeddedWhitespace(t *testing.T) {
	//whitespace is ignored, even inside a repeat factor
	g, err := ParseRLE(strings.NewReader("2 o $ 2\no!"))
	if err != nil {
		t.Fatal(err)
	}
	if g.AliveCells() != 4 {
		t.Fatalf("alive cells %v, want 4", g.AliveCells())
	}
}

func TestParseRLEMissingTerminator(t *testing.T) {
	//end of input flushes the pattern like '!'
	g, err := ParseRLE(strings.NewReader("3o"))
	if err != nil {
		t.Fatal(err)
	}
	if g.Width() != 3 || g.Height() != 1 {
		t.Fatalf("dimensions %vx%v, want 3x1", g.Width(), g.Height())
	}
}

func TestParseRLEErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"empty input", "", ErrEmptyPattern},
		{"terminator only", "!", ErrEmptyPattern},
		{"comments only", "#C nothing here\n", ErrEmptyPattern},
		{"unknown symbol", "3z!", ErrUnknownSymbol},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ParseRLE(strings.NewReader(c.src)); !errors.Is(err, c.want) {
				t.Errorf("ParseRLE(%q): err = %v, want %v", c.src, err, c.want)
			}
		})
	}
}

func TestRLEToPlaintext(t *testing.T) {
	g, err := ParseRLE(strings.NewReader("x = 3, y = 3\nbob$2bo$3o!"))
	if err != nil {
		t.Fatal(err)
	}
	if got := Write(g); got != gliderText {
		t.Errorf("converted plaintext %q, want %q", got, gliderText)
	}
}
