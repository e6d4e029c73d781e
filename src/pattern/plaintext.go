//Package pattern reads and writes Life cell patterns
//the plaintext format: optional leading '!' comment lines, then rows of
//'.' (dead) and 'O' (alive) characters, ragged rows padded with dead
//cells on the right
package pattern

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"golife/src/universe"
)

const (
	DeadChar    = '.'
	AliveChar   = 'O'
	CommentChar = '!'
)

var (
	ErrMalformedHeader = errors.New("pattern: comment line after pattern rows")
	ErrUnknownSymbol   = errors.New("pattern: unrecognized symbol")
	ErrEmptyPattern    = errors.New("pattern: no pattern rows")
)

//Parse converts a plaintext pattern source into a grid sized exactly to
//the parsed width and height
//the width is the longest row, blank lines are ignored
func Parse(src string) (*universe.Grid, error) {
	var rows []string
	width := 0
	for n, line := range strings.Split(src, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			continue
		}
		if line[0] == CommentChar {
			//comments are only allowed before the pattern
			if len(rows) > 0 {
				return nil, errors.Wrapf(ErrMalformedHeader, "line %v", n+1)
			}
			continue
		}
		for i, c := range line {
			switch c {
			case DeadChar, AliveChar, ' ', '\t':
			default:
				return nil, errors.Wrapf(ErrUnknownSymbol, "%q at line %v, column %v", c, n+1, i+1)
			}
		}
		if len(line) > width {
			width = len(line)
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyPattern
	}

	var vc [][]int
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if row[x] == AliveChar {
				vc = append(vc, []int{x, y})
			}
		}
	}
	return universe.FromAliveSet(width, len(rows), vc)
}

//ParseReader parses a plaintext pattern from r
func ParseReader(r io.Reader) (*universe.Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "pattern: read input")
	}
	return Parse(string(data))
}

//ParseFile parses the plaintext pattern file at path
func ParseFile(path string) (*universe.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "pattern: read %v", path)
	}
	return Parse(string(data))
}

//Write serializes the grid back to the plaintext format accepted by Parse
//parsing the result reproduces the identical alive set
func Write(g *universe.Grid) string {
	var b strings.Builder
	b.Grow((g.Width() + 1) * g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.IsAlive(x, y) {
				b.WriteByte(AliveChar)
			} else {
				b.WriteByte(DeadChar)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
