package pattern

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"golife/src/universe"
)

//ParseRLE decodes a run-length-encoded pattern into a grid
//the format: optional '#' comment lines, an optional "x = m, y = n" header
//(ignored, dimensions come from the data), then runs of 'b' (dead),
//'o' (alive) and '$' (row break) with optional repeat counts, terminated
//by '!' - end of input acts as a terminator too
//embedded whitespace is ignored, headerless files are accepted
func ParseRLE(r io.Reader) (*universe.Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "pattern: read rle input")
	}

	var (
		vc    [][]int
		x     int
		y     int
		width int
		count int
	)
	finish := func() (*universe.Grid, error) {
		if x > width {
			width = x
		}
		if x > 0 {
			y++
		}
		if width == 0 || y == 0 {
			return nil, ErrEmptyPattern
		}
		return universe.FromAliveSet(width, y, vc)
	}

	for _, c := range rleBody(string(data)) {
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			continue
		case c >= '0' && c <= '9':
			count = count*10 + int(c-'0')
			continue
		}
		if count == 0 {
			count = 1
		}
		switch c {
		case 'b', '.':
			x += count
		case 'o', 'O':
			for i := 0; i < count; i++ {
				vc = append(vc, []int{x, y})
				x++
			}
		case '$':
			if x > width {
				width = x
			}
			y += count
			x = 0
		case '!':
			return finish()
		default:
			return nil, errors.Wrapf(ErrUnknownSymbol, "%q in rle data", c)
		}
		count = 0
	}
	return finish()
}

//rleBody strips leading comment and blank lines plus the optional header
func rleBody(src string) string {
	lines := strings.Split(src, "\n")
	i := 0
	for ; i < len(lines); i++ {
		t := strings.TrimSpace(lines[i])
		if t == "" || strings.HasPrefix(t, "#") {
			continue
		}
		if strings.HasPrefix(t, "x") {
			i++
		}
		break
	}
	return strings.Join(lines[i:], "\n")
}
