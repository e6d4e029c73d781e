//rle2txt converts run-length-encoded Life patterns to the plaintext
//cell format accepted by the simulator, it is an offline tool and the
//simulation never depends on it
package main

import (
	"fmt"
	"os"

	"github.com/integrii/flaggy"

	"golife/src/pattern"
)

func main() {
	var input string
	var output string

	flaggy.SetName("rle2txt")
	flaggy.SetDescription("Convert .rle Life patterns to the plaintext cell format")
	flaggy.AddPositionalValue(&input, "input", 1, true, "Path to the .rle pattern")
	flaggy.AddPositionalValue(&output, "output", 2, false, "Path for the plaintext output, stdout when omitted")
	flaggy.Parse()

	f, err := os.Open(input)
	if err != nil {
		fail(err)
	}
	defer f.Close()

	g, err := pattern.ParseRLE(f)
	if err != nil {
		fail(err)
	}

	text := pattern.Write(g)
	if output == "" {
		fmt.Print(text)
		return
	}
	if err := os.WriteFile(output, []byte(text), 0644); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
