//
// Hydra version 0.1
//
// A little language for drawing in hyperbolic polar coordinates.
//
// Acknowledgments
//
// The interpreter follows the shape laid out in Thorsten Ball’s Writing An
// Interpreter In Go (https://interpreterbook.com/), although the language
// it interprets is a rather different beast.
//

package main

import (
	"fmt"
	"os"

	"github.com/CytherisRose/hydra/evaluator"
	"github.com/CytherisRose/hydra/object"
	"github.com/CytherisRose/hydra/repl"
	"github.com/CytherisRose/hydra/text"
)

func main() {

	if len(os.Args) > 1 {
		os.Exit(runScript(os.Args[1]))
	}

	fmt.Print(text.Logo())
	repl.Start(os.Stdout)
}

func runScript(filename string) int {
	input, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, text.ERROR+err.Error())
		return 1
	}

	ev := evaluator.New()
	result := repl.Do(ev, filename, string(input))
	if result.Type() == object.ERROR_OBJ {
		fmt.Fprintln(os.Stderr, result.Inspect())
		return 1
	}
	return 0
}
