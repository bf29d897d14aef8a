package repl

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lmorg/readline"

	"github.com/CytherisRose/hydra/evaluator"
	"github.com/CytherisRose/hydra/object"
	"github.com/CytherisRose/hydra/parser"
	"github.com/CytherisRose/hydra/text"
)

func Start(out io.Writer) {
	rline := readline.NewInstance()
	ev := evaluator.New()
	ev.Output = out

	for {
		rline.SetPrompt(text.PROMPT)
		line, err := rline.Readline()
		if respond(ev, out, line, err) {
			return
		}
	}
}

// respond handles one line from the prompt and reports whether the
// session is over. Ctrl-C, Ctrl-D and a closed stdin surface as a
// read error and end the session; looping on them would spin forever.
func respond(ev *evaluator.Evaluator, out io.Writer, line string, err error) bool {
	if err != nil {
		fmt.Fprintln(out, text.ERROR+err.Error())
		return true
	}

	line = strings.TrimSpace(line)

	if line == "" {
		return false
	}
	if line == "quit" {
		return true
	}
	if line == "help" {
		printBuiltins(out)
		return false
	}

	result := Do(ev, "REPL input", line)
	if result.Type() != object.NONE_OBJ {
		fmt.Fprintln(out, result.Inspect())
	}
	return false
}

func printBuiltins(out io.Writer) {
	names := make([]string, 0, len(evaluator.Builtins))
	for name := range evaluator.Builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(out, name+evaluator.Builtins[name].Sig.String())
	}
}

// Do parses and evaluates one chunk of input against the evaluator's
// state. The first parse error aborts evaluation.
func Do(ev *evaluator.Evaluator, source, input string) object.Object {
	p := parser.New(source, input)
	program := p.ParseProgram()
	if len(p.Errors) > 0 {
		return p.Errors[0]
	}
	return ev.EvalProgram(program)
}
