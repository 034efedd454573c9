package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/peterh/liner"
	"github.com/xyproto/env/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/kvanw/betastep/pkg/lambda"
)

const appName = "betastep"

var (
	prompt      = env.Str("BETASTEP_PROMPT", "λ> ")
	historyFile = env.Str("BETASTEP_HISTORY", filepath.Join(os.TempDir(), ".betastep_history"))

	helpText = `Enter a lambda term to make it current; it is printed back in canonical
form. Then:
  (empty line) or :step   contract the leftmost-outermost redex once
  :ast                    dump the current term's syntax tree
  :fv                     list the current term's free variables
  :help                   show this help
  :quit                   exit

Notation: \ or λ, e.g. (\x. \y. x) a
`
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [term]\n\n", appName)
	fmt.Fprintf(os.Stderr, "%s performs one beta reduction step at a time on untyped lambda terms.\n", appName)
	fmt.Fprint(os.Stderr, "With a term argument or piped stdin it prints the stepped term and exits;\n")
	fmt.Fprint(os.Stderr, "on a terminal it starts an interactive stepper.\n")
	os.Exit(2)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	args := flag.Args()
	switch {
	case len(args) == 1:
		fmt.Println(lambda.NextBetaReduction(args[0]))
	case len(args) > 1:
		usage()
	case !stdinIsTerminal():
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(lambda.NextBetaReduction(string(b)))
	default:
		repl()
	}
}

func stdinIsTerminal() bool {
	info, err := os.Stdin.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

func repl() {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Printf("%s: one beta reduction per step. :help for commands.\n", appName)

	var current lambda.Term
	for {
		input, err := line.Prompt(prompt)
		if err == liner.ErrPromptAborted || err == io.EOF {
			fmt.Println()
			return
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}

		switch cmd := strings.TrimSpace(input); cmd {
		case ":quit", ":q":
			return
		case ":help":
			fmt.Print(helpText)
		case ":ast":
			if current == nil {
				fmt.Println("no current term; enter one first")
				continue
			}
			spew.Dump(current)
		case ":fv":
			if current == nil {
				fmt.Println("no current term; enter one first")
				continue
			}
			names := maps.Keys(lambda.FreeVars(current))
			slices.Sort(names)
			fmt.Println(strings.Join(names, " "))
		case "", ":step":
			if current == nil {
				fmt.Println("no current term; enter one first")
				continue
			}
			next, ok := lambda.StepOnce(current)
			if !ok {
				fmt.Printf("%s  (normal form)\n", lambda.Print(current))
				continue
			}
			current = next
			fmt.Println(lambda.Print(current))
		default:
			line.AppendHistory(input)
			term, err := lambda.ParseString(input)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			current = term
			fmt.Println(lambda.Print(current))
		}
	}
}
