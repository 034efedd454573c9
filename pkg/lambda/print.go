package lambda

import "strings"

// Print renders t in the canonical notation: λ as the abstraction marker
// and a fixed parenthesization that round-trips through Parse. An
// abstraction in function position and any non-variable in argument
// position are parenthesized; everything else is bare.
func Print(t Term) string {
	var b strings.Builder
	printTerm(&b, t)
	return b.String()
}

func printTerm(b *strings.Builder, t Term) {
	switch t := t.(type) {
	case Var:
		b.WriteString(t.Name)
	case Abs:
		b.WriteString("λ")
		b.WriteString(t.Param)
		b.WriteString(".")
		printTerm(b, t.Body)
	case App:
		if _, paren := t.Fn.(Abs); paren {
			b.WriteString("(")
			printTerm(b, t.Fn)
			b.WriteString(")")
		} else {
			printTerm(b, t.Fn)
		}
		b.WriteString(" ")
		if _, bare := t.Arg.(Var); bare {
			printTerm(b, t.Arg)
		} else {
			b.WriteString("(")
			printTerm(b, t.Arg)
			b.WriteString(")")
		}
	}
}
