package lambda

import (
	"strconv"

	"golang.org/x/exp/slices"
)

// AlphaEqual reports whether a and b differ only in the names of their
// bound variables. Terms are compared by their de Bruijn renderings,
// which erase binder names entirely; free variables keep their names.
func AlphaEqual(a, b Term) bool {
	return deBruijnString(a, nil) == deBruijnString(b, nil)
}

func deBruijnString(t Term, ctx []string) string {
	switch t := t.(type) {
	case Var:
		if i := slices.Index(ctx, t.Name); i >= 0 {
			return strconv.Itoa(i)
		}
		return "`" + t.Name
	case Abs:
		return "(λ." + deBruijnString(t.Body, prepend(t.Param, ctx)) + ")"
	case App:
		return "(" + deBruijnString(t.Fn, ctx) + " " + deBruijnString(t.Arg, ctx) + ")"
	}
	panic("unreachable")
}

func prepend(v string, from []string) []string {
	return append([]string{v}, from...)
}
