package lambda

import "github.com/samber/lo"

// Substitute returns t with every free occurrence of v replaced by repl,
// written t[v := repl]. Binders are renamed on demand so that no free
// variable of repl is ever captured by a binder in t.
func Substitute(t Term, v string, repl Term) Term {
	switch t := t.(type) {
	case Var:
		if t.Name == v {
			return repl
		}
		return t
	case App:
		return App{Fn: Substitute(t.Fn, v, repl), Arg: Substitute(t.Arg, v, repl)}
	case Abs:
		if t.Param == v {
			// The binder shadows v; nothing below is a free occurrence.
			return t
		}
		replFree := FreeVars(repl)
		if replFree[t.Param] {
			// Capture hazard: repl's free t.Param would be bound here.
			// Rename the binder away from every name free in repl or in
			// the body, then substitute into the renamed body.
			avoid := lo.Assign(replFree, FreeVars(t.Body))
			param := freshName(avoid, t.Param)
			body := Substitute(t.Body, t.Param, Var{Name: param})
			return Abs{Param: param, Body: Substitute(body, v, repl)}
		}
		return Abs{Param: t.Param, Body: Substitute(t.Body, v, repl)}
	}
	panic("unreachable")
}
