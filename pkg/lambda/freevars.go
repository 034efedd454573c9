package lambda

import (
	"strconv"

	"github.com/samber/lo"
)

// FreeVars returns the set of names occurring free in t. An abstraction
// removes only its own binder; deeper re-bindings of the same name have
// already been accounted for by the recursive call.
func FreeVars(t Term) map[string]bool {
	switch t := t.(type) {
	case Var:
		return map[string]bool{t.Name: true}
	case App:
		return lo.Assign(FreeVars(t.Fn), FreeVars(t.Arg))
	case Abs:
		free := FreeVars(t.Body)
		delete(free, t.Param)
		return free
	}
	panic("unreachable")
}

// freshName returns base if it is not in avoid, otherwise the first of
// base1, base2, ... that is not.
func freshName(avoid map[string]bool, base string) string {
	name := base
	for i := 1; avoid[name]; i++ {
		name = base + strconv.Itoa(i)
	}
	return name
}
