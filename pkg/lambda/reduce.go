package lambda

// StepOnce contracts at most one redex in leftmost-outermost order and
// reports whether it did. An application whose function side is an
// abstraction is contracted before either side is searched; otherwise the
// function side is searched before the argument side, and reduction
// proceeds under binders. On false the input term comes back unchanged.
func StepOnce(t Term) (Term, bool) {
	switch t := t.(type) {
	case App:
		if abs, ok := t.Fn.(Abs); ok {
			return Substitute(abs.Body, abs.Param, t.Arg), true
		}
		if fn, ok := StepOnce(t.Fn); ok {
			return App{Fn: fn, Arg: t.Arg}, true
		}
		if arg, ok := StepOnce(t.Arg); ok {
			return App{Fn: t.Fn, Arg: arg}, true
		}
		return t, false
	case Abs:
		if body, ok := StepOnce(t.Body); ok {
			return Abs{Param: t.Param, Body: body}, true
		}
		return t, false
	}
	return t, false
}
