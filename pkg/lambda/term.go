// Package lambda implements a single step of normal-order beta reduction
// for the untyped lambda calculus: parse a term, contract the
// leftmost-outermost redex if one exists, print the result.
package lambda

// Term is a lambda calculus term: a variable, an application, or an
// abstraction. Terms are immutable; every transformation builds a new
// tree, and untouched subtrees may be shared between old and new.
type Term interface {
	String() string
}

// Var is a reference to a binder or a free name.
type Var struct {
	Name string
}

// App applies Fn to Arg.
type App struct {
	Fn  Term
	Arg Term
}

// Abs binds Param within Body.
type Abs struct {
	Param string
	Body  Term
}

func (v Var) String() string { return Print(v) }
func (a App) String() string { return Print(a) }
func (a Abs) String() string { return Print(a) }
