package lambda

import (
	"math/rand"
	"testing"
)

func mustParse(t *testing.T, input string) Term {
	t.Helper()
	term, err := ParseString(input)
	if err != nil {
		t.Fatalf("ParseString(%q): %v", input, err)
	}
	return term
}

// namePool is deliberately tiny so that random terms collide bound and
// free names often, exercising the capture-avoidance path.
var namePool = []string{"x", "y", "z", "f", "g"}

func randomName(r *rand.Rand) string {
	return namePool[r.Intn(len(namePool))]
}

func randomTerm(r *rand.Rand, depth int) Term {
	if depth <= 0 || r.Intn(4) == 0 {
		return Var{Name: randomName(r)}
	}
	if r.Intn(2) == 0 {
		return Abs{Param: randomName(r), Body: randomTerm(r, depth-1)}
	}
	return App{Fn: randomTerm(r, depth-1), Arg: randomTerm(r, depth-1)}
}
