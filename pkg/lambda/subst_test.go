package lambda

import (
	"math/rand"
	"testing"

	"github.com/samber/lo"
	"golang.org/x/exp/maps"
)

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name string
		term string
		v    string
		repl string
		want string
	}{
		{"matching variable", "x", "x", "y", "y"},
		{"other variable untouched", "z", "x", "y", "z"},
		{"distributes over application", "x x z", "x", "y", "y y z"},
		{"shadowing binder stops", `\x. x`, "x", "y", `\x. x`},
		{"no hazard descends", `\y. x`, "x", "z", `\y. z`},
		{"capture hazard renames", `\y. x`, "x", "y", `\y1. y`},
		{"rename avoids body names too", `\y. y1 x`, "x", "y", `\y2. y1 y`},
		{"hazard only where bound", `(\y. x) x`, "x", "y", `(\y1. y) y`},
		{"replacement with binder", "x", "x", `\z. z`, `\z. z`},
		{"bound occurrence of v untouched", `\x. x x`, "x", "y", `\x. x x`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Substitute(mustParse(t, tt.term), tt.v, mustParse(t, tt.repl))
			want := mustParse(t, tt.want)
			if got != want {
				t.Errorf("Substitute(%q, %q, %q) = %v, want %v", tt.term, tt.v, tt.repl, got, want)
			}
		})
	}
}

// The free variables of t[v := r] are exactly (FV(t) \ {v}) ∪ FV(r) when
// v occurs free in t, and FV(t) otherwise. A capture would make a free
// variable of r vanish from the result, so this also checks capture
// freedom over random colliding-name terms.
func TestSubstituteFreeVarTheorem(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		term := randomTerm(r, 5)
		repl := randomTerm(r, 3)
		v := randomName(r)

		want := FreeVars(term)
		if want[v] {
			delete(want, v)
			want = lo.Assign(want, FreeVars(repl))
		}
		got := FreeVars(Substitute(term, v, repl))
		if !maps.Equal(got, want) {
			t.Fatalf("FreeVars(%v[%s := %v]) = %v, want %v (term %v)",
				term, v, repl, got, want, term)
		}
	}
}

// Renaming introduced by capture avoidance must leave the term
// alpha-equivalent when the substituted variable does not occur free.
func TestSubstituteAbsentVarAlphaInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		term := randomTerm(r, 5)
		repl := randomTerm(r, 3)
		v := randomName(r)
		if FreeVars(term)[v] {
			continue
		}
		if got := Substitute(term, v, repl); !AlphaEqual(got, term) {
			t.Fatalf("Substitute(%v, %s, %v) = %v, not alpha-equal to input", term, v, repl, got)
		}
	}
}
