package gspan

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/gspan/types/pattern"
)

func chain(codes ...pattern.EdgeCode) *pattern.Pattern {
	var p *pattern.Pattern
	for _, ec := range codes {
		p = pattern.New(ec, p)
	}
	return p
}

// Table 1 of Yan & Han, "gSpan: Graph-Based Substructure Pattern
// Mining". X=0 Y=1 Z=2, a=10 b=11 c=12 d=13.
func TestTableOneIsMinimal(t *testing.T) {
	x := assert.New(t)
	X, Y, Z := 0, 1, 2
	a, b, c, d := 10, 11, 12, 13
	p := chain(
		pattern.EdgeCode{0, 1, X, a, X},
		pattern.EdgeCode{1, 2, X, a, Y},
		pattern.EdgeCode{2, 0, Y, b, X},
		pattern.EdgeCode{2, 3, Y, b, Z},
		pattern.EdgeCode{3, 0, Z, c, X},
		pattern.EdgeCode{2, 4, Y, d, Z},
	)
	x.True(IsMinimal(p))
}

func TestNonMinimalProbe(t *testing.T) {
	x := assert.New(t)
	A, B, under := 0, 1, 5
	bad := chain(
		pattern.EdgeCode{0, 1, B, under, A},
		pattern.EdgeCode{1, 2, A, under, A},
	)
	good := chain(
		pattern.EdgeCode{0, 1, A, under, A},
		pattern.EdgeCode{1, 2, A, under, B},
	)
	x.False(IsMinimal(bad))
	x.True(IsMinimal(good))
}

func TestSingleEdgeOrientation(t *testing.T) {
	x := assert.New(t)
	A, B, under := 0, 1, 5
	x.True(IsMinimal(chain(pattern.EdgeCode{0, 1, A, under, B})))
	x.False(IsMinimal(chain(pattern.EdgeCode{0, 1, B, under, A})))
	x.True(IsMinimal(chain(pattern.EdgeCode{0, 1, A, under, A})))
}

func TestTriangleIsMinimal(t *testing.T) {
	x := assert.New(t)
	X, a := 0, 10
	p := chain(
		pattern.EdgeCode{0, 1, X, a, X},
		pattern.EdgeCode{1, 2, X, a, X},
		pattern.EdgeCode{2, 0, X, a, X},
	)
	x.True(IsMinimal(p))
}

// a path grown from its middle is not in canonical order
func TestPathGrownBackwards(t *testing.T) {
	x := assert.New(t)
	A, B, C, under := 0, 1, 2, 5
	// B-C edge first even though A-B sorts lower
	p := chain(
		pattern.EdgeCode{0, 1, B, under, C},
		pattern.EdgeCode{0, 2, B, under, A},
	)
	x.False(IsMinimal(p))
	q := chain(
		pattern.EdgeCode{0, 1, A, under, B},
		pattern.EdgeCode{1, 2, B, under, C},
	)
	x.True(IsMinimal(q))
}

// minimality is idempotent: rebuilding a minimal code reproduces it
func TestMinimalIdempotent(t *testing.T) {
	x := assert.New(t)
	X, Y, a, b := 0, 1, 10, 11
	p := chain(
		pattern.EdgeCode{0, 1, X, a, X},
		pattern.EdgeCode{1, 2, X, a, Y},
		pattern.EdgeCode{2, 0, Y, b, X},
	)
	if x.True(IsMinimal(p)) {
		// a second check over the same chain must agree
		x.True(IsMinimal(p))
	}
}
