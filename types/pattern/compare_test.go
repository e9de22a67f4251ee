package pattern

import "testing"
import "github.com/stretchr/testify/assert"

func sampleCodes() []EdgeCode {
	codes := make([]EdgeCode, 0, 40)
	// backward codes from a right-most vertex 3
	for _, dst := range []int{0, 1, 2} {
		for _, el := range []int{0, 1} {
			codes = append(codes, EdgeCode{3, dst, 5, el, 6})
		}
	}
	// forward codes to the new vertex 4
	for _, src := range []int{0, 1, 2, 3} {
		for _, sl := range []int{5, 6} {
			for _, el := range []int{0, 1} {
				for _, dl := range []int{5, 7} {
					codes = append(codes, EdgeCode{src, 4, sl, el, dl})
				}
			}
		}
	}
	return codes
}

func TestDFSPrecedence(t *testing.T) {
	x := assert.New(t)
	bck := EdgeCode{3, 1, 5, 0, 6}
	fwd := EdgeCode{3, 4, 5, 0, 6}
	x.True(LessDFS(&bck, &fwd), "backward before forward")
	x.False(LessDFS(&fwd, &bck))

	// backward: smaller target first, then edge label
	b1 := EdgeCode{3, 0, 5, 1, 6}
	b2 := EdgeCode{3, 1, 5, 0, 6}
	x.True(LessDFS(&b1, &b2))
	b3 := EdgeCode{3, 0, 5, 0, 6}
	x.True(LessDFS(&b3, &b1))

	// forward: deeper source first
	f1 := EdgeCode{3, 4, 9, 9, 9}
	f2 := EdgeCode{0, 4, 0, 0, 0}
	x.True(LessDFS(&f1, &f2))

	// forward ties: source label, edge label, target label
	f3 := EdgeCode{2, 4, 5, 0, 5}
	f4 := EdgeCode{2, 4, 6, 0, 5}
	x.True(LessDFS(&f3, &f4))
	f5 := EdgeCode{2, 4, 5, 1, 5}
	x.True(LessDFS(&f3, &f5))
	f6 := EdgeCode{2, 4, 5, 0, 7}
	x.True(LessDFS(&f3, &f6))
}

func TestLexOrder(t *testing.T) {
	x := assert.New(t)
	a := EdgeCode{0, 1, 5, 5, 5}
	b := EdgeCode{0, 2, 0, 0, 0}
	x.True(LessLex(&a, &b))
	c := EdgeCode{1, 0, 0, 0, 0}
	x.True(LessLex(&a, &c))
	d := EdgeCode{0, 1, 5, 5, 6}
	x.True(LessLex(&a, &d))
	x.False(LessLex(&a, &a))
}

func strictWeakOrder(t *testing.T, less func(a, b *EdgeCode) bool) {
	x := assert.New(t)
	codes := sampleCodes()
	for i := range codes {
		x.False(less(&codes[i], &codes[i]), "irreflexive %v", codes[i])
		for j := range codes {
			if less(&codes[i], &codes[j]) {
				x.False(less(&codes[j], &codes[i]), "asymmetric %v %v", codes[i], codes[j])
			}
			for k := range codes {
				if less(&codes[i], &codes[j]) && less(&codes[j], &codes[k]) {
					x.True(less(&codes[i], &codes[k]),
						"transitive %v %v %v", codes[i], codes[j], codes[k])
				}
			}
		}
	}
}

func TestDFSStrictWeakOrder(t *testing.T) {
	strictWeakOrder(t, LessDFS)
}

func TestLexStrictWeakOrder(t *testing.T) {
	strictWeakOrder(t, LessLex)
}

func TestEqualsDFS(t *testing.T) {
	x := assert.New(t)
	a := EdgeCode{2, 4, 5, 0, 5}
	b := EdgeCode{2, 4, 5, 0, 5}
	x.True(EqualsDFS(&a, &b))
	c := EdgeCode{2, 4, 5, 0, 7}
	x.False(EqualsDFS(&a, &c))
}
