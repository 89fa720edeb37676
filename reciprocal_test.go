package anatree

import "testing"

func TestReciprocalsOf_KnownPairs(t *testing.T) {
	cases := []struct{ a, b byte }{
		{'e', 'i'}, {'c', 'k'}, {'s', 'z'}, {'b', 'p'},
	}
	for _, c := range cases {
		if !reciprocalsOf(li(c.a)).Has(li(c.b)) {
			t.Errorf("%c should be reciprocal to %c", c.a, c.b)
		}
		if !reciprocalsOf(li(c.b)).Has(li(c.a)) {
			t.Errorf("reciprocal relation must hold in reverse for %c/%c", c.b, c.a)
		}
	}
}

func TestReciprocalsOf_MultiPartnerLetter(t *testing.T) {
	// 'i' appears in the table paired with both 'e' and 'l' and 't'.
	s := reciprocalsOf(li('i'))
	if !s.Has(li('e')) || !s.Has(li('l')) || !s.Has(li('t')) {
		t.Fatalf("'i' should have multiple reciprocal partners, got set %v", s)
	}
}

func TestReciprocalsOf_UnrelatedLetterIsEmpty(t *testing.T) {
	if reciprocalsOf(li('x')).Count() != 0 {
		t.Fatal("'x' has no reciprocal partners in the fixed table")
	}
}
