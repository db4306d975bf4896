package safa

import "github.com/bits-and-blooms/bitset"

// charPredicate is a predicate over the concrete alphabet of bytes: the set
// of bytes it accepts. Concrete Boolean-algebra theories are a caller
// concern, never built into the core itself, so this type lives only in test
// code, to exercise the core against a real (if tiny) algebra.
type charPredicate struct {
	set *bitset.BitSet
}

// charAlgebra implements PredicateAlgebra over charPredicate. It never fails:
// satisfiability and minterm-splitting are both decidable by direct bitset
// inspection over the 256-byte alphabet, so no solver-timeout path is
// exercised by these tests.
type charAlgebra struct{}

func newCharAlgebra() charAlgebra { return charAlgebra{} }

// eq builds the predicate "symbol is one of bytes".
func eq(bytes ...byte) Predicate {
	b := bitset.New(256)
	for _, c := range bytes {
		b.Set(uint(c))
	}
	return &charPredicate{set: b}
}

func asCharSet(p Predicate) *bitset.BitSet {
	return p.(*charPredicate).set
}

func (charAlgebra) MkAnd(p, q Predicate) Predicate {
	return &charPredicate{set: asCharSet(p).Intersection(asCharSet(q))}
}

func (charAlgebra) MkOr(p, q Predicate) Predicate {
	return &charPredicate{set: asCharSet(p).Union(asCharSet(q))}
}

func (charAlgebra) MkNot(p Predicate) Predicate {
	return &charPredicate{set: asCharSet(p).Complement()}
}

func (charAlgebra) MkTrue() Predicate {
	return &charPredicate{set: bitset.New(256).Complement()}
}

func (charAlgebra) MkFalse() Predicate {
	return &charPredicate{set: bitset.New(256)}
}

func (charAlgebra) IsSatisfiable(p Predicate) (bool, error) {
	return asCharSet(p).Any(), nil
}

func (charAlgebra) Eval(p Predicate, sym Symbol) (bool, error) {
	return asCharSet(p).Test(uint(sym.(byte))), nil
}

// Minterms partitions the 256-byte alphabet by which of preds each byte
// satisfies, grouping bytes with identical polarity vectors into a single
// minterm guard. This is the brute-force version of what a real algebra
// would do symbolically; with a fixed 256-byte universe it is cheap and
// exact, which is exactly what the test suite needs.
func (charAlgebra) Minterms(preds []Predicate) ([]Minterm, error) {
	groups := make(map[string]*Minterm)
	var order []string

	for b := 0; b < 256; b++ {
		key := make([]byte, len(preds))
		polarity := bitset.New(uint(len(preds)))
		for i, p := range preds {
			if asCharSet(p).Test(uint(b)) {
				key[i] = 1
				polarity.Set(uint(i))
			}
		}
		k := string(key)
		m, ok := groups[k]
		if !ok {
			m = &Minterm{Guard: &charPredicate{set: bitset.New(256)}, Positive: polarity}
			groups[k] = m
			order = append(order, k)
		}
		asCharSet(m.Guard).Set(uint(b))
	}

	out := make([]Minterm, 0, len(order))
	for _, k := range order {
		out = append(out, *groups[k])
	}
	return out, nil
}
