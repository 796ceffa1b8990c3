package canonical

import "cmp"

// Min yields whichever of two sequences is lexically smaller, reading both
// only until they first differ. A sequence that ends sorts before one that
// continues.
type Min[T cmp.Ordered] struct {
	a, b  Iterator[T]
	order int // <0: a won, >0: b won, 0: tied so far
}

// LexicalMin pairs a and b. Neither is buffered.
func LexicalMin[T cmp.Ordered](a, b Iterator[T]) *Min[T] {
	return &Min[T]{a: a, b: b}
}

func (m *Min[T]) Next() (T, bool) {
	switch {
	case m.order < 0:
		return m.a.Next()
	case m.order > 0:
		return m.b.Next()
	}
	x, okx := m.a.Next()
	y, oky := m.b.Next()
	m.order = compare(x, okx, y, oky)
	if m.order < 0 {
		return x, okx
	}
	return y, oky
}

// Len is exact: while tied, the shorter side wins once it ends.
func (m *Min[T]) Len() int {
	switch {
	case m.order < 0:
		return m.a.Len()
	case m.order > 0:
		return m.b.Len()
	}
	return min(m.a.Len(), m.b.Len())
}

func compare[T cmp.Ordered](x T, okx bool, y T, oky bool) int {
	switch {
	case !okx && !oky:
		return 0
	case !okx:
		return -1
	case !oky:
		return 1
	}
	return cmp.Compare(x, y)
}
