// Copyright (c) 2024 Silvano DAL ZILIO
//
// MIT License

package robdd

// restrictKey is the memoization key for restrict: (n.identity, v, value).
type restrictKey struct {
	id    int64
	v     int
	value bool
}

// Restrict substitutes value for variable v in n, returning an equivalent
// diagram from which v has been eliminated. It is a programming error to
// call Restrict with a Node from a different Builder; that case is reported
// as a BuilderMismatchError rather than silently corrupting this builder's
// table.
func (b *Builder) Restrict(n Node, v int, value bool) Node {
	if n == nil {
		b.err = newInvalidInput("Restrict", "nil node")
		return nil
	}
	if n.owner != b {
		b.err = newBuilderMismatch("Restrict")
		return nil
	}
	if v < 0 {
		b.err = newInvalidInput("Restrict", "negative variable index %d", v)
		return nil
	}
	return b.restrict(n, v, value)
}

// restrict is the recursion behind Restrict, memoized on
// (n.identity, v, value). Its postcondition — v is absent from the
// support of the result — follows directly from the three cases: a
// terminal has empty support; a node whose support excludes v is returned
// unchanged; and otherwise either we take a child directly (which by the
// ordering invariant cannot have v in its support, since v == n.choice and
// ordering requires any descendant's choice to exceed its parent's) or we
// recurse strictly past v (since v > n.choice here, by case exhaustion).
func (b *Builder) restrict(n *node, v int, value bool) *node {
	if n.terminal {
		return n
	}
	if !n.support.contains(v) {
		return n
	}
	key := restrictKey{n.id, v, value}
	if cached, ok := b.caches.restrict[key]; ok {
		return cached
	}
	var res *node
	switch {
	case v == n.choice:
		if value {
			res = n.high
		} else {
			res = n.low
		}
	default: // v > n.choice, by the ordering invariant and the support check above
		high := b.restrict(n.high, v, value)
		low := b.restrict(n.low, v, value)
		res = b.make(n.choice, high, low)
	}
	b.caches.restrict[key] = res
	return res
}
