// Copyright (c) 2024 Silvano DAL ZILIO
//
// MIT License

package robdd

import "sort"

func (b *Builder) checkOwned(op string, n Node) bool {
	if n == nil {
		b.err = newInvalidInput(op, "nil node")
		return false
	}
	if n.owner != b {
		b.err = newBuilderMismatch(op)
		return false
	}
	return true
}

// Not returns the negation of n. Terminals are swapped directly; an
// internal node is negated by negating both children and re-making under
// the same choice. The cache is populated in both
// directions after computing a fresh result, since not is an involution:
// not(not(x)) == x is then an O(1) lookup rather than a second recursion.
func (b *Builder) Not(n Node) Node {
	if !b.checkOwned("Not", n) {
		return nil
	}
	return b.not(n)
}

func (b *Builder) not(n *node) *node {
	if n.terminal {
		if n.value {
			return b.falseNode
		}
		return b.trueNode
	}
	if cached, ok := b.caches.not[n.id]; ok {
		return cached
	}
	res := b.make(n.choice, b.not(n.high), b.not(n.low))
	b.caches.not[n.id] = res
	if !res.terminal {
		b.caches.not[res.id] = n
	}
	return res
}

// And returns the conjunction of zero or more operands. The empty
// conjunction is True (the usual convention for an empty "and"); a single
// operand is returned unchanged without touching any cache.
func (b *Builder) And(xs ...Node) Node {
	for _, x := range xs {
		if !b.checkOwned("And", x) {
			return nil
		}
	}
	switch len(xs) {
	case 0:
		return b.trueNode
	case 1:
		return xs[0]
	case 2:
		return b.and2(xs[0], xs[1])
	default:
		return b.andN(xs)
	}
}

// and2 is the binary and, recursing on the smaller of the two choices and
// caching on the unordered operand pair.
func (b *Builder) and2(x, y *node) *node {
	switch {
	case x == y:
		return x
	case x == b.falseNode || y == b.falseNode:
		return b.falseNode
	case x == b.trueNode:
		return y
	case y == b.trueNode:
		return x
	}
	key := sortedPair(x, y)
	if cached, ok := b.caches.and[key]; ok {
		return cached
	}
	var res *node
	switch {
	case x.choice == y.choice:
		res = b.make(x.choice, b.and2(x.high, y.high), b.and2(x.low, y.low))
	case x.choice < y.choice:
		res = b.make(x.choice, b.and2(x.high, y), b.and2(x.low, y))
	default:
		res = b.make(y.choice, b.and2(x, y.high), b.and2(x, y.low))
	}
	b.caches.and[key] = res
	return res
}

// simplicityKey orders operands by support-size ascending, then
// lexicographic support, then identity: used both for the n-ary and's fold
// order and for the "simplicity" ordering the pseudo-Boolean compiler sorts
// terms by (see pbc.go). A Boolean constant sorts before any internal node.
type simplicityKey struct {
	kind    int // 0 = constant, 1 = internal node
	value   bool
	size    int
	support []int
	id      int64
}

func keyOf(n *node) simplicityKey {
	if n.terminal {
		return simplicityKey{kind: 0, value: n.value}
	}
	return simplicityKey{kind: 1, size: len(n.support), support: n.support, id: n.id}
}

func less(a, b simplicityKey) bool {
	if a.kind != b.kind {
		return a.kind < b.kind
	}
	if a.kind == 0 {
		return !a.value && b.value
	}
	if a.size != b.size {
		return a.size < b.size
	}
	for i := 0; i < len(a.support) && i < len(b.support); i++ {
		if a.support[i] != b.support[i] {
			return a.support[i] < b.support[i]
		}
	}
	if len(a.support) != len(b.support) {
		return len(a.support) < len(b.support)
	}
	return a.id < b.id
}

// andN absorbs False, drops True, sorts the remainder into a deterministic
// fold order and folds left-to-right via the binary and, short-circuiting
// on False. The whole result is additionally cached under the sorted tuple
// of operand identities.
func (b *Builder) andN(xs []*node) *node {
	kept := make([]*node, 0, len(xs))
	for _, x := range xs {
		if x == b.falseNode {
			return b.falseNode
		}
		if x == b.trueNode {
			continue
		}
		kept = append(kept, x)
	}
	if len(kept) == 0 {
		return b.trueNode
	}
	if len(kept) == 1 {
		return kept[0]
	}
	sort.Slice(kept, func(i, j int) bool { return less(keyOf(kept[i]), keyOf(kept[j])) })

	ids := make([]int64, len(kept))
	for i, n := range kept {
		ids[i] = n.id
	}
	key := naryKey(ids)
	if cached, ok := b.caches.nary[key]; ok {
		return cached
	}

	acc := kept[0]
	for _, n := range kept[1:] {
		if acc == b.falseNode {
			break
		}
		acc = b.and2(acc, n)
	}
	b.caches.nary[key] = acc
	return acc
}

// Or returns the disjunction of zero or more operands, defined via De
// Morgan: or(xs) = not(and(map(not, xs))).
func (b *Builder) Or(xs ...Node) Node {
	for _, x := range xs {
		if !b.checkOwned("Or", x) {
			return nil
		}
	}
	if len(xs) == 0 {
		return b.falseNode
	}
	if len(xs) == 1 {
		return xs[0]
	}
	negated := make([]Node, len(xs))
	for i, x := range xs {
		negated[i] = b.not(x)
	}
	return b.not(b.And(negated...))
}

// Xor returns the exclusive-or of x and y:
// xor(x,y) = or(and(not x, y), and(x, not y)).
func (b *Builder) Xor(x, y Node) Node {
	if !b.checkOwned("Xor", x) || !b.checkOwned("Xor", y) {
		return nil
	}
	key := sortedPair(x, y)
	if cached, ok := b.caches.xor[key]; ok {
		return cached
	}
	res := b.Or(b.And(b.not(x), y), b.And(x, b.not(y)))
	b.caches.xor[key] = res
	return res
}

// Ite computes if-then-else: ite(c,t,e) = or(and(c,t), and(not c, e)).
func (b *Builder) Ite(c, t, e Node) Node {
	if !b.checkOwned("Ite", c) || !b.checkOwned("Ite", t) || !b.checkOwned("Ite", e) {
		return nil
	}
	key := iteKey{c.id, t.id, e.id}
	if cached, ok := b.caches.ite[key]; ok {
		return cached
	}
	res := b.Or(b.And(c, t), b.And(b.not(c), e))
	b.caches.ite[key] = res
	return res
}
