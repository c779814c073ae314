// Copyright (c) 2024 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"strconv"
	"strings"
)

// The memoization layer: every cache here is keyed on operand *identity*,
// never on recomputed structural hashes, because identity already
// coincides with structure in a hash-consed arena. Fixed-size, resizable
// probe tables sized relative to the node table would also work, but since
// this arena carries no matching resize policy for the node table itself,
// plain Go maps are simpler and just as correct.

// andKey is the commutative cache key for a binary and/or/xor: the two
// operand identities, always stored with the smaller first so that both
// argument orders hit the same entry.
type andKey struct {
	a, b int64
}

func sortedPair(x, y *node) andKey {
	if x.id <= y.id {
		return andKey{x.id, y.id}
	}
	return andKey{y.id, x.id}
}

// iteKey is the cache key for if-then-else: not commutative, so it is
// simply the three operand identities in argument order.
type iteKey struct {
	c, t, e int64
}

type caches struct {
	not  map[int64]*node // bidirectional: not[x.id]=y and not[y.id]=x together
	and  map[andKey]*node
	nary map[string]*node // n-ary and, keyed by the sorted tuple of operand ids
	or   map[andKey]*node
	xor  map[andKey]*node
	ite  map[iteKey]*node

	restrict map[restrictKey]*node

	pbcOuter map[string]*node // canonicalized formula + bounds -> result
	pbcInner map[string]*node // sorted (coefficient,id) tuple + bounds -> result
}

func newCaches(hint int) *caches {
	return &caches{
		not:      make(map[int64]*node, hint),
		and:      make(map[andKey]*node, hint),
		nary:     make(map[string]*node, hint),
		or:       make(map[andKey]*node, hint),
		xor:      make(map[andKey]*node, hint),
		ite:      make(map[iteKey]*node, hint),
		restrict: make(map[restrictKey]*node, hint),
		pbcOuter: make(map[string]*node, hint),
		pbcInner: make(map[string]*node, hint),
	}
}

// naryKey builds a deterministic string key from a slice of node ids,
// already sorted by the caller. A string built from decimal ids is a
// simple, if not maximally fast, way to key a variadic tuple in a plain Go
// map.
func naryKey(ids []int64) string {
	var sb strings.Builder
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(id, 10))
	}
	return sb.String()
}
