// Copyright (c) 2024 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// triple is the hash-consing key for an internal node: a variable index and
// its two (already-canonical) children. Children are themselves *node
// pointers, so structural equality of the triple coincides with equality of
// its fields — no separate hashing of the children's content is needed in
// an arena where identity is structure.
type triple struct {
	choice    int
	high, low *node
}

// table is a hash-consed store of internal nodes, keyed by triple. Unlike a
// slab of fixed-size records addressed by integer index with its own
// reference counts and garbage collection, this table lets nodes live for
// as long as the Go garbage collector keeps them reachable, so a plain Go
// map from triple to *node is both the simplest and the idiomatic choice.
type table struct {
	entries map[triple]*node
	hits    int64
	misses  int64
}

func newTable(hint int) *table {
	return &table{entries: make(map[triple]*node, hint)}
}

// make enforces reducedness and uniqueness for the triple (choice, high,
// low): the triple as passed is looked up first; on a miss, the children
// are restricted along choice, since a caller may pass children whose
// support still mentions choice after an intermediate construction step,
// and the restricted triple is then looked up or allocated under the
// hash-consing key. Both the pre- and post-restriction triples are left
// mapping to the same resulting node, which is what makes repeated
// construction with the caller's original (unrestricted) arguments
// idempotent and cheap on a cache hit. A child testing a variable that does
// not come strictly after choice violates the ordering invariant and makes
// make panic.
func (b *Builder) make(choice int, high, low *node) *node {
	if high == low {
		return high
	}
	preKey := triple{choice, high, low}
	if n, ok := b.tbl.entries[preKey]; ok {
		b.tbl.hits++
		return n
	}
	b.tbl.misses++

	reducedHigh := b.restrict(high, choice, true)
	reducedLow := b.restrict(low, choice, false)
	if reducedHigh == reducedLow {
		b.tbl.entries[preKey] = reducedHigh
		return reducedHigh
	}

	postKey := triple{choice, reducedHigh, reducedLow}
	if n, ok := b.tbl.entries[postKey]; ok {
		b.tbl.entries[preKey] = n
		return n
	}

	if (!reducedHigh.terminal && reducedHigh.choice <= choice) || (!reducedLow.terminal && reducedLow.choice <= choice) {
		panic(fmt.Sprintf("robdd: ordering invariant violated: child of a node on variable %d does not test a later variable", choice))
	}

	n := &node{
		id:      b.nextID,
		choice:  choice,
		high:    reducedHigh,
		low:     reducedLow,
		support: unionSupport(choice, reducedHigh.support, reducedLow.support),
		owner:   b,
	}
	b.nextID++
	b.tbl.entries[postKey] = n
	if preKey != postKey {
		b.tbl.entries[preKey] = n
	}
	if b.cfg.logger.Logger.IsLevelEnabled(logrus.TraceLevel) {
		b.cfg.logger.WithFields(logrus.Fields{
			"choice": choice, "id": n.id,
		}).Trace("allocated node")
	}
	return n
}
