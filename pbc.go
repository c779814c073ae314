// Copyright (c) 2024 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"fmt"
	"sort"
	"strings"
)

// Term is one summand c*t of a pseudo-Boolean constraint: an integer
// coefficient applied to a BDD (a Boolean constant counts as a BDD here,
// via Builder.True/False/Constant).
type Term struct {
	Coefficient int
	Value       Node
}

type pbcPair struct {
	coeff int
	term  *node
}

// PseudoBooleanConstraint compiles a linear pseudo-Boolean constraint
// L <= sum(c_i * t_i) <= U into the BDD that is true exactly for the
// assignments satisfying it. Terms referring to the same node are merged by
// summing coefficients before anything else happens, so callers need not
// pre-aggregate duplicate terms themselves.
func (b *Builder) PseudoBooleanConstraint(formula []Term, lower, upper int) Node {
	for _, t := range formula {
		if !b.checkOwned("PseudoBooleanConstraint", t.Value) {
			return nil
		}
	}
	if lower > upper {
		return b.falseNode
	}

	sums := make(map[int64]int, len(formula))
	order := make([]int64, 0, len(formula))
	byID := make(map[int64]*node, len(formula))
	for _, t := range formula {
		id := t.Value.id
		if _, seen := sums[id]; !seen {
			order = append(order, id)
			byID[id] = t.Value
		}
		sums[id] += t.Coefficient
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	pairs := make([]pbcPair, 0, len(order))
	for _, id := range order {
		if c := sums[id]; c != 0 {
			pairs = append(pairs, pbcPair{c, byID[id]})
		}
	}

	key := pbcOuterKey(pairs, lower, upper)
	if cached, ok := b.caches.pbcOuter[key]; ok {
		return cached
	}
	res := b.pbcCompile(pairs, lower, upper)
	b.caches.pbcOuter[key] = res
	return res
}

// pbcCompile runs the normalization pipeline described for
// PseudoBooleanConstraint on an already merged, deduplicated list of pairs,
// then emits the constraint as and(forced, recurse(sorted pairs, L, U)).
func (b *Builder) pbcCompile(pairs []pbcPair, lower, upper int) *node {
	// Drop terms that are already Boolean constants: True folds its
	// coefficient into both bounds unconditionally, False contributes
	// nothing and is simply discarded.
	kept := make([]pbcPair, 0, len(pairs))
	for _, p := range pairs {
		switch p.term {
		case b.trueNode:
			lower -= p.coeff
			upper -= p.coeff
		case b.falseNode:
		default:
			kept = append(kept, p)
		}
	}

	// Sign-normalize: a negative coefficient on t is rewritten as a
	// positive coefficient on not(t), compensating both bounds.
	for i, p := range kept {
		if p.coeff < 0 {
			c := -p.coeff
			kept[i] = pbcPair{c, b.not(p.term)}
			lower += c
			upper += c
		}
	}

	// Force impossible picks: a term whose coefficient alone would exceed
	// the upper bound can never be chosen, so it is pinned false and
	// removed from the sum.
	forced := b.trueNode
	remaining := make([]pbcPair, 0, len(kept))
	for _, p := range kept {
		if p.coeff > upper {
			forced = b.and2(forced, b.not(p.term))
			if forced == b.falseNode {
				return b.falseNode
			}
			continue
		}
		remaining = append(remaining, p)
	}

	// Early decisions: if even picking every remaining term can't reach
	// the lower bound, the constraint is unsatisfiable; if picking every
	// remaining term never exceeds the upper bound and the lower bound is
	// already met by picking none, every assignment of the remaining
	// terms satisfies the constraint and only the forced pins matter.
	total := 0
	for _, p := range remaining {
		total += p.coeff
	}
	if total < lower {
		return b.falseNode
	}
	if total <= upper && lower <= 0 {
		return forced
	}

	// Tighten under forcing: a remaining term that is strictly simplified
	// by conjoining the pins already forced is replaced by that
	// simplification; if it collapses to a constant, it is absorbed back
	// into the bounds exactly as in the earlier constant-dropping step.
	if forced != b.trueNode {
		tightened := make([]pbcPair, 0, len(remaining))
		for _, p := range remaining {
			cand := b.and2(p.term, forced)
			if !less(keyOf(cand), keyOf(p.term)) {
				tightened = append(tightened, p)
				continue
			}
			switch cand {
			case b.trueNode:
				lower -= p.coeff
				upper -= p.coeff
			case b.falseNode:
			default:
				tightened = append(tightened, pbcPair{p.coeff, cand})
			}
		}
		remaining = tightened
		if lower > upper {
			return b.falseNode
		}
	}

	// Divide by gcd: the constraint is invariant under dividing every
	// coefficient and both bounds by their greatest common divisor.
	coeffs := make([]int, len(remaining)+2)
	coeffs[0], coeffs[1] = lower, upper
	for i, p := range remaining {
		coeffs[i+2] = p.coeff
	}
	if g := gcdOfAll(coeffs...); g > 1 {
		lower /= g
		upper /= g
		for i := range remaining {
			remaining[i].coeff /= g
		}
	}

	// Sort by coefficient magnitude descending, breaking ties by the
	// simplicity ordering, so the recursion resolves the heaviest, then
	// simplest, terms first.
	sort.Slice(remaining, func(i, j int) bool {
		ci, cj := absInt(remaining[i].coeff), absInt(remaining[j].coeff)
		if ci != cj {
			return ci > cj
		}
		return less(keyOf(remaining[i].term), keyOf(remaining[j].term))
	})

	return b.and2(forced, b.pbcNorm(remaining, lower, upper))
}

// pbcNorm recurses over an already normalized and sorted list of pairs,
// branching on the head term's value via ite and tightening the bounds by
// its coefficient on the true branch. It is memoized on the remaining
// pairs plus the current bounds, since the same tail can be reached along
// different prefixes once bounds coincide.
func (b *Builder) pbcNorm(pairs []pbcPair, lower, upper int) *node {
	if len(pairs) == 0 {
		if lower <= 0 && 0 <= upper {
			return b.trueNode
		}
		return b.falseNode
	}
	key := pbcInnerKey(pairs, lower, upper)
	if cached, ok := b.caches.pbcInner[key]; ok {
		return cached
	}
	head, rest := pairs[0], pairs[1:]
	thenBranch := b.pbcNorm(rest, lower-head.coeff, upper-head.coeff)
	elseBranch := b.pbcNorm(rest, lower, upper)
	res := b.Ite(head.term, thenBranch, elseBranch)
	b.caches.pbcInner[key] = res
	return res
}

func pbcOuterKey(pairs []pbcPair, lower, upper int) string {
	return pbcKey(pairs, lower, upper)
}

func pbcInnerKey(pairs []pbcPair, lower, upper int) string {
	return pbcKey(pairs, lower, upper)
}

func pbcKey(pairs []pbcPair, lower, upper int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d|%d", lower, upper)
	for _, p := range pairs {
		fmt.Fprintf(&sb, ";%d:%d", p.coeff, p.term.id)
	}
	return sb.String()
}
