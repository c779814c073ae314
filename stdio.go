// Copyright (c) 2024 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"fmt"
	"io"
	"strings"
)

// formatStats renders node-table and cache occupancy as a short
// human-readable block, one "name: value" pair per line.
func formatStats(b *Builder) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "nodes: %d\n", len(b.tbl.entries))
	fmt.Fprintf(&sb, "table hits: %d\n", b.tbl.hits)
	fmt.Fprintf(&sb, "table misses: %d\n", b.tbl.misses)
	fmt.Fprintf(&sb, "not cache: %d\n", len(b.caches.not))
	fmt.Fprintf(&sb, "and cache: %d\n", len(b.caches.and))
	fmt.Fprintf(&sb, "nary cache: %d\n", len(b.caches.nary))
	fmt.Fprintf(&sb, "xor cache: %d\n", len(b.caches.xor))
	fmt.Fprintf(&sb, "ite cache: %d\n", len(b.caches.ite))
	fmt.Fprintf(&sb, "restrict cache: %d\n", len(b.caches.restrict))
	fmt.Fprintf(&sb, "pbc outer cache: %d\n", len(b.caches.pbcOuter))
	fmt.Fprintf(&sb, "pbc inner cache: %d\n", len(b.caches.pbcInner))
	return sb.String()
}

// WriteDOT writes a Graphviz rendering of the diagram rooted at n to w, one
// node per line plus one edge per child pointer. High edges are drawn
// solid, low edges dashed, matching the usual BDD drawing convention.
func (b *Builder) WriteDOT(w io.Writer, n Node) error {
	if n == nil {
		return newInvalidInput("WriteDOT", "nil node")
	}
	fmt.Fprintln(w, "digraph robdd {")
	seen := make(map[int64]bool)
	var walk func(*node) error
	walk = func(cur *node) error {
		if seen[cur.id] {
			return nil
		}
		seen[cur.id] = true
		if cur.terminal {
			label := "0"
			if cur.value {
				label = "1"
			}
			_, err := fmt.Fprintf(w, "  n%d [shape=box,label=%q];\n", cur.id, label)
			return err
		}
		if _, err := fmt.Fprintf(w, "  n%d [shape=circle,label=%q];\n", cur.id, fmt.Sprintf("x%d", cur.choice)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  n%d -> n%d [style=solid];\n", cur.id, cur.high.id); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  n%d -> n%d [style=dashed];\n", cur.id, cur.low.id); err != nil {
			return err
		}
		if err := walk(cur.high); err != nil {
			return err
		}
		return walk(cur.low)
	}
	if err := walk(n); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
