// Copyright (c) 2024 Silvano DAL ZILIO
//
// MIT License

package robdd

import "github.com/sirupsen/logrus"

// Builder is a hash-consed arena of ROBDD nodes. All the Nodes it returns
// belong to it and are only meaningful as arguments to its own methods; a
// Builder is not safe for concurrent use without external serialization,
// though Nodes it has already returned may be read from any goroutine once
// handed out.
type Builder struct {
	tbl    *table
	caches *caches
	cfg    *configs
	nextID int64

	trueNode  *node
	falseNode *node

	variables map[int]*node // Variable(i) memoized so repeated calls share identity

	err error
}

// New creates an empty Builder. Options configure initial capacity hints
// and logging; see WithTableHint, WithCacheHint and WithLogger.
func New(opts ...Option) *Builder {
	cfg := defaultConfigs()
	for _, o := range opts {
		o(cfg)
	}
	b := &Builder{
		tbl:       newTable(cfg.tableHint),
		caches:    newCaches(cfg.cacheHint),
		cfg:       cfg,
		variables: make(map[int]*node),
	}
	b.falseNode = &node{id: 0, terminal: true, value: false, owner: b}
	b.trueNode = &node{id: 1, terminal: true, value: true, owner: b}
	b.nextID = 2
	return b
}

// Err returns the error recorded by the most recent failing operation on b,
// or nil if none has failed since New or the last ClearErr. Operations do
// not consult it: a later call with valid arguments proceeds normally, and a
// later failing call replaces the recorded error.
func (b *Builder) Err() error {
	return b.err
}

// Errored reports whether b has recorded an error.
func (b *Builder) Errored() bool {
	return b.err != nil
}

// ClearErr discards the recorded error, so that Err and Errored report no
// error until another operation fails.
func (b *Builder) ClearErr() {
	b.err = nil
}

// True returns the Boolean constant true as a Node.
func (b *Builder) True() Node {
	return b.trueNode
}

// False returns the Boolean constant false as a Node.
func (b *Builder) False() Node {
	return b.falseNode
}

// Constant returns True or False depending on v.
func (b *Builder) Constant(v bool) Node {
	if v {
		return b.trueNode
	}
	return b.falseNode
}

// Variable returns the diagram ite(i, True, False) for variable index i.
// Repeated calls with the same i return the identical Node.
func (b *Builder) Variable(i int) Node {
	if i < 0 {
		b.err = newInvalidInput("Variable", "negative variable index %d", i)
		return nil
	}
	if n, ok := b.variables[i]; ok {
		return n
	}
	n := b.make(i, b.trueNode, b.falseNode)
	b.variables[i] = n
	return n
}

// Stats returns a short human-readable summary of node-table and cache
// occupancy.
func (b *Builder) Stats() string {
	return formatStats(b)
}

// logger returns the configured logrus entry, defaulting to an entry on a
// fresh logrus logger if somehow unset (defensive only; New always sets one).
func (b *Builder) logger() *logrus.Entry {
	if b.cfg == nil || b.cfg.logger == nil {
		l := logrus.New()
		return logrus.NewEntry(l)
	}
	return b.cfg.logger
}
