// Copyright (c) 2024 Silvano DAL ZILIO
//
// MIT License

package robdd

import "github.com/sirupsen/logrus"

// configs stores the values of the parameters used when building a new
// Builder. There is no garbage collection or node-table resizing policy to
// configure here: a Builder's node table and caches only ever grow, and
// nodes are reclaimed by the Go garbage collector once unreachable.
type configs struct {
	tableHint int // initial capacity hint for the node table
	cacheHint int // initial capacity hint for operation caches
	logger    *logrus.Entry
}

func defaultConfigs() *configs {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return &configs{
		tableHint: 64,
		cacheHint: 64,
		logger:    logrus.NewEntry(logger),
	}
}

// Option configures a Builder at construction time using the functional
// options pattern.
type Option func(*configs)

// WithTableHint sets a preferred initial capacity for the node table. It is
// only a hint: the table grows as needed regardless of this value.
func WithTableHint(n int) Option {
	return func(c *configs) {
		if n > 0 {
			c.tableHint = n
		}
	}
}

// WithCacheHint sets a preferred initial capacity for the operation
// memoization caches (not, and, restrict, and the two pseudo-Boolean
// caches). It is only a hint.
func WithCacheHint(n int) Option {
	return func(c *configs) {
		if n > 0 {
			c.cacheHint = n
		}
	}
}

// WithLogger installs a structured logger used, at logrus.TraceLevel, to
// report every newly allocated node together with its variable and
// identity. Absent this option, a logger at WarnLevel is used.
func WithLogger(entry *logrus.Entry) Option {
	return func(c *configs) {
		if entry != nil {
			c.logger = entry
		}
	}
}
