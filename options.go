package rrbtree

// config holds the two construction-time constants of §6: the branching
// exponent M (B = 2^M) and the relaxation tolerance E used by balance.
// Changing either never changes the semantics of any operation, only the
// tree's depth and how eagerly concat rebalances — see spec.md §6.
type config struct {
	m int
	e int
}

func (c config) branchFactor() int { return 1 << uint(c.m) }

// Option configures a Tree at construction time, following the
// functional-options pattern used throughout this pack's node construction
// (see juanpablocruz-maep/pkg/node/options.go's NodeOption/NewWithOptions).
type Option func(*config)

// WithBranchingExponent sets M, the number of index bits consumed per level
// of radix descent (B = 2^M). The reference setting is 5 in production, 2
// for test clarity (spec.md §6).
func WithBranchingExponent(m int) Option {
	return func(c *config) { c.m = m }
}

// WithRelaxationTolerance sets E, the maximum number of excess children a
// rebalanced node may carry above the ideal count before balance must act
// further. The RRB paper default is 1.
func WithRelaxationTolerance(e int) Option {
	return func(c *config) { c.e = e }
}

func defaultConfig() config {
	return config{m: 5, e: 1}
}

// New returns an empty tree configured by opts. Defaults are M=5, E=1.
func New[E any](opts ...Option) *Tree[E] {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return emptyTree[E](cfg)
}

// Empty returns an empty tree with the default configuration. It is the
// zero-argument convenience form of New, mirroring spec.md §6's
// `empty() -> Tree`.
func Empty[E any]() *Tree[E] {
	return New[E]()
}
