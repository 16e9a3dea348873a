package rrbtree

// Append returns a new tree with x added after t's last element (spec.md
// §4.3). It is Concat against a singleton, which keeps the append path
// exercising the exact same balance and promotion logic that concat uses
// generally rather than a bespoke right-spine fast path.
func (t *Tree[E]) Append(x E) *Tree[E] {
	return t.Concat(singleton[E](x, t.cfg))
}
