// Package rrbtree implements a Relaxed Radix Balanced (RRB) tree: a
// persistent indexed sequence supporting random access, update, append,
// concatenation, split and delete in logarithmic time, without ever
// mutating structure visible to another tree.
package rrbtree

// Tree is a persistent, indexed sequence of elements of type E. The zero
// value is not usable; construct one with New or Empty.
//
// h is the tree's nominal height: h=1 labels the empty tree, h=2 a tree
// whose root's slots are leaves, and so on (spec.md §3's Height
// convention). root is always a *node[E], even when empty (an empty root
// simply has zero slots).
type Tree[E any] struct {
	h    int
	root *node[E]
	cfg  config
}

func emptyTree[E any](cfg config) *Tree[E] {
	return &Tree[E]{h: 1, root: &node[E]{}, cfg: cfg}
}

func singleton[E any](x E, cfg config) *Tree[E] {
	lf := newLeaf[E]([]E{x}, cfg)
	nd := newNode[E]([]entry[E]{lf}, cfg)
	return &Tree[E]{h: 2, root: nd, cfg: cfg}
}

// Size returns the number of elements in t.
func (t *Tree[E]) Size() int {
	return t.root.size()
}

// Get returns the element at index i, or an *IndexError if i is out of
// range (spec.md §4.1).
func (t *Tree[E]) Get(i int) (E, error) {
	var zero E
	n := t.Size()
	if i < 0 || i >= n {
		return zero, &IndexError{Op: "Get", Index: i, Size: n}
	}
	return getEntry[E](t.root, t.h, i, t.cfg), nil
}

func getEntry[E any](e entry[E], h, i int, cfg config) E {
	if lf, ok := e.(*leaf[E]); ok {
		return lf.elements[i]
	}
	nd := e.(*node[E])
	k, newI := findBranch(nd.ranges, h, i, cfg)
	return getEntry[E](nd.slots[k], h-1, newI, cfg)
}

// Update returns a new tree with the element at index i replaced by x. All
// other elements, and the argument tree t, are unchanged (spec.md §4.2).
func (t *Tree[E]) Update(i int, x E) (*Tree[E], error) {
	n := t.Size()
	if i < 0 || i >= n {
		return nil, &IndexError{Op: "Update", Index: i, Size: n}
	}
	newRoot := updateEntry[E](t.root, t.h, i, x, t.cfg).(*node[E])
	return &Tree[E]{h: t.h, root: newRoot, cfg: t.cfg}, nil
}

func updateEntry[E any](e entry[E], h, i int, x E, cfg config) entry[E] {
	if lf, ok := e.(*leaf[E]); ok {
		newElems := append([]E(nil), lf.elements...)
		newElems[i] = x
		return newLeaf[E](newElems, cfg)
	}
	nd := e.(*node[E])
	k, newI := findBranch(nd.ranges, h, i, cfg)
	newSlots := append([]entry[E](nil), nd.slots...)
	newSlots[k] = updateEntry[E](nd.slots[k], h-1, newI, x, cfg)
	return newNodeWithRanges[E](newSlots, nd.ranges, cfg)
}

// ForEach calls fn with every element of t in order, stopping early if fn
// returns false. It is a read-only traversal used internally by tests and
// the cmd/rrbtree demo, not a general collection-adapter surface (spec.md
// §1 scopes those out of the core).
func (t *Tree[E]) ForEach(fn func(E) bool) {
	forEachEntry[E](t.root, fn)
}

func forEachEntry[E any](e entry[E], fn func(E) bool) bool {
	if lf, ok := e.(*leaf[E]); ok {
		for _, x := range lf.elements {
			if !fn(x) {
				return false
			}
		}
		return true
	}
	nd := e.(*node[E])
	for _, c := range nd.slots {
		if !forEachEntry(c, fn) {
			return false
		}
	}
	return true
}

// Equal reports whether t and other hold the same elements in the same
// order, according to eq. Two structurally-equal trees built by different
// operation sequences are not guaranteed to share nodes, so this compares
// element sequences rather than pointer identity.
func (t *Tree[E]) Equal(other *Tree[E], eq func(a, b E) bool) bool {
	if t.Size() != other.Size() {
		return false
	}
	equal := true
	i := 0
	t.ForEach(func(a E) bool {
		b, _ := other.Get(i)
		i++
		if !eq(a, b) {
			equal = false
			return false
		}
		return true
	})
	return equal
}
