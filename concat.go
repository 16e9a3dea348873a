package rrbtree

// Concat returns a new tree holding t's elements followed by other's,
// sharing structure with both arguments (spec.md §4.4). Concat never
// mutates t or other.
func (t *Tree[E]) Concat(other *Tree[E]) *Tree[E] {
	if t.Size() == 0 {
		return other
	}
	if other.Size() == 0 {
		return t
	}
	mid, midLevel := doConcat[E](t.root, t.h, other.root, other.h, t.cfg)
	root, h := wrapSingleRoot[E](mid, midLevel, t.cfg)
	return &Tree[E]{h: h, root: root, cfg: t.cfg}
}

// doConcat merges the right spine of el (at level hl) with the left spine
// of er (at level hr), returning the merged boundary as a list of sibling
// entries plus the level those entries live at. The level of the result is
// usually one more than the level of whichever side stopped recursing, but
// can be higher still: when a deeper call already had to add a level to
// hold its own overflow (the "promoted" case in spec.md §9), the merged
// entries here are lifted one level too, and the caller must splice their
// children rather than the entries themselves.
func doConcat[E any](el entry[E], hl int, er entry[E], hr int, cfg config) ([]entry[E], int) {
	switch {
	case hl == 1 && hr == 1:
		combined := append(append([]E{}, el.(*leaf[E]).elements...), er.(*leaf[E]).elements...)
		return chunkLeaves[E](combined, cfg), 1

	case hl > hr:
		mid, midLevel := doConcat[E](rhandChild[E](el, hl), hl-1, er, hr, cfg)
		mid = liftTo[E](mid, midLevel, hl-1)
		children := append(append([]entry[E]{}, lbodySlots[E](el, hl)...), mid...)
		return makeTree[E](children, hl-1, cfg)

	case hl < hr:
		mid, midLevel := doConcat[E](el, hl, lhandChild[E](er, hr), hr-1, cfg)
		mid = liftTo[E](mid, midLevel, hr-1)
		children := append(append([]entry[E]{}, mid...), rbodySlots[E](er, hr)...)
		return makeTree[E](children, hr-1, cfg)

	default: // hl == hr > 1
		mid, midLevel := doConcat[E](rhandChild[E](el, hl), hl-1, lhandChild[E](er, hr), hr-1, cfg)
		mid = liftTo[E](mid, midLevel, hl-1)
		children := append(append(append([]entry[E]{}, lbodySlots[E](el, hl)...), mid...), rbodySlots[E](er, hr)...)
		return makeTree[E](children, hl-1, cfg)
	}
}

// makeTree wraps children (all at the given level) into as few level+1
// parents as balance allows, cascading to level+2 and beyond only if a
// single round of grouping still leaves more parents than one node can
// hold. Ordinary concats never cascade past one extra level; the loop
// exists so a long chain of unbalanced concats still terminates correctly
// instead of overflowing a node's fan-out.
func makeTree[E any](children []entry[E], level int, cfg config) ([]entry[E], int) {
	balanced := balance[E](children, cfg)
	parents := chunkEntries[E](balanced, cfg)
	if len(parents) <= cfg.branchFactor() {
		return parents, level + 1
	}
	return makeTree[E](parents, level+1, cfg)
}

// chunkEntries groups xs into nodes of at most B children each, in order.
func chunkEntries[E any](xs []entry[E], cfg config) []entry[E] {
	if len(xs) == 0 {
		return nil
	}
	b := cfg.branchFactor()
	out := make([]entry[E], 0, (len(xs)+b-1)/b)
	for start := 0; start < len(xs); start += b {
		end := start + b
		if end > len(xs) {
			end = len(xs)
		}
		out = append(out, newNode[E](xs[start:end], cfg))
	}
	return out
}

// chunkLeaves groups a raw run of elements into leaves of at most B
// elements each, used by doConcat's leaf-leaf base case (at most two
// leaves' worth of elements, so this never needs balance's redistribution).
func chunkLeaves[E any](xs []E, cfg config) []entry[E] {
	if len(xs) == 0 {
		return nil
	}
	b := cfg.branchFactor()
	out := make([]entry[E], 0, (len(xs)+b-1)/b)
	for start := 0; start < len(xs); start += b {
		end := start + b
		if end > len(xs) {
			end = len(xs)
		}
		out = append(out, newLeaf[E](append([]E{}, xs[start:end]...), cfg))
	}
	return out
}

// liftTo brings a small list of entries from fromLevel down to toLevel by
// repeatedly flattening: each round replaces the list with the
// concatenation of its members' own children, which lowers the list's
// nominal level by one step closer to toLevel. Despite the name, it never
// raises a level; read it as "reconcile mid's level with what the caller's
// body list expects" (spec.md §9's promoted-concat case).
func liftTo[E any](xs []entry[E], fromLevel, toLevel int) []entry[E] {
	for fromLevel > toLevel {
		var flat []entry[E]
		for _, x := range xs {
			flat = append(flat, x.(*node[E]).slots...)
		}
		xs = flat
		fromLevel--
	}
	return xs
}

// rhandChild returns el's rightmost child, or el itself at level 1 if el
// is a leaf (a leaf has no children to descend into further).
func rhandChild[E any](el entry[E], level int) entry[E] {
	if level == 1 {
		return el
	}
	nd := el.(*node[E])
	return nd.slots[len(nd.slots)-1]
}

func lhandChild[E any](er entry[E], level int) entry[E] {
	if level == 1 {
		return er
	}
	nd := er.(*node[E])
	return nd.slots[0]
}

// lbodySlots returns el's children other than the rightmost, or nil if el
// is a leaf (the leaf itself is entirely consumed by the merge, leaving no
// separate body).
func lbodySlots[E any](el entry[E], level int) []entry[E] {
	if level == 1 {
		return nil
	}
	nd := el.(*node[E])
	return nd.slots[:len(nd.slots)-1]
}

func rbodySlots[E any](er entry[E], level int) []entry[E] {
	if level == 1 {
		return nil
	}
	nd := er.(*node[E])
	return nd.slots[1:]
}

// wrapSingleRoot ensures Concat's result has exactly one root node: if
// makeTree's last round already produced a single entry, it's used as-is;
// otherwise the leftover siblings are wrapped in one more level.
func wrapSingleRoot[E any](xs []entry[E], level int, cfg config) (*node[E], int) {
	if len(xs) == 1 {
		return xs[0].(*node[E]), level
	}
	return newNode[E](xs, cfg), level + 1
}
