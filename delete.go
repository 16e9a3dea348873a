package rrbtree

// Delete returns a new tree with the element at index i removed; all later
// elements shift down by one (spec.md §4.6). It is built from Split and
// Concat, the same two primitives that give it its logarithmic cost: cut
// out the singleton at i, then rejoin the two halves.
func (t *Tree[E]) Delete(i int) (*Tree[E], error) {
	n := t.Size()
	if i < 0 || i >= n {
		return nil, &IndexError{Op: "Delete", Index: i, Size: n}
	}
	before, _, err := t.Split(i)
	if err != nil {
		return nil, err
	}
	_, after, err := t.Split(i + 1)
	if err != nil {
		return nil, err
	}
	return before.Concat(after), nil
}
