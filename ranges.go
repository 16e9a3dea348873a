package rrbtree

// findBranch implements spec.md §4.1's radix step plus the linear-scan
// correction: it returns the slot index k in a node's ranges table that
// owns global-within-this-node offset i, and the offset new_i to carry into
// that child.
//
// radix = i >> (M*(h-1)) is the branch i would land in if every left
// sibling were exactly full. Because a relaxed sibling can only be smaller
// than full, never larger, the true branch is never to the left of radix,
// so scanning forward from there is always correct and touches at most a
// small constant number of extra slots (bounded by the relaxation
// tolerance E maintained by balance).
func findBranch(ranges []int, h, i int, cfg config) (k, newI int) {
	radix := i >> uint(cfg.m*(h-1))
	k = radix
	for ranges[k] <= i {
		k++
	}
	if k == 0 {
		newI = i
	} else {
		newI = i - ranges[k-1]
	}
	return k, newI
}

// ideal is the minimum number of children needed to hold p elements at B
// per child: ⌈p/B⌉, computed as ((p-1)>>M)+1 per spec.md §4.4.
func ideal(p int, cfg config) int {
	if p == 0 {
		return 0
	}
	return ((p - 1) >> uint(cfg.m)) + 1
}

// extraSteps is a-ideal(p), the excess sibling count balance must reduce to
// at most E.
func extraSteps[E any](xs []entry[E], cfg config) int {
	p := 0
	for _, x := range xs {
		p += x.size()
	}
	return len(xs) - ideal(p, cfg)
}
