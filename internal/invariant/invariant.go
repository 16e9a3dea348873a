// Package invariant holds the debug-mode assertion helpers used by the
// rrbtree package's node-construction sites. It knows nothing about the
// tree's element type: callers describe a node's shape in terms of plain
// ints so the same checks work for leaves and internal nodes of any height.
package invariant

import "fmt"

// Enabled gates the checks in this package. It is false by default so that
// production builds pay nothing for them; tests that want the extra
// confidence set it to true, typically in TestMain.
var Enabled = false

// NodeShape is the structural information one internal-node-construction
// site needs to validate against spec.md §3 and §7: ranges strictly
// increasing with the cumulative-size relation, fan-out within bound, and
// (for nodes produced by a rebalance) the relaxation tolerance respected.
type NodeShape struct {
	Ranges     []int // cumulative size table, as stored on the node
	ChildSizes []int // size(child) for each slot, same length as Ranges
	MaxFanout  int   // B
	ExtraSteps int   // -1 to skip the relaxation check (e.g. leaves)
	Tolerance  int   // E
}

// Check validates s and returns a descriptive error on the first violation
// found, or nil if s is well formed. Callers gate the call itself on
// Enabled; Check does not check Enabled so it can also be used directly in
// tests that want an unconditional assertion.
func (s NodeShape) Check() error {
	if len(s.Ranges) == 0 {
		return fmt.Errorf("invariant: node has zero slots")
	}
	if len(s.Ranges) > s.MaxFanout {
		return fmt.Errorf("invariant: fan-out %d exceeds B=%d", len(s.Ranges), s.MaxFanout)
	}
	if len(s.ChildSizes) != len(s.Ranges) {
		return fmt.Errorf("invariant: ranges length %d != child count %d", len(s.Ranges), len(s.ChildSizes))
	}
	running := 0
	prev := 0
	for i, sz := range s.ChildSizes {
		if sz <= 0 {
			return fmt.Errorf("invariant: child %d has non-positive size %d", i, sz)
		}
		running += sz
		if s.Ranges[i] != running {
			return fmt.Errorf("invariant: ranges[%d]=%d, want cumulative %d", i, s.Ranges[i], running)
		}
		if s.Ranges[i] <= prev {
			return fmt.Errorf("invariant: ranges not strictly increasing at %d (%d <= %d)", i, s.Ranges[i], prev)
		}
		prev = s.Ranges[i]
	}
	if s.ExtraSteps >= 0 && s.ExtraSteps > s.Tolerance {
		return fmt.Errorf("invariant: extra_steps %d exceeds tolerance E=%d", s.ExtraSteps, s.Tolerance)
	}
	return nil
}

// Assert panics if s is malformed and Enabled is true. It is a no-op
// otherwise. It is meant to sit at node-construction sites per spec.md §7,
// which asks for debug-mode assertions there.
func Assert(s NodeShape) {
	if !Enabled {
		return
	}
	if err := s.Check(); err != nil {
		panic(err)
	}
}

// LeafShape describes a leaf for the "length never exceeds B, non-empty"
// half of §3's invariant table.
type LeafShape struct {
	Len       int
	MaxLength int
}

func (s LeafShape) Check() error {
	if s.Len <= 0 {
		return fmt.Errorf("invariant: leaf has non-positive length %d", s.Len)
	}
	if s.Len > s.MaxLength {
		return fmt.Errorf("invariant: leaf length %d exceeds B=%d", s.Len, s.MaxLength)
	}
	return nil
}

func AssertLeaf(s LeafShape) {
	if !Enabled {
		return
	}
	if err := s.Check(); err != nil {
		panic(err)
	}
}
