// Package partition: the Assignment type pairing the partition list with its
// node→index reverse map. All mutators update both structures together.
package partition

import "fmt"

// Assignment holds the mutable partition state shared by the refinement
// phases: an ordered list of node sets plus the reverse index. Partitions may
// become empty during refinement; DropEmpty filters them at the end.
//
// Assignment is not safe for concurrent use; the pipeline is sequential.
type Assignment struct {
	parts []NodeSet
	index map[string]int
}

// NewAssignment builds an Assignment from the given partition list, taking
// ownership of the sets. Returns ErrOverlap if any node appears in more than
// one partition.
// Complexity: O(V).
func NewAssignment(parts []NodeSet) (*Assignment, error) {
	a := &Assignment{
		parts: parts,
		index: make(map[string]int),
	}
	for i, p := range parts {
		for id := range p {
			if prev, dup := a.index[id]; dup {
				return nil, fmt.Errorf("%w: %q in partitions %d and %d", ErrOverlap, id, prev, i)
			}
			a.index[id] = i
		}
	}

	return a, nil
}

// Len returns the number of partitions, including empty ones.
func (a *Assignment) Len() int { return len(a.parts) }

// Part returns the live node set at index i. Callers must treat it as
// read-only; mutation goes through Move/ReplacePair.
func (a *Assignment) Part(i int) NodeSet { return a.parts[i] }

// Size returns the number of nodes in partition i.
func (a *Assignment) Size(i int) int { return len(a.parts[i]) }

// IndexOf returns the partition index currently holding id.
func (a *Assignment) IndexOf(id string) (int, bool) {
	i, ok := a.index[id]

	return i, ok
}

// Move relocates one node to the target partition, updating the set list and
// the reverse map as a single step.
// Returns ErrNodeUnassigned if id is unknown and ErrBadIndex for an invalid
// target.
// Complexity: O(1).
func (a *Assignment) Move(id string, target int) error {
	if target < 0 || target >= len(a.parts) {
		return fmt.Errorf("%w: %d", ErrBadIndex, target)
	}
	cur, ok := a.index[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeUnassigned, id)
	}
	if cur == target {
		return nil
	}

	delete(a.parts[cur], id)
	a.parts[target][id] = struct{}{}
	a.index[id] = target

	return nil
}

// ReplacePair swaps in refined contents for partitions i and j, re-indexing
// exactly the affected nodes. The union of (a, b) must equal the union of the
// previous contents of (i, j); the pairwise refiner only redistributes nodes
// between the two sides, so this holds by construction.
// Returns ErrBadIndex for invalid indices.
// Complexity: O(|a| + |b|).
func (s *Assignment) ReplacePair(i, j int, a, b NodeSet) error {
	if i < 0 || i >= len(s.parts) || j < 0 || j >= len(s.parts) || i == j {
		return fmt.Errorf("%w: (%d, %d)", ErrBadIndex, i, j)
	}

	s.parts[i] = a
	s.parts[j] = b
	for id := range a {
		s.index[id] = i
	}
	for id := range b {
		s.index[id] = j
	}

	return nil
}

// Parts returns the live partition list. Read-only by convention.
func (a *Assignment) Parts() []NodeSet { return a.parts }

// DropEmpty returns the non-empty partitions in index order. The Assignment
// itself is left untouched; this is the finalization step.
// Complexity: O(k).
func (a *Assignment) DropEmpty() []NodeSet {
	out := make([]NodeSet, 0, len(a.parts))
	for _, p := range a.parts {
		if len(p) > 0 {
			out = append(out, p)
		}
	}

	return out
}
