// Package partition: domain types and sentinel errors.
package partition

import "errors"

// Sentinel errors for partition state mutation.
var (
	// ErrOverlap indicates a node appeared in more than one partition.
	ErrOverlap = errors.New("partition: node assigned to multiple partitions")

	// ErrNodeUnassigned indicates a node is not present in the assignment.
	ErrNodeUnassigned = errors.New("partition: node not assigned")

	// ErrBadIndex indicates a partition index outside the assignment range.
	ErrBadIndex = errors.New("partition: index out of range")
)

// NodeSet is a set of node IDs forming one partition.
type NodeSet map[string]struct{}

// NewNodeSet builds a NodeSet from the given IDs.
func NewNodeSet(ids ...string) NodeSet {
	s := make(NodeSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

// Has reports set membership.
func (s NodeSet) Has(id string) bool {
	_, ok := s[id]

	return ok
}

// Clone returns an independent copy of the set.
func (s NodeSet) Clone() NodeSet {
	c := make(NodeSet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}

	return c
}

// Pair is an unordered pair of partition indices, normalized to I < J.
type Pair struct {
	I int
	J int
}
