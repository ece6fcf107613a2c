package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingNode matches errors for edges that reference an identity
	// that is not a node of the graph.
	ErrMissingNode = errors.New("edge references missing node")

	// ErrCyclic matches errors for DAG-only queries run on a graph with a
	// cycle.
	ErrCyclic = errors.New("graph has a cycle")
)

// MissingNodeError is returned by New and FromValues when an edge endpoint
// is not in the node set.
type MissingNodeError[K comparable] struct {
	Edge Edge[K]
	ID   K // the missing endpoint
}

func (e *MissingNodeError[K]) Error() string {
	return fmt.Sprintf("edge %v: node %v not found", e.Edge, e.ID)
}

func (e *MissingNodeError[K]) Is(target error) bool {
	return target == ErrMissingNode
}

// CyclicGraphError is returned by TopoSort and CountPaths when the nodes
// cannot be put in topological order. Nodes lists the ones left unordered:
// every cycle, plus anything only reachable through one.
type CyclicGraphError[K comparable] struct {
	Nodes []K
}

func (e *CyclicGraphError[K]) Error() string {
	return fmt.Sprintf("graph has a cycle through %d nodes: %v", len(e.Nodes), e.Nodes)
}

func (e *CyclicGraphError[K]) Is(target error) bool {
	return target == ErrCyclic
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
