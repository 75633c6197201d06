package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex id is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is one directed dependency: From requires To.
type Edge struct {
	// ID is "e1", "e2", ... in insertion order.
	ID string

	// From is the dependent vertex.
	From string

	// To is the prerequisite vertex.
	To string
}

// Graph is a directed, unweighted simple graph.
//
// out[from][to] and in[to][from] both hold the id of the single edge
// from → to.
type Graph struct {
	mu sync.RWMutex

	nextEdgeID uint64
	vertices   map[string]struct{}
	edges      map[string]*Edge
	out        map[string]map[string]string
	in         map[string]map[string]string
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[string]struct{}),
		edges:    make(map[string]*Edge),
		out:      make(map[string]map[string]string),
		in:       make(map[string]map[string]string),
	}
}
