package dfs

import (
	"context"
	"errors"
)

// Visitation states.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex is not in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that TopologicalSort met a back-edge.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures DFS and TopologicalSort.
type Option func(*Options)

// Options holds the traversal settings.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, runs when a vertex is discovered (pre-order).
	// Returning an error aborts the traversal.
	OnVisit func(id string) error
}

// DefaultOptions returns a Background context and no hook.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// Result is the outcome of DFS.
type Result struct {
	// Order lists the reached vertices in finish order: every vertex after
	// all of its reached prerequisites.
	Order []string

	// Visited flags every reached vertex, start included.
	Visited map[string]bool
}
