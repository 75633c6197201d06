// Package core provides the thread-safe directed graph that stores the
// prerequisite relation of a skill catalogue.
//
// Every edge points from a dependent skill to one of its prerequisites:
//
//	S4 ──► S1 ──► H1
//	 │      └───► H2
//	 └──► H3
//
// The graph keeps both directions of the relation in nested maps, so forward
// (prerequisites) and reverse (dependents) lookups are O(1) to locate and
// O(d log d) to return sorted.
//
// Policy:
//
//   - Vertex ids are non-empty strings; AddVertex is idempotent.
//   - AddEdge creates missing endpoints, so a dependent may name a
//     prerequisite that has no row of its own; callers that require every
//     endpoint to be known check that themselves.
//   - Self-loops and parallel edges are rejected.
//   - Vertices, NeighborIDs and InNeighborIDs return sorted results, so every
//     traversal built on them is deterministic.
//
// Concurrency:
//
//	A single sync.RWMutex guards all maps. Mutations take the write lock,
//	queries the read lock; a fully built graph is safe for any number of
//	concurrent readers.
//
// Errors:
//
//	ErrEmptyVertexID       - zero-length vertex id.
//	ErrVertexNotFound      - query on a missing vertex.
//	ErrLoopNotAllowed      - AddEdge(v, v).
//	ErrMultiEdgeNotAllowed - a second edge between the same endpoints.
package core
