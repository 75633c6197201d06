// Package dfs implements depth-first traversal, cycle detection and
// topological sort on a directed core.Graph whose edges point from a
// dependent to its prerequisite.
//
// What:
//
//   - DFS(g, start): post-order traversal of everything start depends on,
//     with cancellation and a pre-order hook.
//   - DetectCycles(g): every loop closed by a back-edge, each rotated to
//     start at its smallest id and listed in ascending signature order.
//   - TopologicalSort(g): all vertices, each after everything it depends
//     on; ErrCycleDetected otherwise.
//
// Visitation uses three colors (White, Gray, Black). Roots are taken from
// g.Vertices() and neighbors from g.NeighborIDs(), both sorted, so every
// result is deterministic for a given graph.
//
// Complexity:
//
//   - DFS:             Time O(V+E),       Memory O(V)
//   - DetectCycles:    Time O(V+E + C·L), Memory O(V + L_max)
//   - TopologicalSort: Time O(V+E),       Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex id not in graph
//   - ErrCycleDetected        TopologicalSort met a back-edge
//   - context.Canceled        traversal canceled via WithContext
//   - hook errors             propagated from WithOnVisit
package dfs
