// Package skill is the data layer of the skill-path engine: the Skill and
// Graph model, the Graph Validator, the Reachability Cost Resolver and the
// Acquisition Plan value returned by every solver.
//
// A Graph maps ids to Skills and induces the edge relation
// skill → prerequisite:
//
//	    S6
//	    │
//	    S4───┐
//	    │    │
//	    S1   H3
//	   ╱  ╲
//	 H1    H2
//
// Lifecycle:
//
//  1. NewGraph(records) rejects malformed rows (ErrMalformedCatalogue).
//  2. Validate() rejects dangling prerequisites and cycles, reporting the
//     exact loop, and caches a deterministic topological order.
//  3. Solvers call Ready() and fail fast with ErrGraphNotValidated or the
//     validation error.
//
// After Validate the Graph is read-only and safe for concurrent readers.
// Closure(id) returns the deduplicated cost of legally holding id; NewIndex
// exposes the bitmask view used by DP solvers (≤ 64 skills). Prerequisite
// edges live in a core.Graph; the checks and traversals run through dfs.
//
// Errors:
//
//	ErrMalformedCatalogue   - a record was rejected at load time.
//	ErrCycleDetected        - the prerequisite relation contains a cycle.
//	ErrDanglingPrerequisite - a prerequisite id is not a key of the graph.
//	ErrUnknownSkill         - a caller referenced an id absent from the graph.
//	ErrSizeLimitExceeded    - an exhaustive component was invoked on an oversized set.
//	ErrGraphNotValidated    - a solver was invoked before Validate succeeded.
package skill
