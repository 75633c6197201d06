// Package planner is the host-facing facade over the skill-path solvers.
//
// An Engine owns one validated Graph and one Constraints value for the whole
// run. Each method invokes exactly one solver with options derived from the
// constraints and returns that solver's result as a value; nothing is
// persisted or printed. RunAll fans the independent solvers out with an
// errgroup and gathers a Report stamped with a fresh run id:
//
//	            ┌─ Optimize ─► Simulate
//	New(g, c) ──┼─ Critical ─► SharedPrerequisites
//	            ├─ Pivot
//	            └─ Recommend
//
// The Engine is the only layer that logs. Solvers stay side-effect free.
package planner
