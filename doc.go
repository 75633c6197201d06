// Package skillpath plans skill acquisition over a small prerequisite DAG.
//
// The module is organized as one package per concern:
//
//	core/       : thread-safe directed graph holding prerequisite edges
//	dfs/        : DFS, cycle detection and topological sort over core
//	skill/      : Skill, Graph, validator, closure cost resolver, Plan
//	catalogue/  : YAML catalogue loader and the embedded default catalogue
//	config/     : run constraints and market scenarios (TOML)
//	pathopt/    : time × complexity budgeted value-maximizing DP
//	montecarlo/ : value-uncertainty simulation of a fixed plan
//	critical/   : exhaustive ranking of critical-skill orders
//	pivot/      : cheapest Basic-skill set reaching an adaptability threshold
//	horizon/    : discounted, scenario-weighted next-skill recommender
//	planner/    : engine running the solvers with logging and fan-out
//	cmd/skillpath : command-line host printing JSON results
//
// Typical flow:
//
//	g, err := catalogue.Open("")          // load + validate
//	c := config.Default()
//	e, err := planner.New(g, c)
//	report, err := e.RunAll(ctx)
//
// Every solver is a pure function of (validated graph, options); none keeps
// state between calls.
package skillpath
