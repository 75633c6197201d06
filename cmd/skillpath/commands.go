package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/skillpath/catalogue"
	"github.com/katalvlaran/skillpath/config"
	"github.com/katalvlaran/skillpath/critical"
	"github.com/katalvlaran/skillpath/planner"
)

var version = "0.1.0-dev"

// flags shared by every subcommand.
type flags struct {
	catalogue string
	config    string
	logMode   string
	onDemand  bool
	workers   int
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:           "skillpath",
		Short:         "Plan skill acquisition paths under time, complexity and horizon budgets",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&f.catalogue, "catalogue", "", "YAML skill catalogue (default: embedded catalogue)")
	pf.StringVar(&f.config, "config", "", "TOML constraint configuration (default: built-in defaults)")
	pf.StringVar(&f.logMode, "log", "none", "log mode: none, dev or prod")
	pf.BoolVar(&f.onDemand, "acquire-on-demand", false, "charge external prerequisites in the critical-order search")
	pf.IntVar(&f.workers, "workers", 1, "goroutines for Monte Carlo trials")

	root.AddCommand(
		&cobra.Command{
			Use:   "validate",
			Short: "Load and validate the catalogue and configuration",
			Args:  cobra.NoArgs,
			RunE: withEngine(f, func(e *planner.Engine, out io.Writer) error {
				return writeJSON(out, e.Graph().Stats())
			}),
		},
		&cobra.Command{
			Use:   "optimize",
			Short: "Maximize value toward the target skill within time and complexity budgets",
			Args:  cobra.NoArgs,
			RunE: withEngine(f, func(e *planner.Engine, out io.Writer) error {
				res, err := e.Optimize()
				if err != nil {
					return err
				}

				return writeJSON(out, res)
			}),
		},
		&cobra.Command{
			Use:   "simulate",
			Short: "Optimize, then estimate the plan's value distribution by Monte Carlo",
			Args:  cobra.NoArgs,
			RunE: withEngine(f, func(e *planner.Engine, out io.Writer) error {
				res, err := e.Optimize()
				if err != nil {
					return err
				}
				if !res.Plan.Feasible {
					return writeJSON(out, res)
				}
				d, err := e.Simulate(res.Plan)
				if err != nil {
					return err
				}

				return writeJSON(out, d)
			}),
		},
		&cobra.Command{
			Use:   "critical",
			Short: "Rank acquisition orders of the critical skills by total wait",
			Args:  cobra.NoArgs,
			RunE: withEngine(f, func(e *planner.Engine, out io.Writer) error {
				res, err := e.Critical()
				if err != nil {
					return err
				}

				return writeJSON(out, res)
			}),
		},
		&cobra.Command{
			Use:   "pivot",
			Short: "Find the fastest set of basic skills reaching the adaptability threshold",
			Args:  cobra.NoArgs,
			RunE: withEngine(f, func(e *planner.Engine, out io.Writer) error {
				res, err := e.Pivot()
				if err != nil {
					return err
				}

				return writeJSON(out, res)
			}),
		},
		&cobra.Command{
			Use:   "recommend",
			Short: "Recommend the next skills over the planning horizon",
			Args:  cobra.NoArgs,
			RunE: withEngine(f, func(e *planner.Engine, out io.Writer) error {
				res, err := e.Recommend()
				if err != nil {
					return err
				}

				return writeJSON(out, res)
			}),
		},
		&cobra.Command{
			Use:   "all",
			Short: "Run every solver concurrently and print a combined report",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runEngine(cmd, f, func(e *planner.Engine, out io.Writer) error {
					r, err := e.RunAll(cmd.Context())
					if err != nil {
						return err
					}

					return writeJSON(out, r)
				})
			},
		},
	)

	return root
}

// withEngine adapts fn to a cobra RunE.
func withEngine(f *flags, fn func(*planner.Engine, io.Writer) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		return runEngine(cmd, f, fn)
	}
}

// runEngine builds the logger, graph, configuration and engine, then runs fn.
func runEngine(cmd *cobra.Command, f *flags, fn func(*planner.Engine, io.Writer) error) error {
	log, err := planner.NewLogger(f.logMode)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	g, err := catalogue.Open(f.catalogue)
	if err != nil {
		log.Error("catalogue rejected", zap.String("path", f.catalogue), zap.Error(err))

		return err
	}
	c, err := config.Load(f.config)
	if err != nil {
		log.Error("configuration rejected", zap.String("path", f.config), zap.Error(err))

		return err
	}

	policy := critical.PreSatisfied
	if f.onDemand {
		policy = critical.AcquireOnDemand
	}
	e, err := planner.New(g, c,
		planner.WithLogger(log),
		planner.WithWorkers(f.workers),
		planner.WithExternalPolicy(policy),
	)
	if err != nil {
		return err
	}

	return fn(e, cmd.OutOrStdout())
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
