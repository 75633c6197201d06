package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/skillpath/config"
	"github.com/katalvlaran/skillpath/critical"
	"github.com/katalvlaran/skillpath/horizon"
	"github.com/katalvlaran/skillpath/montecarlo"
	"github.com/katalvlaran/skillpath/pathopt"
	"github.com/katalvlaran/skillpath/pivot"
	"github.com/katalvlaran/skillpath/skill"
)

// Engine runs solvers against one validated graph and configuration.
// It holds no mutable state after New and is safe for concurrent use.
type Engine struct {
	g       *skill.Graph
	c       config.Constraints
	log     *zap.Logger
	workers int
	policy  critical.ExternalPolicy
	noise   montecarlo.NoiseModel
}

// Option customizes an Engine.
type Option func(*Engine)

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithWorkers bounds the goroutines used for Monte Carlo trials.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}

// WithExternalPolicy selects how the critical-order search charges
// prerequisites outside the critical set.
func WithExternalPolicy(p critical.ExternalPolicy) Option {
	return func(e *Engine) { e.policy = p }
}

// WithNoise replaces the default uniform noise of the simulator.
func WithNoise(m montecarlo.NoiseModel) Option {
	return func(e *Engine) { e.noise = m }
}

// New admits g and c. The graph must have passed Validate; the constraints
// must be in range and reference only skills of g. Any failure here is
// fatal to the run.
func New(g *skill.Graph, c config.Constraints, opts ...Option) (*Engine, error) {
	e := &Engine{g: g, c: c, log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	if e.noise == nil {
		e.noise = montecarlo.Uniform{Spread: c.NoiseSpread}
	}

	if err := g.Ready(); err != nil {
		e.log.Error("graph rejected", zap.Error(err))

		return nil, fmt.Errorf("planner: New: %w", err)
	}
	if err := c.Validate(); err != nil {
		e.log.Error("constraints rejected", zap.Error(err))

		return nil, fmt.Errorf("planner: New: %w", err)
	}
	if err := c.CheckSkills(g); err != nil {
		e.log.Error("constraints reference unknown skills", zap.Error(err))

		return nil, fmt.Errorf("planner: New: %w", err)
	}
	e.log.Debug("engine ready",
		zap.Int("skills", g.Len()),
		zap.String("target", c.TargetSkillID),
		zap.Strings("critical", c.CriticalSkillIDs),
	)

	return e, nil
}

// Graph returns the admitted graph.
func (e *Engine) Graph() *skill.Graph { return e.g }

// Constraints returns a copy of the run configuration.
func (e *Engine) Constraints() config.Constraints { return e.c }

// PathOptions derives the path optimizer options from the constraints.
func (e *Engine) PathOptions() pathopt.Options {
	return pathopt.Options{
		MaxTime:         e.c.MaxTime,
		MaxComplexity:   e.c.MaxComplexity,
		Relax:           e.c.Relax,
		RelaxTime:       e.c.RelaxTime,
		RelaxComplexity: e.c.RelaxComplexity,
	}
}

// Optimize runs the multi-constraint path optimizer toward the target skill.
func (e *Engine) Optimize() (pathopt.Result, error) {
	var res pathopt.Result
	err := e.timed("optimize", func() (err error) {
		res, err = pathopt.Optimize(e.g, e.c.TargetSkillID, e.PathOptions())

		return err
	}, func() []zap.Field {
		return []zap.Field{
			zap.Bool("feasible", res.Plan.Feasible),
			zap.Bool("relaxed", res.Relaxed),
			zap.Float64("value", res.Plan.TotalValue),
			zap.Float64("time", res.Plan.TotalTime),
			zap.Int("complexity", res.Plan.TotalComplexity),
			zap.Int("states", res.States),
		}
	})

	return res, err
}

// Simulate perturbs the values of plan with the configured trials, seed and
// noise.
func (e *Engine) Simulate(plan skill.Plan) (montecarlo.Distribution, error) {
	var d montecarlo.Distribution
	err := e.timed("simulate", func() (err error) {
		d, err = montecarlo.Simulate(e.g, plan, montecarlo.Options{
			Trials:  e.c.MonteCarloTrials,
			Seed:    e.c.Seed,
			Noise:   e.noise,
			Workers: e.workers,
		})

		return err
	}, func() []zap.Field {
		return []zap.Field{
			zap.Float64("nominal", d.Nominal),
			zap.Float64("mean", d.Mean),
			zap.Float64("stddev", d.StdDev),
		}
	})

	return d, err
}

// Critical ranks the orders of the configured critical set.
func (e *Engine) Critical() (critical.Result, error) {
	var res critical.Result
	err := e.timed("critical", func() (err error) {
		res, err = critical.Search(e.g, e.c.CriticalSkillIDs, critical.Options{Policy: e.policy})

		return err
	}, func() []zap.Field {
		if len(res.Top) == 0 {
			return nil
		}

		return []zap.Field{
			zap.Strings("best", res.Top[0].Order),
			zap.Float64("wait", res.Top[0].TotalWait),
			zap.Int("orders", len(res.Ranked)),
		}
	})

	return res, err
}

// SharedPrerequisites lists prerequisites shared by the critical skills.
func (e *Engine) SharedPrerequisites() ([]critical.Shared, error) {
	return critical.SharedPrerequisites(e.g, e.c.CriticalSkillIDs)
}

// Pivot compares greedy, DP and brute force on the Basic skills.
func (e *Engine) Pivot() (pivot.Result, error) {
	var res pivot.Result
	err := e.timed("pivot", func() (err error) {
		res, err = pivot.Solve(e.g, pivot.Options{MinAdaptability: e.c.MinAdaptability})

		return err
	}, func() []zap.Field {
		return []zap.Field{
			zap.Strings("optimum", res.DP.Plan.IDs),
			zap.Float64("time", res.DP.Plan.TotalTime),
			zap.Bool("greedy_optimal", res.GreedyOptimal),
		}
	})

	return res, err
}

// Recommend runs the horizon recommender from the configured profile.
func (e *Engine) Recommend() (horizon.Result, error) {
	var res horizon.Result
	err := e.timed("recommend", func() (err error) {
		res, err = horizon.Recommend(e.g, horizon.FromConstraints(e.c))

		return err
	}, func() []zap.Field {
		return []zap.Field{
			zap.Strings("next", res.Recommendations),
			zap.Float64("value", res.Optimal.Value),
			zap.Int("states", res.States),
		}
	})

	return res, err
}

// timed runs fn, then logs its duration and either the error or the fields
// returned by summary.
func (e *Engine) timed(name string, fn func() error, summary func() []zap.Field) error {
	start := time.Now()
	err := fn()
	fields := []zap.Field{zap.String("solver", name), zap.Duration("took", time.Since(start))}
	if err != nil {
		e.log.Error("solver failed", append(fields, zap.Error(err))...)

		return err
	}
	e.log.Info("solver finished", append(fields, summary()...)...)

	return nil
}

// Report gathers the results of one RunAll.
type Report struct {
	RunID   string        `json:"run_id"`
	Elapsed time.Duration `json:"elapsed"`
	Stats   skill.Stats   `json:"stats"`

	Optimize pathopt.Result `json:"optimize"`

	// Simulation is nil when the optimizer found no feasible plan.
	Simulation *montecarlo.Distribution `json:"simulation,omitempty"`

	Critical critical.Result  `json:"critical"`
	Shared   []critical.Shared `json:"shared_prerequisites"`
	Pivot    pivot.Result     `json:"pivot"`
	Horizon  horizon.Result   `json:"horizon"`
}

// RunAll executes the independent solvers concurrently. The first failure
// cancels the remaining branches and is returned.
func (e *Engine) RunAll(ctx context.Context) (Report, error) {
	start := time.Now()
	r := Report{RunID: uuid.New().String(), Stats: e.g.Stats()}
	log := e.log.With(zap.String("run_id", r.RunID))
	log.Info("run started")

	eg, gctx := errgroup.WithContext(ctx)
	branch := func(fn func() error) {
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			return fn()
		})
	}

	// Each branch writes only its own Report fields.
	branch(func() error {
		res, err := e.Optimize()
		if err != nil {
			return err
		}
		r.Optimize = res
		if !res.Plan.Feasible {
			log.Warn("no feasible plan; simulation skipped",
				zap.Float64("min_time", res.Minimum.Time),
				zap.Int("min_complexity", res.Minimum.Complexity),
			)

			return nil
		}
		if err = gctx.Err(); err != nil {
			return err
		}
		d, err := e.Simulate(res.Plan)
		if err != nil {
			return err
		}
		r.Simulation = &d

		return nil
	})
	branch(func() error {
		res, err := e.Critical()
		if err != nil {
			return err
		}
		r.Critical = res
		r.Shared, err = e.SharedPrerequisites()

		return err
	})
	branch(func() (err error) {
		r.Pivot, err = e.Pivot()

		return err
	})
	branch(func() (err error) {
		r.Horizon, err = e.Recommend()

		return err
	})

	if err := eg.Wait(); err != nil {
		log.Error("run failed", zap.Error(err))

		return Report{}, fmt.Errorf("planner: RunAll: %w", err)
	}
	r.Elapsed = time.Since(start)
	log.Info("run finished", zap.Duration("took", r.Elapsed))

	return r, nil
}
