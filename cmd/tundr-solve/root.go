package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/copyleftdev/tundr-solver/internal/config"
	"github.com/copyleftdev/tundr-solver/internal/logging"
	"github.com/copyleftdev/tundr-solver/internal/metrics"
	"github.com/copyleftdev/tundr-solver/internal/objectives"
	"github.com/copyleftdev/tundr-solver/internal/optimization"
	"github.com/copyleftdev/tundr-solver/internal/optimization/neldermead"
	"github.com/copyleftdev/tundr-solver/internal/optimization/runner"
)

type solveOptions struct {
	objective     string
	x0            []float64
	lower         []float64
	upper         []float64
	maxIterations int
	maxRuntime    time.Duration
	tolerance     float64
	burst         int
}

func newRootCmd() *cobra.Command {
	opts := &solveOptions{}

	cmd := &cobra.Command{
		Use:   "tundr-solve",
		Short: "Minimize a built-in objective with the Nelder-Mead solver",
		Long: `tundr-solve drives a bounded Nelder-Mead search from an initial point
until the candidate converges or the iteration or runtime budget runs out.

Defaults for the budgets, tolerance and logging come from the environment
(SOLVER_*, LOG_*, METRICS_ADDR); flags override them.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			applyFlags(cmd, cfg, opts)
			return solve(cmd, cfg, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.objective, "objective", "sphere", fmt.Sprintf("objective function %v", objectives.Names()))
	f.Float64SliceVar(&opts.x0, "x0", []float64{1, 1}, "initial candidate point")
	f.Float64SliceVar(&opts.lower, "lower", nil, "lower bounds (same length as --x0)")
	f.Float64SliceVar(&opts.upper, "upper", nil, "upper bounds (same length as --x0)")
	f.IntVar(&opts.maxIterations, "max-iterations", 0, "iteration budget (0 = unbounded)")
	f.DurationVar(&opts.maxRuntime, "max-runtime", 0, "runtime budget (0 = unbounded)")
	f.Float64Var(&opts.tolerance, "tolerance", 0, "per-step improvement treated as converged")
	f.IntVar(&opts.burst, "burst", 0, "Nelder-Mead iterations per solver step")

	return cmd
}

// applyFlags overrides configuration values with flags the user set explicitly.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts *solveOptions) {
	f := cmd.Flags()
	if f.Changed("max-iterations") {
		cfg.Solver.MaxIterations = opts.maxIterations
	}
	if f.Changed("max-runtime") {
		cfg.Solver.MaxRuntime = opts.maxRuntime
	}
	if f.Changed("tolerance") {
		cfg.Solver.Tolerance = opts.tolerance
	}
	if f.Changed("burst") {
		cfg.Solver.StepIterations = opts.burst
	}
}

func solve(cmd *cobra.Command, cfg *config.Config, opts *solveOptions) error {
	base, err := logging.NewLogger(&logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger := logging.NewZapLogger(base.WithFields(map[string]interface{}{
		"service": "tundr-solve",
		"env":     cfg.Environment,
	}))
	defer func() { _ = logger.Sync() }()

	fn, err := objectives.Lookup(opts.objective, len(opts.x0))
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	alg := neldermead.New(
		neldermead.WithTolerance(cfg.Solver.Tolerance),
		neldermead.WithBurst(cfg.Solver.StepIterations),
		neldermead.WithLogger(logger.Named("neldermead")),
	)
	s := optimization.NewWithPoint(alg, fn, opts.x0, optimization.WithLogger(logger.Named("solver")))
	if opts.lower != nil {
		if err := s.SetLowerBounds(opts.lower); err != nil {
			return err
		}
	}
	if opts.upper != nil {
		if err := s.SetUpperBounds(opts.upper); err != nil {
			return err
		}
	}
	s.SetIterationLimit(cfg.IterationLimit())
	s.SetRuntimeLimit(cfg.RuntimeLimit())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, runErr := runner.New(runner.WithLogger(logger), runner.WithMetrics(rec)).Run(ctx, alg, s)
	if res != nil {
		if err := printResult(cmd, opts.objective, res); err != nil {
			return err
		}
	}
	if runErr != nil {
		return runErr
	}

	if cfg.Metrics.Addr != "" {
		return serveMetrics(ctx, cfg.Metrics.Addr, reg, logger)
	}
	return nil
}

func printResult(cmd *cobra.Command, objective string, res *runner.Result) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]interface{}{
		"run_id":     res.RunID,
		"objective":  objective,
		"status":     res.Status,
		"x":          res.X,
		"value":      res.Value,
		"iterations": res.Iterations,
		"runtime_s":  res.Runtime,
	})
}

func newMetricsRouter(reg *prometheus.Registry) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return r
}

// serveMetrics exposes the run's metrics until ctx is cancelled.
func serveMetrics(ctx context.Context, addr string, reg *prometheus.Registry, logger *zap.Logger) error {
	srv := &http.Server{Addr: addr, Handler: newMetricsRouter(reg)}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving metrics", zap.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("metrics server stopped")
	return nil
}
