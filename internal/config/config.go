package config

import (
	"time"

	"github.com/caarlos0/env/v10"

	"github.com/copyleftdev/tundr-solver/internal/optimization"
)

type Config struct {
	Environment string `env:"ENV" envDefault:"development"`
	Logging     struct {
		Level  string `env:"LOG_LEVEL"`
		Format string `env:"LOG_FORMAT" envDefault:"json"`
		Output string `env:"LOG_OUTPUT" envDefault:"stderr"`
	}
	Solver struct {
		// Zero leaves the corresponding budget unbounded.
		MaxIterations  int           `env:"SOLVER_MAX_ITERATIONS" envDefault:"0"`
		MaxRuntime     time.Duration `env:"SOLVER_MAX_RUNTIME" envDefault:"0s"`
		Tolerance      float64       `env:"SOLVER_TOLERANCE" envDefault:"1e-8"`
		StepIterations int           `env:"SOLVER_STEP_ITERATIONS" envDefault:"20"`
	}
	Metrics struct {
		Addr string `env:"METRICS_ADDR"`
	}
}

func Load() (*Config, error) {
	cfg := &Config{}

	// Parse environment variables
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Set default logging level based on environment
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
		if cfg.Environment == "development" {
			cfg.Logging.Level = "debug"
		}
	}

	return cfg, nil
}

// IterationLimit returns the configured iteration ceiling for a solver.
func (c *Config) IterationLimit() int {
	if c.Solver.MaxIterations <= 0 {
		return optimization.DefaultIterationLimit
	}
	return c.Solver.MaxIterations
}

// RuntimeLimit returns the configured runtime ceiling for a solver, in seconds.
func (c *Config) RuntimeLimit() float64 {
	if c.Solver.MaxRuntime <= 0 {
		return optimization.DefaultRuntimeLimit()
	}
	return c.Solver.MaxRuntime.Seconds()
}
