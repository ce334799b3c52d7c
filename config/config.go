package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/daystep/core/dp"
	"github.com/kilianp07/daystep/core/metrics"
	"github.com/kilianp07/daystep/core/model"
)

// MultiDayConfig controls app.Service.RunMultiDay: how many days to solve
// back to back for one person and how to react to an infeasible day.
type MultiDayConfig struct {
	NumDays int `json:"num_days"`
	// MinSoCRelaxStep is added to a day's starting SoC (capped at 1), once,
	// when the first attempt at that day comes back infeasible.
	MinSoCRelaxStep float64 `json:"min_soc_relax_step"`
	// RandomSeed seeds core/rng for stochastic initial-SoC batches; zero
	// means the host always supplies an explicit initial SoC instead.
	RandomSeed int64 `json:"random_seed"`
	// InitialSoCStdDev is the standard deviation of the normal draw applied
	// to the profile's InitialSoC on day 0 when RandomSeed is non-zero.
	InitialSoCStdDev float64 `json:"initial_soc_std_dev"`
}

// SetDefaults applies sane defaults.
func (c *MultiDayConfig) SetDefaults() {
	if c.NumDays == 0 {
		c.NumDays = 1
	}
}

// Config is the root configuration: the solver parameters, schedule log
// storage, metrics sinks and the multi-day orchestration knobs.
type Config struct {
	Solver   dp.Config       `json:"solver"`
	Profile  model.EVProfile `json:"profile"`
	Logging  LoggingConfig   `json:"logging"`
	Metrics  metrics.Config  `json:"metrics"`
	MultiDay MultiDayConfig  `json:"multi_day"`
}

// Load reads cfg from a YAML or JSON file at path, then applies
// "EVSCHED_" prefixed environment variable overrides (double underscore
// separates nested keys, e.g. EVSCHED_SOLVER__HORIZON=96).
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("EVSCHED_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "evsched_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Logging.SetDefaults()
	cfg.MultiDay.SetDefaults()
	cfg.Solver = cfg.Solver.WithDefaults()
	if err := cfg.Solver.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
