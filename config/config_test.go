package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `solver:
  horizon: 96
  interval_minutes: 15
  speed_m_per_min: 500
  work_group: 6
  max_dssr_iterations: 20
logging:
  backend: "jsonl"
  path: "schedules.log"
metrics:
  sinks:
    - type: "nop"
multi_day:
  num_days: 3
  min_soc_relax_step: 0.05
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"solver.horizon", cfg.Solver.Horizon, 96},
		{"solver.interval_minutes", cfg.Solver.IntervalMinutes, 15},
		{"solver.speed_m_per_min", cfg.Solver.SpeedMPerMin, 500.0},
		{"solver.work_group", cfg.Solver.WorkGroup, 6},
		{"solver.max_dssr_iterations", cfg.Solver.MaxDSSRIterations, 20},
		{"logging.backend", cfg.Logging.Backend, "jsonl"},
		{"logging.path", cfg.Logging.Path, "schedules.log"},
		{"metrics_sink", len(cfg.Metrics.Sinks) == 1 && cfg.Metrics.Sinks[0].Type == "nop", true},
		{"multi_day.num_days", cfg.MultiDay.NumDays, 3},
		{"multi_day.min_soc_relax_step", cfg.MultiDay.MinSoCRelaxStep, 0.05},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: got %v want %v", c.name, c.got, c.want)
		}
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("solver = {}"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
