package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/daystep/app"
	"github.com/kilianp07/daystep/config"
	"github.com/kilianp07/daystep/infra/logger"
	"github.com/kilianp07/daystep/io/activities"
	"github.com/kilianp07/daystep/io/resultwriter"
)

// ExitError carries the process exit code a failed command should report:
// 1 for an infeasible schedule, 2 for an I/O or parameter error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

var (
	activitiesPath string
	outDir         string
	initialSoC     float64
	minSoC         float64
	numDays        int
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a daily activity schedule from an activity pool CSV",
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&activitiesPath, "activities", "", "path to the activity pool CSV (required)")
	solveCmd.Flags().StringVar(&outDir, "out", "", "directory to write per-day schedule CSVs into (required)")
	solveCmd.Flags().Float64Var(&initialSoC, "initial-soc", -1, "override the vehicle's starting SoC fraction for day 0")
	solveCmd.Flags().Float64Var(&minSoC, "min-soc", -1, "override the solver's comfort SoC floor")
	solveCmd.Flags().IntVar(&numDays, "days", 0, "override the number of consecutive days to solve")
	_ = solveCmd.MarkFlagRequired("activities")
	_ = solveCmd.MarkFlagRequired("out")
}

func runSolve(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return &ExitError{Code: 2, Err: fmt.Errorf("load config: %w", err)}
	}
	if initialSoC >= 0 {
		cfg.Profile.InitialSoC = initialSoC
	}
	if minSoC >= 0 {
		cfg.Solver.SoCThreshold = minSoC
	}
	if numDays > 0 {
		cfg.MultiDay.NumDays = numDays
	}

	pool, err := activities.LoadCSV(activitiesPath)
	if err != nil {
		return &ExitError{Code: 2, Err: fmt.Errorf("load activities: %w", err)}
	}

	svc, err := app.New(cfg)
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return &ExitError{Code: 2, Err: fmt.Errorf("create output dir: %w", err)}
	}

	outcomes, err := svc.RunMultiDay(ctx, "cli", pool, cfg.Profile)
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}

	allFeasible := true
	for _, out := range outcomes {
		if !out.Feasible {
			allFeasible = false
			continue
		}
		path := filepath.Join(outDir, fmt.Sprintf("day_%02d.csv", out.Day))
		f, err := os.Create(path)
		if err != nil {
			return &ExitError{Code: 2, Err: fmt.Errorf("create %s: %w", path, err)}
		}
		err = resultwriter.WriteCSV(f, out.Schedule)
		closeErr := f.Close()
		if err != nil {
			return &ExitError{Code: 2, Err: fmt.Errorf("write %s: %w", path, err)}
		}
		if closeErr != nil {
			return &ExitError{Code: 2, Err: fmt.Errorf("close %s: %w", path, closeErr)}
		}
	}

	if !allFeasible {
		return &ExitError{Code: 1, Err: fmt.Errorf("no feasible schedule for one or more requested days")}
	}
	return nil
}
