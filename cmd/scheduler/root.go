// Package scheduler implements the court-scheduler CLI: read a
// scheduling request as JSON, run the pipeline, write the resulting
// appointments as JSON. Grounded on the teacher's cmd/root.go
// (cobra.Command + PersistentFlags + Execute), reduced from a
// long-running service to a one-shot batch command, matching spec.md
// §6's call-then-return external interface.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/FrederikvSvane/bachelor-projekt/internal/config"
	"github.com/FrederikvSvane/bachelor-projekt/internal/court/model"
	"github.com/FrederikvSvane/bachelor-projekt/internal/court/pipeline"
	"github.com/FrederikvSvane/bachelor-projekt/internal/ingest"
	"github.com/FrederikvSvane/bachelor-projekt/internal/logging"
	"github.com/FrederikvSvane/bachelor-projekt/internal/metrics"

	"github.com/google/uuid"
)

var (
	inputPath    string
	outputPath   string
	useTest      bool
	cfgPath      string
	logLevel     string
	metricsAddr  string
	strategyFlag string
)

var rootCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Assigns judges, rooms, and time slots to court cases",
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to a scheduling request JSON file")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "path to write the resulting appointments JSON (default: stdout)")
	rootCmd.Flags().BoolVar(&useTest, "test", false, "use the built-in fixed fixture instead of --input")
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "optional configuration file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "address to serve Prometheus /metrics on, e.g. :9100 (disabled if empty)")
	rootCmd.PersistentFlags().StringVar(&strategyFlag, "strategy", "", "flow-graph strategy override (combined|two-stage|layered)")
}

// Execute runs the CLI, returning the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if metricsAddr != "" {
		cfg.MetricsAddr = metricsAddr
	}
	if strategyFlag != "" {
		cfg.Strategy = strategyFlag
	}

	log := logging.New("scheduler", cfg.LogLevel)
	runID := uuid.NewString()

	var sink metrics.Sink = metrics.NopSink{}
	if cfg.MetricsAddr != "" {
		promSink, err := metrics.NewPromSink()
		if err != nil {
			return fmt.Errorf("prom sink: %w", err)
		}
		sink = promSink
		go func() {
			if err := metrics.StartPromServer(ctx, cfg.MetricsAddr); err != nil {
				log.Errorf("metrics server: %v", err)
			}
		}()
	}

	strategy, err := parseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}

	raw, err := readInput()
	if err != nil {
		return err
	}

	req, err := ingest.Decode(raw, strategy)
	if err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	log.Infof("run %s: %d meetings, %d judges, %d rooms, strategy=%s", runID, len(req.Meetings), len(req.Judges), len(req.Rooms), req.Strategy)

	start := time.Now()
	obs := &pipeline.Observer{OnStage: func(stage pipeline.Stage, detail string) {
		log.Debugw(string(stage), map[string]any{"run_id": runID, "detail": detail})
	}}
	result, err := pipeline.Run(req, obs)
	duration := time.Since(start)

	// TimeslotStart is the appointment's color, so distinct timeslots are
	// the colors DSATUR used.
	colorsUsed := make(map[int]bool, len(result.Appointments))
	for _, a := range result.Appointments {
		colorsUsed[a.TimeslotStart] = true
	}

	sink.RecordRun(metrics.RunResult{
		Strategy:        cfg.Strategy,
		FlowValue:       result.FlowValue,
		ColorsUsed:      len(colorsUsed),
		AppointmentsLen: len(result.Appointments),
		Infeasible:      errors.Is(err, model.ErrInfeasibleAssignment),
		Duration:        duration,
	})

	if err != nil {
		log.Errorf("run %s failed: %v", runID, err)
		return err
	}
	log.Infof("run %s produced %d appointments in %s", runID, len(result.Appointments), duration)

	return writeOutput(result)
}

func readInput() ([]byte, error) {
	if useTest {
		return fixtureJSON, nil
	}
	if inputPath == "" {
		return nil, fmt.Errorf("no input file specified; use -i <file> or --test")
	}
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func writeOutput(result model.ScheduleResult) error {
	out, err := ingest.EncodeResult(result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if outputPath == "" {
		_, err = os.Stdout.Write(append(out, '\n'))
		return err
	}
	return os.WriteFile(outputPath, out, 0o644)
}

func parseStrategy(s string) (model.Strategy, error) {
	switch s {
	case "combined", "":
		return model.Combined, nil
	case "two-stage", "twostage":
		return model.TwoStage, nil
	case "layered":
		return model.Layered, nil
	default:
		return 0, fmt.Errorf("scheduler: %w: unknown strategy %q", model.ErrInvalidInput, s)
	}
}
