package metrics

import "github.com/prometheus/client_golang/prometheus"

// PromSink records pipeline-run metrics in Prometheus collectors.
type PromSink struct {
	runs         *prometheus.CounterVec
	runDuration  *prometheus.HistogramVec
	flowValue    *prometheus.HistogramVec
	colorsUsed   *prometheus.HistogramVec
	infeasible   prometheus.Counter
	stageSeconds *prometheus.HistogramVec
}

// NewPromSink registers pipeline-run metrics on the default Prometheus
// registerer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the given registerer. A nil
// registerer defaults to the global one.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scheduler_runs_total",
		Help: "Total number of pipeline.Run invocations, by strategy",
	}, []string{"strategy"})
	runDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "scheduler_run_duration_seconds",
		Help:    "Wall-clock duration of a full pipeline run",
		Buckets: prometheus.DefBuckets,
	}, []string{"strategy"})
	flowValue := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "scheduler_flow_value",
		Help: "Achieved max-flow value per run",
	}, []string{"strategy"})
	colorsUsed := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "scheduler_colors_used",
		Help: "Number of colors DSATUR produced per run",
	}, []string{"strategy"})
	infeasible := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scheduler_infeasible_runs_total",
		Help: "Total number of runs that failed to match every meeting",
	})
	stageSeconds := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "scheduler_stage_duration_seconds",
		Help:    "Duration of each pipeline stage transition",
		Buckets: prometheus.DefBuckets,
	}, []string{"stage"})

	for _, c := range []prometheus.Collector{runs, runDuration, flowValue, colorsUsed, infeasible, stageSeconds} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return nil, err
			}
		}
	}

	return &PromSink{
		runs:         runs,
		runDuration:  runDuration,
		flowValue:    flowValue,
		colorsUsed:   colorsUsed,
		infeasible:   infeasible,
		stageSeconds: stageSeconds,
	}, nil
}

func (s *PromSink) RecordRun(r RunResult) {
	s.runs.WithLabelValues(r.Strategy).Inc()
	s.runDuration.WithLabelValues(r.Strategy).Observe(r.Duration.Seconds())
	s.flowValue.WithLabelValues(r.Strategy).Observe(float64(r.FlowValue))
	s.colorsUsed.WithLabelValues(r.Strategy).Observe(float64(r.ColorsUsed))
	if r.Infeasible {
		s.infeasible.Inc()
	}
}

func (s *PromSink) RecordStage(st StageResult) {
	s.stageSeconds.WithLabelValues(st.Stage).Observe(st.Duration.Seconds())
}
