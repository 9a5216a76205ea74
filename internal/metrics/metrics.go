// Package metrics exports pipeline-run observability: stage durations,
// achieved flow values, colors used, and infeasible-run counts.
// Grounded on the teacher's infra/metrics sink pattern, reduced to the
// single concern this system has: recording pipeline.Run outcomes rather
// than per-vehicle dispatch events.
package metrics

import "time"

// RunResult is what a single pipeline.Run invocation reports to a Sink.
type RunResult struct {
	Strategy        string
	FlowValue       int
	ColorsUsed      int
	AppointmentsLen int
	Infeasible      bool
	Duration        time.Duration
}

// StageResult is reported once per pipeline stage boundary.
type StageResult struct {
	Stage    string
	Duration time.Duration
}

// Sink records pipeline-run metrics for observability purposes.
type Sink interface {
	RecordRun(r RunResult)
	RecordStage(s StageResult)
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordRun(RunResult)     {}
func (NopSink) RecordStage(StageResult) {}

// MultiSink fans out to multiple sinks, mirroring the teacher's
// infra/metrics.MultiSink fanout pattern.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink wrapping the given sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

func (m *MultiSink) RecordRun(r RunResult) {
	for _, s := range m.Sinks {
		s.RecordRun(r)
	}
}

func (m *MultiSink) RecordStage(s StageResult) {
	for _, sink := range m.Sinks {
		sink.RecordStage(s)
	}
}
