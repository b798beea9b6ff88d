package infrastructure

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"peilbuis/pkg/contracts/domain"
)

// AggregationMetrics holds the instruments updated once per run
type AggregationMetrics struct {
	Runs              metric.Int64Counter
	RunDuration       metric.Float64Histogram
	Readings          metric.Int64Counter
	Wells             metric.Int64Counter
	AccuracyRejected  metric.Int64Counter
	DeviationRejected metric.Int64Counter
	WithoutCentroid   metric.Int64Counter
}

// CreateAggregationMetrics creates the run instruments on meter
func CreateAggregationMetrics(meter metric.Meter) (*AggregationMetrics, error) {
	var m AggregationMetrics
	var err error

	counters := []struct {
		target *metric.Int64Counter
		name   string
		desc   string
	}{
		{&m.Runs, "peilbuis_runs", "Number of aggregation runs by status"},
		{&m.Readings, "peilbuis_readings", "Survey readings processed"},
		{&m.Wells, "peilbuis_wells", "Wells written to the result table"},
		{&m.AccuracyRejected, "peilbuis_accuracy_rejected", "Readings rejected by the accuracy filter"},
		{&m.DeviationRejected, "peilbuis_deviation_rejected", "Readings rejected by the deviation filter"},
		{&m.WithoutCentroid, "peilbuis_wells_without_centroid", "Wells reported without coordinates"},
	}
	for _, c := range counters {
		*c.target, err = meter.Int64Counter(c.name, metric.WithDescription(c.desc))
		if err != nil {
			return nil, err
		}
	}

	m.RunDuration, err = meter.Float64Histogram(
		"peilbuis_run_duration_seconds",
		metric.WithDescription("Duration of one aggregation run"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

// RecordRun records the outcome of a run. summary may be nil for failed runs.
func (m *AggregationMetrics) RecordRun(ctx context.Context, summary *domain.AggregationSummary, duration time.Duration, err error) {
	if m == nil {
		return
	}

	status := "success"
	if err != nil {
		status = "error"
	}
	m.Runs.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
	m.RunDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attribute.String("status", status)))

	if summary == nil {
		return
	}
	m.Readings.Add(ctx, int64(summary.Readings))
	m.Wells.Add(ctx, int64(summary.Wells))
	m.AccuracyRejected.Add(ctx, int64(summary.AccuracyRejected))
	m.DeviationRejected.Add(ctx, int64(summary.DeviationRejected))
	m.WithoutCentroid.Add(ctx, int64(summary.WithoutCentroid))
}
