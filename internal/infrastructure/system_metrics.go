package infrastructure

import (
	"context"
	"runtime"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// SystemMetrics records a snapshot of the process at the end of a run
type SystemMetrics struct {
	goRoutines      metric.Int64Gauge
	memoryUsage     metric.Int64Gauge
	memoryAllocated metric.Int64Gauge
	gcCount         metric.Int64Gauge
	processUptime   metric.Float64Gauge
	startTime       time.Time
}

// SystemStats is the snapshot recorded by Collect
type SystemStats struct {
	GoRoutines      int64
	MemoryUsage     int64
	MemoryAllocated int64
	GCCount         uint32
	ProcessUptime   time.Duration
}

// NewSystemMetrics creates the process gauges on meter
func NewSystemMetrics(meter metric.Meter) (*SystemMetrics, error) {
	sm := &SystemMetrics{startTime: time.Now()}
	var err error

	gauges := []struct {
		target *metric.Int64Gauge
		name   string
		desc   string
		unit   string
	}{
		{&sm.goRoutines, "peilbuis_goroutines", "Number of active goroutines", ""},
		{&sm.memoryUsage, "peilbuis_memory_usage", "Heap bytes in use", "By"},
		{&sm.memoryAllocated, "peilbuis_memory_allocated", "Cumulative heap bytes allocated", "By"},
		{&sm.gcCount, "peilbuis_gc_cycles", "Completed garbage collection cycles", ""},
	}
	for _, g := range gauges {
		opts := []metric.Int64GaugeOption{metric.WithDescription(g.desc)}
		if g.unit != "" {
			opts = append(opts, metric.WithUnit(g.unit))
		}
		*g.target, err = meter.Int64Gauge(g.name, opts...)
		if err != nil {
			return nil, err
		}
	}

	sm.processUptime, err = meter.Float64Gauge(
		"peilbuis_process_uptime",
		metric.WithDescription("Seconds since the process started"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return sm, nil
}

// Collect reads the runtime statistics and records them
func (sm *SystemMetrics) Collect(ctx context.Context) *SystemStats {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	stats := &SystemStats{
		GoRoutines:      int64(runtime.NumGoroutine()),
		MemoryUsage:     int64(memStats.Alloc),
		MemoryAllocated: int64(memStats.TotalAlloc),
		GCCount:         memStats.NumGC,
		ProcessUptime:   time.Since(sm.startTime),
	}

	sm.goRoutines.Record(ctx, stats.GoRoutines)
	sm.memoryUsage.Record(ctx, stats.MemoryUsage)
	sm.memoryAllocated.Record(ctx, stats.MemoryAllocated)
	sm.gcCount.Record(ctx, int64(stats.GCCount))
	sm.processUptime.Record(ctx, stats.ProcessUptime.Seconds())

	return stats
}
