package editor

import (
	"expvar"
	"sync/atomic"
	"time"
)

// Metrics collects editor activity counters. It uses Go's expvar package for
// exposition, served at /debug/vars when an HTTP server is running.
//
// Thread-safe for concurrent use.
type Metrics struct {
	// Counters
	commits       atomic.Int64
	snapshots     atomic.Int64
	undos         atomic.Int64
	redos         atomic.Int64
	assetsLoaded  atomic.Int64
	assetFailures atomic.Int64
	saves         atomic.Int64
	loads         atomic.Int64
	loadFailures  atomic.Int64
	exports       atomic.Int64
	configReloads atomic.Int64
	errorsTotal   atomic.Int64

	// Latency tracking (stored as nanoseconds)
	renderLatencyNs    atomic.Int64
	renderLatencyCount atomic.Int64

	// Gauges
	objects atomic.Int64
	layers  atomic.Int64

	// Registration tracking to prevent duplicate expvar registration
	registered atomic.Bool
}

// NewMetrics creates a new Metrics instance.
// Call RegisterExpvar() to expose metrics via the /debug/vars endpoint.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RegisterExpvar publishes every metric under the creographics_ prefix.
// Safe to call multiple times; subsequent calls are no-ops. Only one
// Metrics instance per process may register.
func (m *Metrics) RegisterExpvar() {
	if m.registered.Swap(true) {
		return
	}

	counters := map[string]*atomic.Int64{
		"creographics_commits_total":        &m.commits,
		"creographics_snapshots_total":      &m.snapshots,
		"creographics_undos_total":          &m.undos,
		"creographics_redos_total":          &m.redos,
		"creographics_assets_loaded_total":  &m.assetsLoaded,
		"creographics_asset_failures_total": &m.assetFailures,
		"creographics_saves_total":          &m.saves,
		"creographics_loads_total":          &m.loads,
		"creographics_load_failures_total":  &m.loadFailures,
		"creographics_exports_total":        &m.exports,
		"creographics_config_reloads_total": &m.configReloads,
		"creographics_errors_total":         &m.errorsTotal,
		"creographics_objects":              &m.objects,
		"creographics_layers":               &m.layers,
	}
	for name, c := range counters {
		expvar.Publish(name, expvar.Func(func() any { return c.Load() }))
	}

	expvar.Publish("creographics_render_latency_avg_ms", expvar.Func(func() any {
		count := m.renderLatencyCount.Load()
		if count == 0 {
			return float64(0)
		}
		return float64(m.renderLatencyNs.Load()) / float64(count) / 1e6
	}))
}

// MetricsSnapshot is a point-in-time copy of all metrics.
type MetricsSnapshot struct {
	// Counters
	Commits       int64
	Snapshots     int64
	Undos         int64
	Redos         int64
	AssetsLoaded  int64
	AssetFailures int64
	Saves         int64
	Loads         int64
	LoadFailures  int64
	Exports       int64
	ConfigReloads int64
	ErrorsTotal   int64

	// Gauges
	Objects int
	Layers  int

	// Latency averages
	RenderLatencyAvg time.Duration
}

// Snapshot returns a point-in-time copy of all metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Commits:       m.commits.Load(),
		Snapshots:     m.snapshots.Load(),
		Undos:         m.undos.Load(),
		Redos:         m.redos.Load(),
		AssetsLoaded:  m.assetsLoaded.Load(),
		AssetFailures: m.assetFailures.Load(),
		Saves:         m.saves.Load(),
		Loads:         m.loads.Load(),
		LoadFailures:  m.loadFailures.Load(),
		Exports:       m.exports.Load(),
		ConfigReloads: m.configReloads.Load(),
		ErrorsTotal:   m.errorsTotal.Load(),

		Objects: int(m.objects.Load()),
		Layers:  int(m.layers.Load()),

		RenderLatencyAvg: safeDivide(m.renderLatencyNs.Load(), m.renderLatencyCount.Load()),
	}
}

// IncrementCommits records an object committed to the scene.
func (m *Metrics) IncrementCommits() {
	m.commits.Add(1)
}

// IncrementSnapshots records a history snapshot.
func (m *Metrics) IncrementSnapshots() {
	m.snapshots.Add(1)
}

// IncrementUndos records an undo step that changed the scene.
func (m *Metrics) IncrementUndos() {
	m.undos.Add(1)
}

// IncrementRedos records a redo step that changed the scene.
func (m *Metrics) IncrementRedos() {
	m.redos.Add(1)
}

// IncrementAssetsLoaded records a successful asset load.
func (m *Metrics) IncrementAssetsLoaded() {
	m.assetsLoaded.Add(1)
}

// IncrementAssetFailures records a failed asset load.
func (m *Metrics) IncrementAssetFailures() {
	m.assetFailures.Add(1)
}

// IncrementSaves records a saved document.
func (m *Metrics) IncrementSaves() {
	m.saves.Add(1)
}

// IncrementLoads records a loaded document.
func (m *Metrics) IncrementLoads() {
	m.loads.Add(1)
}

// IncrementLoadFailures records a rejected document.
func (m *Metrics) IncrementLoadFailures() {
	m.loadFailures.Add(1)
}

// IncrementExports records a PNG export.
func (m *Metrics) IncrementExports() {
	m.exports.Add(1)
}

// IncrementConfigReloads records a configuration reload.
func (m *Metrics) IncrementConfigReloads() {
	m.configReloads.Add(1)
}

// IncrementErrors records an error occurrence.
func (m *Metrics) IncrementErrors() {
	m.errorsTotal.Add(1)
}

// SetSceneSize updates the object and layer gauges.
func (m *Metrics) SetSceneSize(objects, layers int) {
	m.objects.Store(int64(objects))
	m.layers.Store(int64(layers))
}

// RecordRenderLatency records the duration of a render operation.
func (m *Metrics) RecordRenderLatency(d time.Duration) {
	m.renderLatencyNs.Add(d.Nanoseconds())
	m.renderLatencyCount.Add(1)
}

// Reset clears all metrics. Useful for testing.
func (m *Metrics) Reset() {
	for _, c := range []*atomic.Int64{
		&m.commits, &m.snapshots, &m.undos, &m.redos,
		&m.assetsLoaded, &m.assetFailures, &m.saves, &m.loads,
		&m.loadFailures, &m.exports, &m.configReloads, &m.errorsTotal,
		&m.renderLatencyNs, &m.renderLatencyCount, &m.objects, &m.layers,
	} {
		c.Store(0)
	}
}

// safeDivide performs safe division, returning 0 for divide by zero.
func safeDivide(total, count int64) time.Duration {
	if count == 0 {
		return 0
	}
	return time.Duration(total / count)
}
