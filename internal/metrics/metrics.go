package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	calls           int
	errors          int
	rejections      int
	lastCallLatency time.Duration
}

type nameStats struct {
	attempts    int
	failures    int
	lastLatency time.Duration
}

// Recorder keeps in-memory counters for name generation, cache activity and
// catalog source calls, and forwards them to OpenTelemetry when configured.
type Recorder struct {
	mu            sync.Mutex
	sources       map[string]*sourceStats
	names         map[string]*nameStats
	reloads       map[int]int
	preloads      int
	refreshCycles int
	otel          *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		sources: make(map[string]*sourceStats),
		names:   make(map[string]*nameStats),
		reloads: make(map[int]int),
		otel:    otel,
	}
}

// RecordNameGeneration counts one market or outcome name request. Result is
// ResultOK or the failure class.
func (r *Recorder) RecordNameGeneration(kind, result string, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.names[kind]
	if !ok {
		stats = &nameStats{}
		r.names[kind] = stats
	}
	stats.attempts++
	stats.lastLatency = duration
	if result != ResultOK {
		stats.failures++
	}
	r.mu.Unlock()

	r.otel.recordNameGeneration(kind, result, duration)
}

// RecordCacheReload counts a forced market description reload.
func (r *Recorder) RecordCacheReload(marketID int) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.reloads[marketID]++
	r.mu.Unlock()

	r.otel.recordCacheReload()
}

// RecordProfilePreload counts a competitor profile preload for a locale.
func (r *Recorder) RecordProfilePreload(locale string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.preloads++
	r.mu.Unlock()

	r.otel.recordProfilePreload(locale)
}

// RecordSourceAttempt increments counters for a catalog source call and stores the last observed latency.
func (r *Recorder) RecordSourceAttempt(source string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureSource(source)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	r.otel.recordSourceAttempt(source, duration, err)
}

// RecordSourceRejected tracks a call refused before reaching the source, e.g. by an open breaker.
func (r *Recorder) RecordSourceRejected(source, reason string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.ensureSource(source).rejections++
	r.mu.Unlock()

	r.otel.recordSourceRejected(source, reason)
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordRefreshCycle tracks catalog refresh cycles and errors.
func (r *Recorder) RecordRefreshCycle(duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.refreshCycles++
	r.mu.Unlock()

	r.otel.recordRefresh(duration, err)
}

// SourceCalls returns the total attempts recorded for a source.
func (r *Recorder) SourceCalls(source string) int {
	return r.Snapshot(source).Calls
}

// SourceErrors returns the total failed attempts recorded for a source.
func (r *Recorder) SourceErrors(source string) int {
	return r.Snapshot(source).Errors
}

// SourceRejections returns the number of calls refused before reaching a source.
func (r *Recorder) SourceRejections(source string) int {
	return r.Snapshot(source).Rejections
}

// Snapshot is a copy of the current stats for a source.
type Snapshot struct {
	Calls           int
	Errors          int
	Rejections      int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(source string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.sources[source]
	if !ok {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		Rejections:      stats.rejections,
		LastCallLatency: stats.lastCallLatency,
	}
}

// NameSnapshot is a copy of the name generation stats for one kind.
type NameSnapshot struct {
	Attempts    int
	Failures    int
	LastLatency time.Duration
}

func (r *Recorder) Names(kind string) NameSnapshot {
	if r == nil {
		return NameSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.names[kind]
	if !ok {
		return NameSnapshot{}
	}
	return NameSnapshot{Attempts: stats.attempts, Failures: stats.failures, LastLatency: stats.lastLatency}
}

// CacheReloads returns the number of forced reloads recorded for a market.
func (r *Recorder) CacheReloads(marketID int) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reloads[marketID]
}

// ProfilePreloads returns the number of competitor preloads recorded.
func (r *Recorder) ProfilePreloads() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.preloads
}

// RefreshCycles returns the number of catalog refresh cycles recorded.
func (r *Recorder) RefreshCycles() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshCycles
}

// ensureSource must be called with r.mu held.
func (r *Recorder) ensureSource(source string) *sourceStats {
	stats, ok := r.sources[source]
	if !ok {
		stats = &sourceStats{}
		r.sources[source] = stats
	}
	return stats
}
