package middleware

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"
)

// Process-wide counters. The analysis pair is bumped by the analyze handler
// so operators can watch provider health separately from HTTP traffic.
type counters struct {
	requestsTotal  uint64
	requestsFailed uint64
	inFlight       uint64
	analysesTotal  uint64
	analysesFailed uint64
}

var (
	stats   counters
	started = time.Now()
)

func IncrementAnalyses() { atomic.AddUint64(&stats.analysesTotal, 1) }

func IncrementAnalysesFailed() { atomic.AddUint64(&stats.analysesFailed, 1) }

// MetricsMiddleware counts requests and failures (any status >= 400).
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddUint64(&stats.requestsTotal, 1)
		atomic.AddUint64(&stats.inFlight, 1)
		defer atomic.AddUint64(&stats.inFlight, ^uint64(0))

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		if rec.status >= http.StatusBadRequest {
			atomic.AddUint64(&stats.requestsFailed, 1)
		}
	})
}

// MetricsHandler serves a JSON snapshot of the counters plus runtime stats.
func MetricsHandler(w http.ResponseWriter, r *http.Request) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	snapshot := map[string]any{
		"requests_total":     atomic.LoadUint64(&stats.requestsTotal),
		"requests_failed":    atomic.LoadUint64(&stats.requestsFailed),
		"requests_in_flight": atomic.LoadUint64(&stats.inFlight),
		"analyses_total":     atomic.LoadUint64(&stats.analysesTotal),
		"analyses_failed":    atomic.LoadUint64(&stats.analysesFailed),
		"uptime_seconds":     time.Since(started).Seconds(),
		"goroutines":         runtime.NumGoroutine(),
		"heap_alloc_bytes":   mem.HeapAlloc,
		"gc_cycles":          mem.NumGC,
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(snapshot)
}
