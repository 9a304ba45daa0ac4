package middleware

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"
)

// HealthChecker probes one dependency (database, object store, ...).
type HealthChecker interface {
	Check(ctx context.Context) error
}

// DatabaseHealthChecker pings the sql pool.
type DatabaseHealthChecker struct {
	DB *sql.DB
}

func (d *DatabaseHealthChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return d.DB.PingContext(ctx)
}

type healthReport struct {
	Status string            `json:"status"`
	Time   time.Time         `json:"time"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthHandler runs every checker and reports ok/degraded. A failing
// dependency flips the status code to 503 so load balancers stop routing,
// but the per-check detail stays in the body for operators.
func HealthHandler(checkers map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		report := healthReport{
			Status: "ok",
			Time:   time.Now().UTC(),
		}
		if len(checkers) > 0 {
			report.Checks = make(map[string]string, len(checkers))
		}

		code := http.StatusOK
		for name, c := range checkers {
			if err := c.Check(ctx); err != nil {
				report.Status = "degraded"
				report.Checks[name] = err.Error()
				code = http.StatusServiceUnavailable
				continue
			}
			report.Checks[name] = "ok"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(report)
	}
}
