package monitoring

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

var startTime = time.Now()

type HealthChecker struct {
	mu            sync.RWMutex
	lastRun       time.Time
	lastRunEngine string
	errors        []string
}

type HealthStatus struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	LastRun       time.Time `json:"last_run,omitempty"`
	LastRunEngine string    `json:"last_run_engine,omitempty"`
	Uptime        string    `json:"uptime"`
	Errors        []string  `json:"errors,omitempty"`
}

func NewHealthChecker() *HealthChecker {
	return &HealthChecker{
		errors: make([]string, 0),
	}
}

// MarkRun records a completed simulation run for health reporting.
func (h *HealthChecker) MarkRun(engine string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lastRun = time.Now()
	h.lastRunEngine = engine
}

// MarkError records an error message surfaced at the health endpoint.
func (h *HealthChecker) MarkError(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errors = append(h.errors, msg)
	if len(h.errors) > 10 {
		h.errors = h.errors[len(h.errors)-10:]
	}
}

func (h *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")

	status := "healthy"
	if len(h.errors) > 0 {
		status = "unhealthy"
		w.WriteHeader(http.StatusInternalServerError)
	}

	health := HealthStatus{
		Status:        status,
		Timestamp:     time.Now(),
		LastRun:       h.lastRun,
		LastRunEngine: h.lastRunEngine,
		Uptime:        time.Since(startTime).String(),
		Errors:        h.errors,
	}

	json.NewEncoder(w).Encode(health)
}
