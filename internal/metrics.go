package internal

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/bytedance/sonic"

	"github.com/glitchlab/faultdeck/calculations"
	"github.com/glitchlab/faultdeck/logging"
	"github.com/glitchlab/faultdeck/models"
	"github.com/glitchlab/faultdeck/orchestrator"
)

// Metrics serves a JSON snapshot of engine state for debugging
type Metrics struct {
	coordinator *orchestrator.Coordinator
	startTime   time.Time
	server      *http.Server
	port        int
}

// MetricsSnapshot is the payload served on /metrics
type MetricsSnapshot struct {
	StartTime      time.Time                  `json:"start_time"`
	UptimeSeconds  float64                    `json:"uptime_seconds"`
	GoroutineCount int                        `json:"goroutine_count"`
	Enabled        bool                       `json:"enabled"`
	HistoryLength  int                        `json:"history_length"`
	Scenario       string                     `json:"scenario,omitempty"`
	Statistics     models.ErrorStatistics     `json:"statistics"`
	Recovery       calculations.RecoveryCounts `json:"recovery"`
}

// NewMetrics creates a new metrics instance
func NewMetrics(port int, coordinator *orchestrator.Coordinator) *Metrics {
	return &Metrics{
		coordinator: coordinator,
		startTime:   time.Now(),
		port:        port,
	}
}

// Start starts the metrics HTTP server
func (m *Metrics) Start() {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", m.handleMetrics)
	mux.HandleFunc("/health", m.handleHealth)

	m.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", m.port),
		Handler: mux,
	}

	go func() {
		if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.LogErrorf("metrics server error: %v", err)
		}
	}()
}

// Stop shuts down the metrics server
func (m *Metrics) Stop(ctx context.Context) error {
	if m.server == nil {
		return nil
	}
	return m.server.Shutdown(ctx)
}

// handleMetrics serves the engine state snapshot
func (m *Metrics) handleMetrics(w http.ResponseWriter, r *http.Request) {
	snapshot := m.snapshot()

	data, err := sonic.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		http.Error(w, "failed to encode metrics", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// handleHealth serves a liveness check
func (m *Metrics) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status":"ok","uptime":"%s"}`, time.Since(m.startTime).Round(time.Second))
}

// snapshot builds the current metrics snapshot
func (m *Metrics) snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{
		StartTime:      m.startTime,
		UptimeSeconds:  time.Since(m.startTime).Seconds(),
		GoroutineCount: runtime.NumGoroutine(),
	}

	if m.coordinator != nil {
		snap.Enabled = m.coordinator.IsEnabled()
		snap.HistoryLength = len(m.coordinator.History())
		snap.Statistics = m.coordinator.Statistics()
		snap.Recovery = m.coordinator.RecoveryCounts()
		if scenario := m.coordinator.CurrentScenario(); scenario != nil {
			snap.Scenario = scenario.Name
		}
	}

	return snap
}
