// Package telemetry wraps New Relic APM reporting for the uhash
// benchmark surface, adapted from the teacher's internal/newrelic
// pool-monitoring agent: same lifecycle (Start/Stop, a guarded
// *newrelic.Application, custom events and metrics), repurposed from
// share/block/payment events to hash throughput and CPU-capability
// probe events.
package telemetry

import (
	"sync"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/tos-network/uhash/internal/config"
	"github.com/tos-network/uhash/internal/util"
)

// Agent wraps New Relic APM functionality for benchmark telemetry.
type Agent struct {
	cfg *config.NewRelicConfig
	mu  sync.RWMutex
	app *newrelic.Application
}

// NewAgent creates a new, unstarted telemetry agent.
func NewAgent(cfg *config.NewRelicConfig) *Agent {
	return &Agent{cfg: cfg}
}

// Start initializes the New Relic agent if enabled and configured.
func (a *Agent) Start() error {
	if !a.cfg.Enabled {
		util.Info("New Relic APM disabled")
		return nil
	}
	if a.cfg.LicenseKey == "" {
		util.Warn("New Relic license key not configured, APM disabled")
		return nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(a.cfg.AppName),
		newrelic.ConfigLicense(a.cfg.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		return err
	}

	if err := app.WaitForConnection(5 * time.Second); err != nil {
		util.Warnf("New Relic connection timeout: %v (will retry in background)", err)
	}

	a.mu.Lock()
	a.app = app
	a.mu.Unlock()

	util.Infof("New Relic APM enabled for app: %s", a.cfg.AppName)
	return nil
}

// Stop shuts down the agent, flushing any pending data.
func (a *Agent) Stop() {
	a.mu.RLock()
	app := a.app
	a.mu.RUnlock()

	if app != nil {
		util.Info("Shutting down New Relic agent")
		app.Shutdown(10 * time.Second)
	}
}

// IsEnabled reports whether Start created an application. It stays
// true when the initial connection wait timed out.
func (a *Agent) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.app != nil
}

func (a *Agent) recordCustomEvent(eventType string, params map[string]interface{}) {
	a.mu.RLock()
	app := a.app
	a.mu.RUnlock()
	if app != nil {
		app.RecordCustomEvent(eventType, params)
	}
}

func (a *Agent) recordCustomMetric(name string, value float64) {
	a.mu.RLock()
	app := a.app
	a.mu.RUnlock()
	if app != nil {
		app.RecordCustomMetric(name, value)
	}
}

// RecordBenchmarkRun records one benchmark(iterations) invocation:
// total iterations, elapsed time, and derived hashrate.
func (a *Agent) RecordBenchmarkRun(iterations int, elapsed time.Duration, hashesPerSecond float64) {
	a.recordCustomEvent("BenchmarkRun", map[string]interface{}{
		"iterations":   iterations,
		"elapsed_ms":   elapsed.Milliseconds(),
		"hashes_per_s": hashesPerSecond,
	})
	a.recordCustomMetric("Custom/Hasher/HashesPerSecond", hashesPerSecond)
}

// RecordPrimitiveProfile records the AES/SHA hardware-capability probe
// result for one Hasher (§9), useful for correlating throughput with
// CPU feature availability across a fleet of benchmark runs.
func (a *Agent) RecordPrimitiveProfile(aesCapable, shaCapable bool) {
	a.recordCustomEvent("PrimitiveProfile", map[string]interface{}{
		"aes_capable": aesCapable,
		"sha_capable": shaCapable,
	})
}
