package telemetry

import (
	"testing"

	"github.com/tos-network/uhash/internal/config"
)

func TestNewAgent(t *testing.T) {
	cfg := &config.NewRelicConfig{
		Enabled:    true,
		AppName:    "Test uhash",
		LicenseKey: "test_key",
	}

	agent := NewAgent(cfg)

	if agent == nil {
		t.Fatal("NewAgent returned nil")
	}
	if agent.cfg != cfg {
		t.Error("Agent.cfg not set correctly")
	}
	if agent.app != nil {
		t.Error("Agent.app should be nil before Start()")
	}
}

func TestStartDisabled(t *testing.T) {
	cfg := &config.NewRelicConfig{Enabled: false}

	agent := NewAgent(cfg)
	if err := agent.Start(); err != nil {
		t.Errorf("Start() returned error when disabled: %v", err)
	}
	if agent.app != nil {
		t.Error("Agent.app should be nil when disabled")
	}
}

func TestStartNoLicenseKey(t *testing.T) {
	cfg := &config.NewRelicConfig{
		Enabled:    true,
		AppName:    "Test uhash",
		LicenseKey: "",
	}

	agent := NewAgent(cfg)
	if err := agent.Start(); err != nil {
		t.Errorf("Start() returned error with empty license key: %v", err)
	}
	if agent.app != nil {
		t.Error("Agent.app should be nil with empty license key")
	}
}

func TestStopNotStarted(t *testing.T) {
	agent := NewAgent(&config.NewRelicConfig{Enabled: false})
	agent.Stop() // must not panic
}

func TestIsEnabledNotStarted(t *testing.T) {
	agent := NewAgent(&config.NewRelicConfig{Enabled: false})
	if agent.IsEnabled() {
		t.Error("IsEnabled() should return false when not started")
	}
}

func TestRecordBenchmarkRunNoopWhenDisabled(t *testing.T) {
	agent := NewAgent(&config.NewRelicConfig{Enabled: false})
	// Must not panic even though no application is connected.
	agent.RecordBenchmarkRun(1000, 0, 0)
}

func TestRecordPrimitiveProfileNoopWhenDisabled(t *testing.T) {
	agent := NewAgent(&config.NewRelicConfig{Enabled: false})
	agent.RecordPrimitiveProfile(true, false)
}
