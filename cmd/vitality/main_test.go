package main

import (
	"testing"
	"time"

	"github.com/baikal/vitality/internal/collector"
)

// These tests verify that CLI flags produce the correct CollectConfig.
// They simulate what RunE does without actually running collectors.

func TestCLIDefaultConfig(t *testing.T) {
	cfg := collector.DefaultConfig()

	if cfg.Timeout != 30*time.Second {
		t.Errorf("default timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.Quiet {
		t.Error("Quiet should default to false")
	}
	if cfg.AIPrompt {
		t.Error("AIPrompt should default to false")
	}
}

func TestCLITimeoutOverride(t *testing.T) {
	cfg := collector.DefaultConfig()

	// Simulates --timeout 10s
	d, err := time.ParseDuration("10s")
	if err != nil {
		t.Fatalf("parse duration: %v", err)
	}
	cfg.Timeout = d

	if cfg.Timeout != 10*time.Second {
		t.Errorf("timeout override = %v, want 10s", cfg.Timeout)
	}
}

func TestCLIInvalidTimeoutRejected(t *testing.T) {
	if _, err := time.ParseDuration("not-a-duration"); err == nil {
		t.Error("expected parse error for invalid duration")
	}
}

func TestCLIInputWiring(t *testing.T) {
	cfg := collector.DefaultConfig()

	// Simulates --input export.json
	cfg.Input = "export.json"
	if cfg.Input != "export.json" {
		t.Errorf("input = %q, want export.json", cfg.Input)
	}
}

func TestCLIQuietFlag(t *testing.T) {
	cfg := collector.DefaultConfig()
	cfg.Quiet = true

	if !cfg.Quiet {
		t.Error("Quiet should be true")
	}
}
