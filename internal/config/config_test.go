package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Server.UIPort != "8081" {
		t.Errorf("UIPort = %q, want 8081", cfg.Server.UIPort)
	}
	if cfg.Export.OutputDir != "./out" {
		t.Errorf("OutputDir = %q, want ./out", cfg.Export.OutputDir)
	}
	if cfg.Batch.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Batch.Workers)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BATCH_WORKERS", "8")
	t.Setenv("SCENARIO_FILE", "custom.json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Batch.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Batch.Workers)
	}
	if cfg.Batch.ScenarioFile != "custom.json" {
		t.Errorf("ScenarioFile = %q, want custom.json", cfg.Batch.ScenarioFile)
	}
}

func TestLoadRejectsInvalidWorkers(t *testing.T) {
	t.Setenv("BATCH_WORKERS", "0")

	if _, err := Load(); err == nil {
		t.Error("expected error for zero batch workers")
	}
}

func TestLoadIgnoresUnparsableInt(t *testing.T) {
	t.Setenv("BATCH_WORKERS", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Batch.Workers != 4 {
		t.Errorf("Workers = %d, want default 4 on parse failure", cfg.Batch.Workers)
	}
}
