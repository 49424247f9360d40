package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"disclot/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "disclot")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.Paths.ExportDir != filepath.Join(wantData, "exports") {
		t.Fatalf("unexpected export dir: %q", cfg.Paths.ExportDir)
	}
	if cfg.Defaults.Condition != "Very Good" {
		t.Fatalf("unexpected default condition: %q", cfg.Defaults.Condition)
	}
	if cfg.Defaults.RegionCode != "A" {
		t.Fatalf("unexpected default region: %q", cfg.Defaults.RegionCode)
	}
	if cfg.Defaults.Quantity != 1 {
		t.Fatalf("unexpected default quantity: %d", cfg.Defaults.Quantity)
	}
	if cfg.Pricing.Margin != 1.15 {
		t.Fatalf("unexpected pricing margin: %v", cfg.Pricing.Margin)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("unexpected log format: %q", cfg.Logging.Format)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.DataDir, cfg.Paths.ExportDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadAppliesFileOverrides(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(tempHome, "disclot.toml")
	content := strings.Join([]string{
		"[defaults]",
		`condition = "Good"`,
		`location = "Portland, OR"`,
		"quantity = 3",
		"",
		"[pricing]",
		"margin = 1.25",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected config at %q to be used, got %q exists=%v", path, resolved, exists)
	}
	if cfg.Defaults.Condition != "Good" {
		t.Fatalf("condition override not applied: %q", cfg.Defaults.Condition)
	}
	if cfg.Defaults.Location != "Portland, OR" {
		t.Fatalf("location override not applied: %q", cfg.Defaults.Location)
	}
	if cfg.Defaults.Quantity != 3 {
		t.Fatalf("quantity override not applied: %d", cfg.Defaults.Quantity)
	}
	if cfg.Pricing.Margin != 1.25 {
		t.Fatalf("margin override not applied: %v", cfg.Pricing.Margin)
	}
	// Unset keys keep repository defaults.
	if cfg.Defaults.ShippingService != "USPSMedia" {
		t.Fatalf("unexpected shipping service: %q", cfg.Defaults.ShippingService)
	}
}

func TestLoadRejectsBadDomainValues(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(tempHome, "disclot.toml")
	content := strings.Join([]string{
		"[defaults]",
		`region_code = "Z"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(path)
	if err == nil {
		t.Fatal("expected validation error for region Z")
	}
	if !strings.Contains(err.Error(), "region_code") {
		t.Fatalf("error does not name region_code: %v", err)
	}
}

func TestLoadRejectsBadPricing(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(tempHome, "disclot.toml")
	if err := os.WriteFile(path, []byte("[pricing]\nfallback_price = \"free\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error for fallback price")
	}
}

func TestCreateSampleWritesParsableConfig(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(tempHome, ".config", "disclot", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load of sample config failed: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected sample config to resolve, got %q exists=%v", resolved, exists)
	}
	if cfg.Defaults.CategoryID != "617" {
		t.Fatalf("unexpected category in sample: %q", cfg.Defaults.CategoryID)
	}
}
