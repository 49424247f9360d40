package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	DataDir   string `toml:"data_dir"`
	ExportDir string `toml:"export_dir"`
	LogDir    string `toml:"log_dir"`
}

// Defaults contains the per-listing default values merged into every record
// that does not override them.
type Defaults struct {
	Condition       string `toml:"condition"`
	RegionCode      string `toml:"region_code"`
	Language        string `toml:"language"`
	CaseType        string `toml:"case_type"`
	CountryOfOrigin string `toml:"country_of_origin"`
	Quantity        int    `toml:"quantity"`
	Location        string `toml:"location"`
	CategoryID      string `toml:"category_id"`
	ListingFormat   string `toml:"listing_format"`
	Duration        string `toml:"duration"`
	DispatchTimeMax string `toml:"dispatch_time_max"`
	ShippingService string `toml:"shipping_service"`
	ShippingCost    string `toml:"shipping_cost"`
	ReturnsAccepted string `toml:"returns_accepted"`
	ReturnsWithin   string `toml:"returns_within"`
	RefundOption    string `toml:"refund_option"`
	ReturnShipping  string `toml:"return_shipping_paid_by"`
	BestOffer       bool   `toml:"best_offer_enabled"`
}

// Pricing contains price derivation policy for records without an explicit
// suggested price.
type Pricing struct {
	// Margin multiplies the researched average market price.
	Margin float64 `toml:"margin"`
	// FallbackPrice is used when no pricing research is available.
	FallbackPrice string `toml:"fallback_price"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for disclot.
//
// Configuration sections:
//   - Paths: data, export, and log directories
//   - Defaults: listing field defaults applied by the resolver
//   - Pricing: margin and fallback for derived start prices
//   - Logging: log format and level
type Config struct {
	Paths    Paths    `toml:"paths"`
	Defaults Defaults `toml:"defaults"`
	Pricing  Pricing  `toml:"pricing"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/disclot/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("disclot.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories the tool writes into.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.ExportDir, c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// SnapshotPath returns the location of the working-state snapshot.
func (c *Config) SnapshotPath() string {
	return filepath.Join(c.Paths.DataDir, "listings_working.csv")
}

// SnapshotLockPath returns the lock file guarding the working-state snapshot.
func (c *Config) SnapshotLockPath() string {
	return filepath.Join(c.Paths.DataDir, "listings_working.lock")
}

// ExportLedgerPath returns the location of the export history database.
func (c *Config) ExportLedgerPath() string {
	return filepath.Join(c.Paths.DataDir, "exports.db")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
