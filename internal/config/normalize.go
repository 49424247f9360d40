package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeDefaults()
	c.normalizePricing()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ExportDir) == "" {
		c.Paths.ExportDir = defaultExportDir
	}
	if c.Paths.ExportDir, err = expandPath(c.Paths.ExportDir); err != nil {
		return fmt.Errorf("paths.export_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeDefaults() {
	d := &c.Defaults
	d.Condition = strings.TrimSpace(d.Condition)
	d.RegionCode = strings.TrimSpace(d.RegionCode)
	d.Language = strings.TrimSpace(d.Language)
	d.CaseType = strings.TrimSpace(d.CaseType)
	d.CountryOfOrigin = strings.TrimSpace(d.CountryOfOrigin)
	d.Location = strings.TrimSpace(d.Location)
	d.CategoryID = strings.TrimSpace(d.CategoryID)
	d.ListingFormat = strings.TrimSpace(d.ListingFormat)
	d.Duration = strings.TrimSpace(d.Duration)
	d.DispatchTimeMax = strings.TrimSpace(d.DispatchTimeMax)
	d.ShippingService = strings.TrimSpace(d.ShippingService)
	d.ShippingCost = strings.TrimSpace(d.ShippingCost)
	d.ReturnsAccepted = strings.TrimSpace(d.ReturnsAccepted)
	d.ReturnsWithin = strings.TrimSpace(d.ReturnsWithin)
	d.RefundOption = strings.TrimSpace(d.RefundOption)
	d.ReturnShipping = strings.TrimSpace(d.ReturnShipping)

	if d.Location == "" {
		if value, ok := os.LookupEnv("DISCLOT_LOCATION"); ok {
			d.Location = strings.TrimSpace(value)
		}
	}
	if d.Quantity <= 0 {
		d.Quantity = defaultQuantity
	}
}

func (c *Config) normalizePricing() {
	c.Pricing.FallbackPrice = strings.TrimSpace(c.Pricing.FallbackPrice)
	if c.Pricing.FallbackPrice == "" {
		c.Pricing.FallbackPrice = defaultFallbackPrice
	}
	if c.Pricing.Margin <= 0 {
		c.Pricing.Margin = defaultPricingMargin
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
