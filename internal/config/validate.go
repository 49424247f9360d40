package config

import (
	"errors"
	"fmt"
	"strconv"

	"disclot/internal/schema"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDefaults(); err != nil {
		return err
	}
	if err := c.validatePricing(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateDefaults() error {
	d := c.Defaults
	if d.Condition == "" {
		return errors.New("defaults.condition must be set")
	}
	if d.Location == "" {
		return errors.New("defaults.location must be set. Set DISCLOT_LOCATION env var or edit the config file (create with 'disclot config init')")
	}
	if d.Quantity <= 0 {
		return errors.New("defaults.quantity must be positive")
	}
	if _, err := strconv.Atoi(d.CategoryID); err != nil {
		return fmt.Errorf("defaults.category_id must be numeric, got %q", d.CategoryID)
	}
	if _, err := strconv.Atoi(d.DispatchTimeMax); err != nil {
		return fmt.Errorf("defaults.dispatch_time_max must be numeric, got %q", d.DispatchTimeMax)
	}
	if _, err := strconv.ParseFloat(d.ShippingCost, 64); err != nil {
		return fmt.Errorf("defaults.shipping_cost must be a price, got %q", d.ShippingCost)
	}
	if err := inDomain("defaults.listing_format", d.ListingFormat, schema.ColListingFormat); err != nil {
		return err
	}
	if err := inDomain("defaults.duration", d.Duration, schema.ColDuration); err != nil {
		return err
	}
	if err := inDomain("defaults.region_code", d.RegionCode, schema.ColRegionCode); err != nil {
		return err
	}
	if err := inDomain("defaults.returns_accepted", d.ReturnsAccepted, schema.ColReturnsAccepted); err != nil {
		return err
	}
	if err := inDomain("defaults.returns_within", d.ReturnsWithin, schema.ColReturnsWithin); err != nil {
		return err
	}
	if err := inDomain("defaults.refund_option", d.RefundOption, schema.ColRefundOption); err != nil {
		return err
	}
	if err := inDomain("defaults.return_shipping_paid_by", d.ReturnShipping, schema.ColReturnShipPaid); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePricing() error {
	if c.Pricing.Margin < 1 {
		return errors.New("pricing.margin must be at least 1.0")
	}
	price, err := strconv.ParseFloat(c.Pricing.FallbackPrice, 64)
	if err != nil {
		return fmt.Errorf("pricing.fallback_price must be a price, got %q", c.Pricing.FallbackPrice)
	}
	if price <= 0 {
		return errors.New("pricing.fallback_price must be positive")
	}
	return nil
}

func inDomain(key, value, column string) error {
	col, ok := schema.Lookup(column)
	if !ok {
		return fmt.Errorf("%s: unknown template column %q", key, column)
	}
	if !col.InDomain(value) {
		return fmt.Errorf("%s: %q is not one of %v", key, value, col.Domain)
	}
	return nil
}
