package config

const (
	defaultDataDir         = "~/.local/share/disclot"
	defaultExportDir       = "~/.local/share/disclot/exports"
	defaultLogDir          = "~/.local/share/disclot/logs"
	defaultCondition       = "Very Good"
	defaultRegionCode      = "A"
	defaultLanguage        = "English"
	defaultCaseType        = "Standard Blu-ray Case"
	defaultCountryOfOrigin = "United States"
	defaultQuantity        = 1
	defaultLocation        = "Los Angeles, CA"
	defaultCategoryID      = "617"
	defaultListingFormat   = "FixedPriceItem"
	defaultDuration        = "GTC"
	defaultDispatchTime    = "2"
	defaultShippingService = "USPSMedia"
	defaultShippingCost    = "4.00"
	defaultReturnsAccepted = "ReturnsAccepted"
	defaultReturnsWithin   = "Days_30"
	defaultRefundOption    = "MoneyBack"
	defaultReturnShipping  = "Buyer"
	defaultPricingMargin   = 1.15
	defaultFallbackPrice   = "12.99"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:   defaultDataDir,
			ExportDir: defaultExportDir,
			LogDir:    defaultLogDir,
		},
		Defaults: Defaults{
			Condition:       defaultCondition,
			RegionCode:      defaultRegionCode,
			Language:        defaultLanguage,
			CaseType:        defaultCaseType,
			CountryOfOrigin: defaultCountryOfOrigin,
			Quantity:        defaultQuantity,
			Location:        defaultLocation,
			CategoryID:      defaultCategoryID,
			ListingFormat:   defaultListingFormat,
			Duration:        defaultDuration,
			DispatchTimeMax: defaultDispatchTime,
			ShippingService: defaultShippingService,
			ShippingCost:    defaultShippingCost,
			ReturnsAccepted: defaultReturnsAccepted,
			ReturnsWithin:   defaultReturnsWithin,
			RefundOption:    defaultRefundOption,
			ReturnShipping:  defaultReturnShipping,
		},
		Pricing: Pricing{
			Margin:        defaultPricingMargin,
			FallbackPrice: defaultFallbackPrice,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
