package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newDefaultsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Show the listing defaults applied to every new record",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			d := cfg.Defaults

			rows := [][]string{
				{"condition", d.Condition},
				{"region_code", d.RegionCode},
				{"language", d.Language},
				{"case_type", d.CaseType},
				{"country_of_origin", d.CountryOfOrigin},
				{"quantity", strconv.Itoa(d.Quantity)},
				{"location", d.Location},
				{"category_id", d.CategoryID},
				{"listing_format", d.ListingFormat},
				{"duration", d.Duration},
				{"dispatch_time_max", d.DispatchTimeMax},
				{"shipping_service", d.ShippingService},
				{"shipping_cost", d.ShippingCost},
				{"returns_accepted", d.ReturnsAccepted},
				{"returns_within", d.ReturnsWithin},
				{"refund_option", d.RefundOption},
				{"return_shipping_paid_by", d.ReturnShipping},
				{"best_offer_enabled", yesNo(d.BestOffer)},
				{"pricing.margin", strconv.FormatFloat(cfg.Pricing.Margin, 'f', 2, 64)},
				{"pricing.fallback_price", cfg.Pricing.FallbackPrice},
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, nil))
			return nil
		},
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
