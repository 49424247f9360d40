package schema

// Kind classifies the values a template column accepts.
type Kind int

const (
	KindFreeText Kind = iota
	KindEnumerated
	KindNumeric
	KindURLList
)

// Column describes one column of the bulk-upload template.
type Column struct {
	// Name is the exact header cell the marketplace expects.
	Name string
	// Required marks columns the uploader rejects when empty.
	Required bool
	Kind     Kind
	// Domain lists accepted values for enumerated columns.
	Domain []string
	// Default is the constant literal emitted when no projection rule
	// supplies a value for the column.
	Default string
}

// Names of columns referenced by projection rules and validation.
const (
	ColAction          = "*Action"
	ColCategory        = "*Category"
	ColTitle           = "*Title"
	ColConditionID     = "*ConditionID"
	ColFormatSpecific  = "*C:Format"
	ColMovieTitle      = "*C:Movie/TV Title"
	ColStudio          = "C:Studio"
	ColGenre           = "C:Genre"
	ColSubGenre        = "C:Sub-Genre"
	ColDirector        = "C:Director"
	ColActor           = "C:Actor"
	ColReleaseYear     = "C:Release Year"
	ColRating          = "C:Rating"
	ColRunTime         = "C:Run Time"
	ColRegionCode      = "C:Region Code"
	ColLanguage        = "C:Language"
	ColSubtitleLang    = "C:Subtitle Language"
	ColCaseType        = "C:Case Type"
	ColSpecialFeatures = "C:Special Features"
	ColCountryOfOrigin = "C:Country of Origin"
	ColDescription     = "*Description"
	ColListingFormat   = "*Format"
	ColDuration        = "*Duration"
	ColStartPrice      = "*StartPrice"
	ColBuyItNowPrice   = "BuyItNowPrice"
	ColQuantity        = "*Quantity"
	ColLocation        = "*Location"
	ColPicURL          = "PicURL"
	ColGalleryType     = "GalleryType"
	ColShippingType    = "ShippingType"
	ColShipService     = "ShippingService-1:Option"
	ColShipCost        = "ShippingService-1:Cost"
	ColDispatchTimeMax = "*DispatchTimeMax"
	ColReturnsAccepted = "*ReturnsAcceptedOption"
	ColReturnsWithin   = "ReturnsWithinOption"
	ColRefundOption    = "RefundOption"
	ColReturnShipPaid  = "ShippingCostPaidByOption"
	ColBestOffer       = "BestOfferEnabled"
	ColBestOfferAccept = "BestOfferAutoAcceptPrice"
	ColBestOfferMin    = "MinimumBestOfferPrice"
)

// MaxPhotoURLs is the template's stated limit for PicURL entries.
const MaxPhotoURLs = 12

// Value domains for the enumerated columns this tool fills in.
var (
	ConditionIDDomain   = []string{"1000", "1500", "3000", "4000", "5000", "6000"}
	RegionCodeDomain    = []string{"A", "B", "C", "Free"}
	RatingDomain        = []string{"G", "PG", "PG-13", "R", "NC-17", "NR", "Unrated"}
	ListingFormatDomain = []string{"FixedPriceItem", "Auction"}
	DurationDomain      = []string{"GTC", "Days_3", "Days_5", "Days_7", "Days_10", "Days_30"}
	ShippingTypeDomain  = []string{"Flat", "Calculated", "Freight"}
	ReturnsDomain       = []string{"ReturnsAccepted", "ReturnsNotAccepted"}
)

// columns holds the full template layout in output order. The set mirrors
// the marketplace's category listing template for the DVDs & Blu-ray Discs
// category; only a subset carries projection rules, the rest emit their
// default literal (usually empty).
var columns = []Column{
	{Name: ColAction, Required: true, Kind: KindEnumerated, Domain: []string{"Add", "Revise", "Relist", "End"}, Default: "Add"},
	{Name: "CustomLabel", Kind: KindFreeText},
	{Name: ColCategory, Required: true, Kind: KindNumeric, Default: "617"},
	{Name: "StoreCategory", Kind: KindNumeric},
	{Name: ColTitle, Required: true, Kind: KindFreeText},
	{Name: "Subtitle", Kind: KindFreeText},
	{Name: "Relationship", Kind: KindFreeText},
	{Name: "RelationshipDetails", Kind: KindFreeText},
	{Name: "ScheduleTime", Kind: KindFreeText},
	{Name: ColConditionID, Required: true, Kind: KindEnumerated, Domain: ConditionIDDomain},
	{Name: "ConditionDescription", Kind: KindFreeText},
	{Name: ColFormatSpecific, Required: true, Kind: KindFreeText, Default: "Blu-ray"},
	{Name: ColMovieTitle, Required: true, Kind: KindFreeText},
	{Name: ColStudio, Kind: KindFreeText},
	{Name: ColGenre, Kind: KindFreeText},
	{Name: ColSubGenre, Kind: KindFreeText},
	{Name: ColDirector, Kind: KindFreeText},
	{Name: ColActor, Kind: KindFreeText},
	{Name: ColReleaseYear, Kind: KindNumeric},
	{Name: ColRating, Kind: KindEnumerated, Domain: RatingDomain},
	{Name: ColRunTime, Kind: KindNumeric},
	{Name: ColRegionCode, Kind: KindEnumerated, Domain: RegionCodeDomain},
	{Name: ColLanguage, Kind: KindFreeText},
	{Name: ColSubtitleLang, Kind: KindFreeText},
	{Name: ColCaseType, Kind: KindFreeText},
	{Name: ColSpecialFeatures, Kind: KindFreeText},
	{Name: "C:Edition", Kind: KindFreeText},
	{Name: ColCountryOfOrigin, Kind: KindFreeText, Default: "United States"},
	{Name: "C:Video Format", Kind: KindFreeText},
	{Name: "C:Number of Discs", Kind: KindNumeric},
	{Name: "C:Season", Kind: KindFreeText},
	{Name: "C:UPC", Kind: KindFreeText},
	{Name: "C:EAN", Kind: KindFreeText},
	{Name: "C:MPN", Kind: KindFreeText},
	{Name: ColDescription, Required: true, Kind: KindFreeText},
	{Name: ColListingFormat, Required: true, Kind: KindEnumerated, Domain: ListingFormatDomain, Default: "FixedPriceItem"},
	{Name: ColDuration, Required: true, Kind: KindEnumerated, Domain: DurationDomain, Default: "GTC"},
	{Name: ColStartPrice, Required: true, Kind: KindNumeric},
	{Name: ColBuyItNowPrice, Kind: KindNumeric},
	{Name: "ReservePrice", Kind: KindNumeric},
	{Name: ColQuantity, Required: true, Kind: KindNumeric},
	{Name: "ImmediatePayRequired", Kind: KindNumeric},
	{Name: ColLocation, Required: true, Kind: KindFreeText},
	{Name: ColPicURL, Kind: KindURLList},
	{Name: ColGalleryType, Kind: KindEnumerated, Domain: []string{"Gallery", "Plus", "Featured", "None"}},
	{Name: "GalleryDuration", Kind: KindFreeText},
	{Name: "VideoID", Kind: KindFreeText},
	{Name: ColShippingType, Kind: KindEnumerated, Domain: ShippingTypeDomain, Default: "Flat"},
	{Name: ColShipService, Kind: KindFreeText},
	{Name: ColShipCost, Kind: KindNumeric},
	{Name: "ShippingService-1:Priority", Kind: KindNumeric},
	{Name: "ShippingService-2:Option", Kind: KindFreeText},
	{Name: "ShippingService-2:Cost", Kind: KindNumeric},
	{Name: "ShippingService-2:Priority", Kind: KindNumeric},
	{Name: "IntlShippingService-1:Option", Kind: KindFreeText},
	{Name: "IntlShippingService-1:Cost", Kind: KindNumeric},
	{Name: "IntlShippingService-1:Locations", Kind: KindFreeText},
	{Name: "IntlShippingService-1:Priority", Kind: KindNumeric},
	{Name: ColDispatchTimeMax, Required: true, Kind: KindNumeric},
	{Name: "PackageType", Kind: KindFreeText},
	{Name: "WeightMajor", Kind: KindNumeric},
	{Name: "WeightMinor", Kind: KindNumeric},
	{Name: "PackageLength", Kind: KindNumeric},
	{Name: "PackageDepth", Kind: KindNumeric},
	{Name: "PackageWidth", Kind: KindNumeric},
	{Name: "ShippingIrregular", Kind: KindNumeric},
	{Name: "ExcludeShipToLocation", Kind: KindFreeText},
	{Name: "GlobalShipping", Kind: KindNumeric},
	{Name: "PaymentProfileName", Kind: KindFreeText},
	{Name: "ReturnProfileName", Kind: KindFreeText},
	{Name: "ShippingProfileName", Kind: KindFreeText},
	{Name: ColReturnsAccepted, Required: true, Kind: KindEnumerated, Domain: ReturnsDomain, Default: "ReturnsAccepted"},
	{Name: ColReturnsWithin, Kind: KindEnumerated, Domain: []string{"Days_14", "Days_30", "Days_60"}},
	{Name: ColRefundOption, Kind: KindEnumerated, Domain: []string{"MoneyBack", "MoneyBackOrExchange"}},
	{Name: ColReturnShipPaid, Kind: KindEnumerated, Domain: []string{"Buyer", "Seller"}},
	{Name: "AdditionalDetails", Kind: KindFreeText},
	{Name: ColBestOffer, Kind: KindNumeric},
	{Name: ColBestOfferAccept, Kind: KindNumeric},
	{Name: ColBestOfferMin, Kind: KindNumeric},
	{Name: "LotSize", Kind: KindNumeric},
	{Name: "SellerPaymentInstructions", Kind: KindFreeText},
	{Name: "PrivateListing", Kind: KindNumeric},
	{Name: "SalesTaxPercent", Kind: KindNumeric},
	{Name: "SalesTaxState", Kind: KindFreeText},
	{Name: "ShippingDiscountProfileID", Kind: KindNumeric},
	{Name: "PromotionalShippingDiscount", Kind: KindNumeric},
	{Name: "InternationalPromotionalShippingDiscount", Kind: KindNumeric},
	{Name: "ApplyShippingDiscount", Kind: KindNumeric},
	{Name: "OutOfStockControl", Kind: KindNumeric},
	{Name: "EbayPlus", Kind: KindNumeric},
	{Name: "CharityID", Kind: KindNumeric},
	{Name: "CharityDonationPercent", Kind: KindNumeric},
	{Name: "CustomAttributes", Kind: KindFreeText},
}

var columnIndex = buildIndex()

func buildIndex() map[string]int {
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		index[col.Name] = i
	}
	return index
}

// Columns returns the full column set in template order.
func Columns() []Column {
	out := make([]Column, len(columns))
	copy(out, columns)
	return out
}

// RequiredColumns returns the subset of columns the uploader rejects when empty.
func RequiredColumns() []Column {
	out := make([]Column, 0, 16)
	for _, col := range columns {
		if col.Required {
			out = append(out, col)
		}
	}
	return out
}

// Names returns the header row in template order.
func Names() []string {
	out := make([]string, len(columns))
	for i, col := range columns {
		out[i] = col.Name
	}
	return out
}

// Count reports the number of template columns.
func Count() int {
	return len(columns)
}

// Lookup returns the column descriptor for a name.
func Lookup(name string) (Column, bool) {
	i, ok := columnIndex[name]
	if !ok {
		return Column{}, false
	}
	return columns[i], true
}

// Index returns the position of a column within the template order.
func Index(name string) (int, bool) {
	i, ok := columnIndex[name]
	return i, ok
}

// InDomain reports whether value is an accepted member of an enumerated
// column's domain. Columns without a domain accept any value.
func (c Column) InDomain(value string) bool {
	if len(c.Domain) == 0 {
		return true
	}
	for _, accepted := range c.Domain {
		if accepted == value {
			return true
		}
	}
	return false
}
