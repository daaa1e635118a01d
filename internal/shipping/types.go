package shipping

import (
	"context"
	"time"
)

// Dimensions are the three package measurements in centimeters. The matchers
// apply each catalog bound to its declared field, so callers only need to be
// consistent about which side they call length vs. width.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SizeSum is the combined three-side measurement used by size-tiered services.
func (d Dimensions) SizeSum() float64 {
	return d.Length + d.Width + d.Height
}

// Price type discriminators for Option.PriceType.
const (
	PriceTypeFixed  = "fixed"
	PriceTypeTiered = "tiered"
)

// Option is the unified view of a matched shipping product, whether it came
// from the fixed-price options or from a size-tier ladder. Bounds that do not
// apply to the product are nil.
type Option struct {
	ID                       int      `json:"id"`
	CategoryName             string   `json:"categoryName"`
	ServiceName              string   `json:"serviceName"`
	OptionName               string   `json:"optionName"`
	TotalPrice               int      `json:"totalPrice"`
	BasePrice                *int     `json:"basePrice"`
	PackagingPrice           *int     `json:"packagingPrice"`
	PackagingName            *string  `json:"packagingName"`
	PackagingDetails         *string  `json:"packagingDetails"`
	RequiresSpecialPackaging bool     `json:"requiresSpecialPackaging"`
	MaxWeightKg              *float64 `json:"maxWeightKg"`
	MaxSizeCm                *float64 `json:"maxSizeCm"`
	MaxLengthCm              *float64 `json:"maxLengthCm"`
	MaxWidthCm               *float64 `json:"maxWidthCm"`
	MaxHeightCm              *float64 `json:"maxHeightCm"`
	MaxThicknessCm           *float64 `json:"maxThicknessCm"`
	MinLengthCm              *float64 `json:"minLengthCm"`
	MinWidthCm               *float64 `json:"minWidthCm"`
	PriceType                string   `json:"priceType"`
	SizeTierName             *string  `json:"sizeTierName"`
}

// Group is one carrier category with up to three displayable options,
// cheapest first.
type Group struct {
	CategoryName string   `json:"categoryName"`
	Options      []Option `json:"options"`
}

// Result is the full recommendation for one set of dimensions.
type Result struct {
	Groups         []Group  `json:"groups"`
	TotalAvailable int      `json:"totalAvailable"`
	WeightWarnings []string `json:"weightWarnings,omitempty"`
	InvalidReasons []string `json:"invalidReasons,omitempty"`
}

// Catalog is the read-only query capability the matchers run against.
// Implementations must apply the inclusive bound predicates, the
// active-status gating across the category/service/option hierarchy, and the
// load-bearing sort order (category name, then price, then explicit sort
// order for fixed options) described on the methods.
type Catalog interface {
	// FixedOptions returns active flat-rate options admitting dims, sorted
	// ascending by category name, total price, then sort order.
	FixedOptions(ctx context.Context, dims Dimensions) ([]Option, error)

	// TieredOptions returns active size-tier entries admitting dims at the
	// given instant, sorted ascending by category name then price.
	TieredOptions(ctx context.Context, dims Dimensions, now time.Time) ([]Option, error)
}
