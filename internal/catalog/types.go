package catalog

import "time"

// Status gates visibility. An option is only eligible when it and every
// ancestor (service, category) are active.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// TieredIDOffset is added to size-tier IDs when they are projected into the
// unified option view, keeping them out of the fixed-option ID space.
const TieredIDOffset = 10000

// Category is a carrier-level grouping of services.
type Category struct {
	ID                int
	Name              string
	UnderlyingCarrier string
	Status            Status
}

// Service is one shipping product line within a category. A service owns
// either fixed-price options or a size-tier ladder.
type Service struct {
	ID         int
	CategoryID int
	Name       string
	Status     Status
}

// FixedOption is a flat-rate shipping product. All bounds are optional; a
// nil bound is unconstrained. When BasePrice and PackagingPrice are both set
// they sum to TotalPrice.
type FixedOption struct {
	ID                       int
	ServiceID                int
	Name                     string
	TotalPrice               int
	BasePrice                *int
	PackagingPrice           *int
	PackagingName            *string
	PackagingDetails         *string
	RequiresSpecialPackaging bool
	MaxWeightKg              *float64
	MaxSizeCm                *float64
	MaxLengthCm              *float64
	MaxWidthCm               *float64
	MaxHeightCm              *float64
	MaxThicknessCm           *float64
	MinLengthCm              *float64
	MinWidthCm               *float64
	SortOrder                int
	Status                   Status
}

// SizeTier is one rung of a service's size-banded price ladder. Tiers carry
// no per-axis bounds; only the combined-size ceiling and an optional weight
// ceiling apply. The effective window, when set, bounds when the tier may be
// offered.
type SizeTier struct {
	ID             int
	ServiceID      int
	TierName       string
	Price          int
	MaxWeightKg    *float64
	MaxSizeCm      *float64
	EffectiveFrom  *time.Time
	EffectiveUntil *time.Time
}

// Dataset is a complete catalog snapshot: the four record sets the matchers
// query. It backs the in-memory store and the Postgres seeding tool.
type Dataset struct {
	Categories []Category
	Services   []Service
	Options    []FixedOption
	Tiers      []SizeTier
}
