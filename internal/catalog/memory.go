package catalog

import (
	"context"
	"fmt"
	"sort"
	"time"

	"shipcalc/internal/shipping"
)

// Memory is an in-memory shipping.Catalog over a preloaded Dataset. It
// evaluates the same predicates the Postgres store expresses in SQL; catalogs
// are tens of rows, so linear scans are fine. The dataset is read-only after
// construction, so Memory is safe for concurrent use.
type Memory struct {
	categories map[int]Category
	services   map[int]Service
	options    []FixedOption
	tiers      []SizeTier
}

func NewMemory(ds Dataset) *Memory {
	m := &Memory{
		categories: make(map[int]Category, len(ds.Categories)),
		services:   make(map[int]Service, len(ds.Services)),
		options:    ds.Options,
		tiers:      ds.Tiers,
	}
	for _, c := range ds.Categories {
		m.categories[c.ID] = c
	}
	for _, s := range ds.Services {
		m.services[s.ID] = s
	}
	return m
}

func (m *Memory) FixedOptions(_ context.Context, dims shipping.Dimensions) ([]shipping.Option, error) {
	type match struct {
		opt shipping.Option
		ord int
	}
	var matches []match

	for _, opt := range m.options {
		svc, cat, ok := m.activeParents(opt.ServiceID)
		if !ok || opt.Status != StatusActive {
			continue
		}
		if !fitsFixed(opt, dims) {
			continue
		}
		matches = append(matches, match{opt: projectFixed(opt, svc, cat), ord: opt.SortOrder})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.opt.CategoryName != b.opt.CategoryName {
			return a.opt.CategoryName < b.opt.CategoryName
		}
		if a.opt.TotalPrice != b.opt.TotalPrice {
			return a.opt.TotalPrice < b.opt.TotalPrice
		}
		return a.ord < b.ord
	})

	out := make([]shipping.Option, len(matches))
	for i, mt := range matches {
		out[i] = mt.opt
	}
	return out, nil
}

func (m *Memory) TieredOptions(_ context.Context, dims shipping.Dimensions, now time.Time) ([]shipping.Option, error) {
	var out []shipping.Option

	for _, tier := range m.tiers {
		svc, cat, ok := m.activeParents(tier.ServiceID)
		if !ok {
			continue
		}
		if !fitsTier(tier, dims.SizeSum(), now) {
			continue
		}
		out = append(out, projectTier(tier, svc, cat))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CategoryName != out[j].CategoryName {
			return out[i].CategoryName < out[j].CategoryName
		}
		return out[i].TotalPrice < out[j].TotalPrice
	})
	return out, nil
}

// activeParents resolves a service and its category, reporting whether both
// exist and are active.
func (m *Memory) activeParents(serviceID int) (Service, Category, bool) {
	svc, ok := m.services[serviceID]
	if !ok || svc.Status != StatusActive {
		return Service{}, Category{}, false
	}
	cat, ok := m.categories[svc.CategoryID]
	if !ok || cat.Status != StatusActive {
		return Service{}, Category{}, false
	}
	return svc, cat, true
}

// fitsFixed applies every physical-bound predicate. All comparisons are
// inclusive and a nil bound admits anything. The thickness ceiling is
// checked against the height axis, matching how flat-pack products treat
// height as thickness.
func fitsFixed(opt FixedOption, dims shipping.Dimensions) bool {
	return admitsMax(opt.MaxLengthCm, dims.Length) &&
		admitsMax(opt.MaxWidthCm, dims.Width) &&
		admitsMax(opt.MaxHeightCm, dims.Height) &&
		admitsMax(opt.MaxThicknessCm, dims.Height) &&
		admitsMax(opt.MaxSizeCm, dims.SizeSum()) &&
		admitsMin(opt.MinLengthCm, dims.Length) &&
		admitsMin(opt.MinWidthCm, dims.Width)
}

// fitsTier applies the combined-size ceiling and the effective window. Both
// window edges are inclusive and unset edges are unconstrained.
func fitsTier(tier SizeTier, sizeSum float64, now time.Time) bool {
	if !admitsMax(tier.MaxSizeCm, sizeSum) {
		return false
	}
	if tier.EffectiveFrom != nil && now.Before(*tier.EffectiveFrom) {
		return false
	}
	if tier.EffectiveUntil != nil && now.After(*tier.EffectiveUntil) {
		return false
	}
	return true
}

func admitsMax(bound *float64, v float64) bool { return bound == nil || v <= *bound }

func admitsMin(bound *float64, v float64) bool { return bound == nil || v >= *bound }

func projectFixed(opt FixedOption, svc Service, cat Category) shipping.Option {
	return shipping.Option{
		ID:                       opt.ID,
		CategoryName:             cat.Name,
		ServiceName:              svc.Name,
		OptionName:               opt.Name,
		TotalPrice:               opt.TotalPrice,
		BasePrice:                opt.BasePrice,
		PackagingPrice:           opt.PackagingPrice,
		PackagingName:            opt.PackagingName,
		PackagingDetails:         opt.PackagingDetails,
		RequiresSpecialPackaging: opt.RequiresSpecialPackaging,
		MaxWeightKg:              opt.MaxWeightKg,
		MaxSizeCm:                opt.MaxSizeCm,
		MaxLengthCm:              opt.MaxLengthCm,
		MaxWidthCm:               opt.MaxWidthCm,
		MaxHeightCm:              opt.MaxHeightCm,
		MaxThicknessCm:           opt.MaxThicknessCm,
		MinLengthCm:              opt.MinLengthCm,
		MinWidthCm:               opt.MinWidthCm,
		PriceType:                shipping.PriceTypeFixed,
		SizeTierName:             nil,
	}
}

func projectTier(tier SizeTier, svc Service, cat Category) shipping.Option {
	price := tier.Price
	zero := 0
	name := tier.TierName
	return shipping.Option{
		ID:             tier.ID + TieredIDOffset,
		CategoryName:   cat.Name,
		ServiceName:    svc.Name,
		OptionName:     fmt.Sprintf("%s (%s)", svc.Name, tier.TierName),
		TotalPrice:     tier.Price,
		BasePrice:      &price,
		PackagingPrice: &zero,
		MaxWeightKg:    tier.MaxWeightKg,
		MaxSizeCm:      tier.MaxSizeCm,
		PriceType:      shipping.PriceTypeTiered,
		SizeTierName:   &name,
	}
}
