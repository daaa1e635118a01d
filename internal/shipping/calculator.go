package shipping

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
)

// MaxOptionsPerGroup caps how many options a group exposes for display.
// The merged set arriving at the grouper is already price-ascending within
// each matcher, so keeping the first entries keeps the cheapest.
const MaxOptionsPerGroup = 3

// NoOptionReason is the single explanatory string returned when nothing in
// the catalog admits the package.
const NoOptionReason = "no suitable shipping option found"

// CalculationError hides the catalog-layer cause behind a generic message.
// The cause stays reachable through Unwrap for internal logging; it must not
// leak into user-facing output.
type CalculationError struct {
	cause error
}

func (e *CalculationError) Error() string { return "failed to calculate shipping options" }

func (e *CalculationError) Unwrap() error { return e.cause }

// Calculator recommends shipping options for a set of dimensions. The
// catalog is injected so tests can run against an in-memory implementation.
type Calculator struct {
	catalog Catalog
	now     func() time.Time
}

func NewCalculator(catalog Catalog) *Calculator {
	return &Calculator{catalog: catalog, now: time.Now}
}

// NewCalculatorAt pins the clock used for tier effective-date checks.
func NewCalculatorAt(catalog Catalog, now func() time.Time) *Calculator {
	if now == nil {
		now = time.Now
	}
	return &Calculator{catalog: catalog, now: now}
}

// Recommend runs both matchers concurrently, merges fixed results ahead of
// tiered ones, and assembles the final result. Dimensions are assumed to
// have passed validation already; Recommend does not re-validate.
//
// If either catalog query fails the whole call fails with a single
// *CalculationError. No partial result is ever returned.
func (c *Calculator) Recommend(ctx context.Context, dims Dimensions) (*Result, error) {
	var fixed, tiered []Option

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		fixed, err = c.catalog.FixedOptions(ctx, dims)
		return err
	})
	g.Go(func() error {
		var err error
		tiered, err = c.catalog.TieredOptions(ctx, dims, c.now())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, &CalculationError{cause: err}
	}

	merged := make([]Option, 0, len(fixed)+len(tiered))
	merged = append(merged, fixed...)
	merged = append(merged, tiered...)

	result := &Result{
		Groups:         GroupOptions(merged),
		TotalAvailable: len(merged),
	}
	if warnings := WeightWarnings(merged); len(warnings) > 0 {
		result.WeightWarnings = warnings
	}
	if len(merged) == 0 {
		result.InvalidReasons = []string{NoOptionReason}
	}
	return result, nil
}

// GroupOptions partitions options by category name, preserving the order in
// which categories first appear and the order of options within each
// category. Groups are capped at MaxOptionsPerGroup entries; categories with
// no options are never emitted.
func GroupOptions(options []Option) []Group {
	groups := make([]Group, 0, 2)
	index := make(map[string]int, 2)

	for _, opt := range options {
		i, ok := index[opt.CategoryName]
		if !ok {
			groups = append(groups, Group{CategoryName: opt.CategoryName})
			i = len(groups) - 1
			index[opt.CategoryName] = i
		}
		if len(groups[i].Options) < MaxOptionsPerGroup {
			groups[i].Options = append(groups[i].Options, opt)
		}
	}
	return groups
}

// WeightWarnings synthesizes one advisory string per option that carries a
// maximum-weight bound, deduplicated by exact string equality with first
// occurrence winning.
func WeightWarnings(options []Option) []string {
	var warnings []string
	seen := make(map[string]struct{})

	for _, opt := range options {
		if opt.MaxWeightKg == nil {
			continue
		}
		w := fmt.Sprintf("%s: max weight %skg", opt.OptionName, strconv.FormatFloat(*opt.MaxWeightKg, 'f', -1, 64))
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		warnings = append(warnings, w)
	}
	return warnings
}
