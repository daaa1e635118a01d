package shipping

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatalog returns canned matcher results, or fails one side.
type stubCatalog struct {
	fixed     []Option
	tiered    []Option
	fixedErr  error
	tieredErr error
	gotNow    time.Time
}

func (s *stubCatalog) FixedOptions(context.Context, Dimensions) ([]Option, error) {
	return s.fixed, s.fixedErr
}

func (s *stubCatalog) TieredOptions(_ context.Context, _ Dimensions, now time.Time) ([]Option, error) {
	s.gotNow = now
	return s.tiered, s.tieredErr
}

func fixedOpt(id int, category, name string, price int) Option {
	return Option{ID: id, CategoryName: category, OptionName: name, TotalPrice: price, PriceType: PriceTypeFixed}
}

func tieredOpt(id int, category, name string, price int) Option {
	tier := name
	return Option{ID: id, CategoryName: category, OptionName: name, TotalPrice: price, PriceType: PriceTypeTiered, SizeTierName: &tier}
}

func TestRecommend_MergesFixedBeforeTiered(t *testing.T) {
	cat := &stubCatalog{
		fixed:  []Option{fixedOpt(1, "A", "a1", 210)},
		tiered: []Option{tieredOpt(10001, "A", "a2", 100)},
	}
	res, err := NewCalculator(cat).Recommend(context.Background(), Dimensions{Length: 1, Width: 1, Height: 1})
	require.NoError(t, err)

	require.Len(t, res.Groups, 1)
	require.Len(t, res.Groups[0].Options, 2)
	// Fixed results lead even when a tiered entry is cheaper.
	assert.Equal(t, 1, res.Groups[0].Options[0].ID)
	assert.Equal(t, 10001, res.Groups[0].Options[1].ID)
	assert.Equal(t, 2, res.TotalAvailable)
}

func TestRecommend_TotalAvailableCountsBeforeGroupCap(t *testing.T) {
	cat := &stubCatalog{
		fixed: []Option{
			fixedOpt(1, "A", "a1", 100),
			fixedOpt(2, "A", "a2", 200),
			fixedOpt(3, "A", "a3", 300),
			fixedOpt(4, "A", "a4", 400),
			fixedOpt(5, "A", "a5", 500),
		},
	}
	res, err := NewCalculator(cat).Recommend(context.Background(), Dimensions{Length: 1, Width: 1, Height: 1})
	require.NoError(t, err)

	assert.Equal(t, 5, res.TotalAvailable)
	require.Len(t, res.Groups, 1)
	require.Len(t, res.Groups[0].Options, MaxOptionsPerGroup)
	// The matchers sort price-ascending, so the cap keeps the cheapest.
	assert.Equal(t, []int{100, 200, 300}, []int{
		res.Groups[0].Options[0].TotalPrice,
		res.Groups[0].Options[1].TotalPrice,
		res.Groups[0].Options[2].TotalPrice,
	})
}

func TestRecommend_NoMatchIsNotAnError(t *testing.T) {
	res, err := NewCalculator(&stubCatalog{}).Recommend(context.Background(), Dimensions{Length: 1, Width: 1, Height: 1})
	require.NoError(t, err)

	assert.Empty(t, res.Groups)
	assert.Zero(t, res.TotalAvailable)
	assert.Nil(t, res.WeightWarnings)
	assert.Equal(t, []string{NoOptionReason}, res.InvalidReasons)
}

func TestRecommend_OmitsWarningsAndReasonsOnMatch(t *testing.T) {
	cat := &stubCatalog{fixed: []Option{fixedOpt(1, "A", "a1", 210)}}
	res, err := NewCalculator(cat).Recommend(context.Background(), Dimensions{Length: 1, Width: 1, Height: 1})
	require.NoError(t, err)

	assert.Nil(t, res.WeightWarnings)
	assert.Nil(t, res.InvalidReasons)
}

func TestRecommend_CatalogFailureIsOpaqueAndTotal(t *testing.T) {
	cause := errors.New("connection refused")
	for _, cat := range []*stubCatalog{
		{fixedErr: cause, tiered: []Option{tieredOpt(10001, "A", "a", 100)}},
		{tieredErr: cause, fixed: []Option{fixedOpt(1, "A", "a", 100)}},
	} {
		res, err := NewCalculator(cat).Recommend(context.Background(), Dimensions{Length: 1, Width: 1, Height: 1})
		assert.Nil(t, res, "no partial result on catalog failure")
		require.Error(t, err)

		var calcErr *CalculationError
		require.ErrorAs(t, err, &calcErr)
		assert.Equal(t, "failed to calculate shipping options", err.Error())
		assert.ErrorIs(t, err, cause) // cause stays reachable for logging
	}
}

func TestRecommend_PinnedClockReachesTierMatcher(t *testing.T) {
	at := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	cat := &stubCatalog{}
	_, err := NewCalculatorAt(cat, func() time.Time { return at }).
		Recommend(context.Background(), Dimensions{Length: 1, Width: 1, Height: 1})
	require.NoError(t, err)
	assert.Equal(t, at, cat.gotNow)
}

func TestGroupOptions_PartitionsByCategoryInFirstSeenOrder(t *testing.T) {
	groups := GroupOptions([]Option{
		fixedOpt(1, "A", "a1", 100),
		fixedOpt(2, "B", "b1", 150),
		fixedOpt(3, "A", "a2", 200),
	})
	require.Len(t, groups, 2)
	assert.Equal(t, "A", groups[0].CategoryName)
	assert.Len(t, groups[0].Options, 2)
	assert.Equal(t, "B", groups[1].CategoryName)
	assert.Len(t, groups[1].Options, 1)
}

func TestGroupOptions_NeverEmitsEmptyGroups(t *testing.T) {
	groups := GroupOptions(nil)
	assert.Empty(t, groups)
	for _, g := range GroupOptions([]Option{fixedOpt(1, "A", "a1", 100)}) {
		assert.NotEmpty(t, g.Options)
	}
}

func TestWeightWarnings_FormatsAndDeduplicates(t *testing.T) {
	one := 1.0
	two := 2.5
	opts := []Option{
		{OptionName: "Neko-Pos", MaxWeightKg: &one},
		{OptionName: "Neko-Pos", MaxWeightKg: &one}, // identical warning collapses
		{OptionName: "Yu-Packet Plus", MaxWeightKg: &two},
		{OptionName: "Unbounded"},
	}
	assert.Equal(t, []string{
		"Neko-Pos: max weight 1kg",
		"Yu-Packet Plus: max weight 2.5kg",
	}, WeightWarnings(opts))
}

func TestWeightWarnings_EmptyWithoutWeightBounds(t *testing.T) {
	assert.Empty(t, WeightWarnings([]Option{{OptionName: "a"}, {OptionName: "b"}}))
}
