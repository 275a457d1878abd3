package pricing_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperror "gotienda/internal/errors"
	"gotienda/internal/pricing"
)

func TestQuote_WorkedExample(t *testing.T) {
	rates := pricing.DefaultImportRates()

	q, err := rates.Quote([]pricing.ImportItem{
		{Price: 20, InternalShipping: 1, WeightGrams: 200},
		{Price: 30, InternalShipping: 1, WeightGrams: 300},
	})
	require.NoError(t, err)

	assert.InDelta(t, 52.0, q.TotalProductCost, 1e-9)
	assert.Equal(t, 500.0, q.TotalWeightGrams)
	assert.InDelta(t, 24.46, q.InternationalShipping, 1e-9)
	assert.InDelta(t, 2.08, q.RechargeCommission, 1e-9)
	assert.Equal(t, 4.0, q.ServiceCharge)
	assert.InDelta(t, 82.54, q.TotalCost, 1e-9)
	assert.InDelta(t, 41.27, q.CostPerItem, 1e-9)

	assert.InDelta(t, 21.0/52.0, q.Items[0].Share, 1e-12)
	assert.InDelta(t, 31.0/52.0, q.Items[1].Share, 1e-12)
	assert.InDelta(t, 82.54, q.Items[0].LandedCost+q.Items[1].LandedCost, 1e-9)

	assert.Equal(t, "ok", q.Weight.Status)
	assert.Equal(t, 5499.0, q.Weight.RemainingGrams)
}

func TestInternationalShipping_Tiers(t *testing.T) {
	rates := pricing.DefaultImportRates()

	assert.InDelta(t, 24.46, rates.InternationalShipping(0), 1e-9)
	assert.InDelta(t, 24.46, rates.InternationalShipping(1000), 1e-9)
	assert.InDelta(t, 24.46+9.08, rates.InternationalShipping(1001), 1e-9)
	assert.InDelta(t, 24.46+9.08, rates.InternationalShipping(2000), 1e-9)
	assert.InDelta(t, 24.46+2*9.08, rates.InternationalShipping(2001), 1e-9)
}

func TestQuote_ZeroProductCostSplitsEqually(t *testing.T) {
	q, err := pricing.DefaultImportRates().Quote([]pricing.ImportItem{
		{Price: 0, InternalShipping: 0, WeightGrams: 100},
		{Price: 0, InternalShipping: 0, WeightGrams: 100},
	})
	require.NoError(t, err)
	assert.Zero(t, q.TotalProductCost)
	assert.InDelta(t, 0.5, q.Items[0].Share, 1e-12)
	assert.InDelta(t, q.TotalCost, q.Items[0].LandedCost+q.Items[1].LandedCost, 1e-9)

	for _, it := range q.Items {
		assert.False(t, math.IsNaN(it.LandedCost))
		assert.False(t, math.IsInf(it.LandedCost, 0))
	}
}

func TestQuote_OverOptimalWeight(t *testing.T) {
	q, err := pricing.DefaultImportRates().Quote([]pricing.ImportItem{
		{Price: 10, InternalShipping: 1, WeightGrams: 6500},
	})
	require.NoError(t, err)

	assert.Equal(t, "over", q.Weight.Status)
	assert.Equal(t, 501.0, q.Weight.ExcessGrams)
	assert.InDelta(t, 24.46+6*9.08, q.InternationalShipping, 1e-9)
}

func TestQuote_Validation(t *testing.T) {
	rates := pricing.DefaultImportRates()

	_, err := rates.Quote(nil)
	var vErr *apperror.ValidationError
	require.ErrorAs(t, err, &vErr)

	_, err = rates.Quote([]pricing.ImportItem{{Price: -1, InternalShipping: 2, WeightGrams: -5}})
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Fields, 3)
}

func TestQuote_AllocationSumsToTotal(t *testing.T) {
	rates := pricing.DefaultImportRates()
	properties := gopter.NewProperties(nil)

	itemGen := gopter.CombineGens(
		gen.Float64Range(0, 500),
		gen.OneConstOf(0.0, 0.5, 1.0, 1.5),
		gen.Float64Range(0, 3000),
	).Map(func(v []interface{}) pricing.ImportItem {
		return pricing.ImportItem{Price: v[0].(float64), InternalShipping: v[1].(float64), WeightGrams: v[2].(float64)}
	})

	properties.Property("soma dos custos rateados é o custo total", prop.ForAll(
		func(items []pricing.ImportItem) bool {
			q, err := rates.Quote(items)
			if err != nil {
				return false
			}
			var sum float64
			for _, it := range q.Items {
				sum += it.LandedCost
			}
			return math.Abs(sum-q.TotalCost) <= 1e-9*math.Max(1, q.TotalCost)
		},
		gen.SliceOfN(5, itemGen),
	))

	properties.TestingRun(t)
}

func TestQuote_RejectsOverflowingTotals(t *testing.T) {
	rates := pricing.DefaultImportRates()

	q, err := rates.Quote([]pricing.ImportItem{
		{Price: 1e308, InternalShipping: 1, WeightGrams: 1},
		{Price: 1e308, InternalShipping: 1, WeightGrams: 1},
	})

	var vErr *apperror.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "items")
	assert.Empty(t, q.Items)
}
