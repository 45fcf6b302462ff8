package pricing

import (
	"testing"

	"github.com/adcahya/cosmetic-shop/booking-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	type TestCase struct {
		Name     string
		Items    []LineItem
		Prices   PriceLookup
		Expected Breakdown
	}

	testCases := []TestCase{
		{
			Name:   "Single item",
			Items:  []LineItem{{CosmeticID: 1, Quantity: 2}},
			Prices: PriceLookup{1: 100000},
			Expected: Breakdown{
				Subtotal:      200000,
				Tax:           22000,
				Total:         222000,
				TotalQuantity: 2,
			},
		},
		{
			Name: "Multiple items",
			Items: []LineItem{
				{CosmeticID: 1, Quantity: 1},
				{CosmeticID: 2, Quantity: 3},
			},
			Prices: PriceLookup{1: 50000, 2: 75000},
			Expected: Breakdown{
				Subtotal:      275000,
				Tax:           30250,
				Total:         305250,
				TotalQuantity: 4,
			},
		},
		{
			Name: "Incomplete rows are skipped",
			Items: []LineItem{
				{CosmeticID: 1, Quantity: 2},
				{CosmeticID: 0, Quantity: 5},
				{CosmeticID: 2, Quantity: 0},
				{CosmeticID: 3, Quantity: -1},
			},
			Prices: PriceLookup{1: 100000},
			Expected: Breakdown{
				Subtotal:      200000,
				Tax:           22000,
				Total:         222000,
				TotalQuantity: 2,
			},
		},
		{
			Name:     "Empty after filtering",
			Items:    []LineItem{{CosmeticID: 0, Quantity: 1}},
			Prices:   PriceLookup{},
			Expected: Breakdown{},
		},
		{
			// 45455 * 0.11 = 5000.05 -> 5000; 50 * 0.11 = 5.5 -> 6
			Name:   "Tax rounds half away from zero",
			Items:  []LineItem{{CosmeticID: 1, Quantity: 1}},
			Prices: PriceLookup{1: 50},
			Expected: Breakdown{
				Subtotal:      50,
				Tax:           6,
				Total:         56,
				TotalQuantity: 1,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			breakdown, err := Compute(tc.Items, tc.Prices)
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, breakdown)
		})
	}
}

func TestComputeUnknownCosmetic(t *testing.T) {
	_, err := Compute([]LineItem{{CosmeticID: 42, Quantity: 1}}, PriceLookup{1: 100000})
	assert.ErrorIs(t, err, errs.ErrCosmeticNotFound)
}

func TestComputeDoesNotMutateLookup(t *testing.T) {
	prices := PriceLookup{1: 100000}
	_, err := Compute([]LineItem{{CosmeticID: 1, Quantity: 2}}, prices)
	require.NoError(t, err)
	assert.Equal(t, PriceLookup{1: 100000}, prices)
}

func TestFilterLineItemsIsIdempotent(t *testing.T) {
	items := []LineItem{
		{CosmeticID: 1, Quantity: 2},
		{CosmeticID: 0, Quantity: 3},
		{CosmeticID: 2, Quantity: 0},
	}

	once := FilterLineItems(items)
	twice := FilterLineItems(once)

	assert.Equal(t, once, twice)
}
