package pricing

import (
	"math"

	"github.com/adcahya/cosmetic-shop/booking-service/pkg/errs"
)

const TaxRate = 0.11

type LineItem struct {
	CosmeticID int64
	Quantity   int64
}

type PriceLookup map[int64]int64

// Breakdown holds the monetary results of pricing a booking, in whole Rupiah.
type Breakdown struct {
	Subtotal      int64
	Tax           int64
	Total         int64
	TotalQuantity int64
}

// FilterLineItems drops rows with a missing cosmetic reference or a
// non-positive quantity. Filtering twice yields the same result as once.
func FilterLineItems(items []LineItem) []LineItem {
	filtered := make([]LineItem, 0, len(items))
	for _, item := range items {
		if item.CosmeticID == 0 || item.Quantity <= 0 {
			continue
		}
		filtered = append(filtered, item)
	}

	return filtered
}

// Compute prices the given line items against the price lookup. Incomplete
// rows are filtered out first; every surviving row must resolve to a price.
func Compute(items []LineItem, prices PriceLookup) (Breakdown, error) {
	var breakdown Breakdown

	for _, item := range FilterLineItems(items) {
		price, ok := prices[item.CosmeticID]
		if !ok {
			return Breakdown{}, errs.ErrCosmeticNotFound
		}

		breakdown.Subtotal += price * item.Quantity
		breakdown.TotalQuantity += item.Quantity
	}

	// round-half-away-from-zero, matching the admin form's totals
	breakdown.Tax = int64(math.Round(float64(breakdown.Subtotal) * TaxRate))
	breakdown.Total = breakdown.Subtotal + breakdown.Tax

	return breakdown, nil
}
