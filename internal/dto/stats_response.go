package dto

type StatsResponse struct {
	TotalBrands       int64 `json:"total_brands"`
	TotalCosmetics    int64 `json:"total_cosmetics"`
	TotalTransactions int64 `json:"total_transactions"`
	PaidRevenue       int64 `json:"paid_revenue"`
}
