package dto

type Filter struct {
	Limit        int    `query:"limit"`
	Page         int    `query:"page"`
	Q            string `query:"q"`
	CategorySlug string `query:"category"`
	BrandSlug    string `query:"brand"`
	IsPopular    bool   `query:"is_popular"`
	IsPaid       *bool  `query:"is_paid"`
}

type PaginationMetadata struct {
	TotalCount uint64 `json:"total_count"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
}

type PaginationResponse struct {
	Metadata PaginationMetadata `json:"_metadata"`
	Records  interface{}        `json:"records"`
}
