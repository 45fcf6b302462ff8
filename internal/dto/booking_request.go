package dto

type CosmeticItem struct {
	ID       int64 `json:"id"`
	Quantity int64 `json:"quantity"`
}

type BookingRequest struct {
	Name     string `json:"name" form:"name"`
	Phone    string `json:"phone" form:"phone"`
	Email    string `json:"email" form:"email"`
	Address  string `json:"address" form:"address"`
	City     string `json:"city" form:"city"`
	PostCode string `json:"post_code" form:"post_code"`

	CosmeticIDs []CosmeticItem `json:"cosmetic_ids"`
}

type BookingLookupRequest struct {
	Email        string `json:"email" query:"email"`
	BookingTrxID string `json:"booking_trx_id" query:"booking_trx_id"`
}
