package dto

type BookingResponse struct {
	ID                 int64                       `json:"id"`
	BookingTrxID       string                      `json:"booking_trx_id"`
	Name               string                      `json:"name"`
	Phone              string                      `json:"phone"`
	Email              string                      `json:"email"`
	Address            string                      `json:"address"`
	City               string                      `json:"city"`
	PostCode           string                      `json:"post_code"`
	Proof              *string                     `json:"proof"`
	Quantity           int64                       `json:"quantity"`
	SubTotalAmount     int64                       `json:"sub_total_amount"`
	TotalTaxAmount     int64                       `json:"total_tax_amount"`
	TotalAmount        int64                       `json:"total_amount"`
	IsPaid             bool                        `json:"is_paid"`
	TransactionDetails []TransactionDetailResponse `json:"transaction_details"`
}

type TransactionDetailResponse struct {
	ID         int64            `json:"id"`
	CosmeticID int64            `json:"cosmetic_id"`
	Quantity   int64            `json:"quantity"`
	Price      int64            `json:"price"`
	Cosmetic   CosmeticResponse `json:"cosmetic"`
}
