package domain

type BookingTransaction struct {
	ID                 int64   `db:"id"`
	BookingTrxID       string  `db:"booking_trx_id"`
	Name               string  `db:"name"`
	Phone              string  `db:"phone"`
	Email              string  `db:"email"`
	Address            string  `db:"address"`
	City               string  `db:"city"`
	PostCode           string  `db:"post_code"`
	Proof              *string `db:"proof"`
	Quantity           int64   `db:"quantity"`
	SubTotalAmount     int64   `db:"sub_total_amount"`
	TotalTaxAmount     int64   `db:"total_tax_amount"`
	TotalAmount        int64   `db:"total_amount"`
	IsPaid             bool    `db:"is_paid"`
	CreatedAt          int64   `db:"created_at"`
	UpdatedAt          int64   `db:"updated_at"`
	DeletedAt          *int64  `db:"deleted_at"`
	TransactionDetails []TransactionDetail
}

type TransactionDetail struct {
	ID                   int64  `db:"id"`
	BookingTransactionID int64  `db:"booking_transaction_id"`
	CosmeticID           int64  `db:"cosmetic_id"`
	Quantity             int64  `db:"quantity"`
	Price                int64  `db:"price"`
	CreatedAt            int64  `db:"created_at"`
	UpdatedAt            int64  `db:"updated_at"`
	DeletedAt            *int64 `db:"deleted_at"`
	Cosmetic             Cosmetic
}
