package repository

import (
	"context"
	"database/sql"

	"github.com/adcahya/cosmetic-shop/booking-service/internal/domain"
	pkgdto "github.com/adcahya/cosmetic-shop/booking-service/pkg/dto"
	"github.com/adcahya/cosmetic-shop/booking-service/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type BookingRepositoryImpl struct {
	db *sqlx.DB
	tx *sqlx.Tx
}

func CreateBookingRepository(db *sqlx.DB) BookingRepository {
	return &BookingRepositoryImpl{
		db: db,
	}
}

func (r *BookingRepositoryImpl) AddBookingTransaction(ctx context.Context, data domain.BookingTransaction) (id int64, err error) {
	nstmt, err := r.tx.PrepareNamedContext(ctx, "INSERT INTO booking_transactions(booking_trx_id, name, phone, email, address, city, post_code, proof, quantity, sub_total_amount, total_tax_amount, total_amount, is_paid, created_at, updated_at) VALUES (:booking_trx_id, :name, :phone, :email, :address, :city, :post_code, :proof, :quantity, :sub_total_amount, :total_tax_amount, :total_amount, :is_paid, :created_at, :updated_at) returning id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddBookingTransaction").Msg("")
		return
	}

	err = nstmt.GetContext(ctx, &data.ID, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddBookingTransaction").Msg("")
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return 0, errs.ErrDuplicateBookingID
		}
		return
	}

	return data.ID, nil
}

func (r *BookingRepositoryImpl) AddTransactionDetails(ctx context.Context, data []domain.TransactionDetail) (err error) {
	_, err = r.tx.NamedExecContext(ctx, "INSERT INTO transaction_details(booking_transaction_id, cosmetic_id, quantity, price, created_at, updated_at) VALUES (:booking_transaction_id, :cosmetic_id, :quantity, :price, :created_at, :updated_at)", data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddTransactionDetails").Msg("")
		return
	}

	return nil
}

func (r *BookingRepositoryImpl) GetBookingTransactionByID(ctx context.Context, id int64) (data domain.BookingTransaction, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM booking_transactions WHERE id = $1 AND deleted_at IS NULL", id)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetBookingTransactionByID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *BookingRepositoryImpl) GetBookingTransactionByTrxID(ctx context.Context, trxID string) (data domain.BookingTransaction, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM booking_transactions WHERE booking_trx_id = $1", trxID)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetBookingTransactionByTrxID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *BookingRepositoryImpl) GetBookingTransactionByEmailAndTrxID(ctx context.Context, email string, trxID string) (data domain.BookingTransaction, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM booking_transactions WHERE email = $1 AND booking_trx_id = $2 AND deleted_at IS NULL", email, trxID)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetBookingTransactionByEmailAndTrxID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *BookingRepositoryImpl) GetTransactionDetailsByBookingID(ctx context.Context, bookingID int64) (data []domain.TransactionDetail, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT id, booking_transaction_id, cosmetic_id, quantity, price, created_at, updated_at, deleted_at FROM transaction_details WHERE booking_transaction_id = $1 AND deleted_at IS NULL ORDER BY id", bookingID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetTransactionDetailsByBookingID").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}

// bookingTransactionFilter builds the WHERE clause shared by the listing and
// its count so pagination metadata reflects the same predicates.
func bookingTransactionFilter(filter pkgdto.Filter) (clause string, args map[string]interface{}) {
	clause = " WHERE deleted_at IS NULL"
	args = make(map[string]interface{})

	if filter.IsPaid != nil {
		clause += " AND is_paid = :is_paid"
		args["is_paid"] = *filter.IsPaid
	}

	return clause, args
}

func (r *BookingRepositoryImpl) GetBookingTransactions(ctx context.Context, filter pkgdto.Filter) (data []domain.BookingTransaction, err error) {
	clause, args := bookingTransactionFilter(filter)
	query := "SELECT * FROM booking_transactions" + clause

	query += " ORDER BY created_at DESC"

	if filter.Limit != 0 && filter.Page != 0 {
		offset := (filter.Page - 1) * filter.Limit
		query += " LIMIT :limit OFFSET :offset"
		args["limit"] = filter.Limit
		args["offset"] = offset
	}

	nstmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("component", "GetBookingTransactions").Msg("")
		return nil, err
	}

	err = nstmt.SelectContext(ctx, &data, args)
	if err != nil {
		log.Error().Err(err).Str("component", "GetBookingTransactions").Msg("")
		return nil, err
	}

	return
}

func (r *BookingRepositoryImpl) CountBookingTransactions(ctx context.Context, filter pkgdto.Filter) (count int64, err error) {
	clause, args := bookingTransactionFilter(filter)

	nstmt, err := r.db.PrepareNamedContext(ctx, "SELECT COUNT(*) FROM booking_transactions"+clause)
	if err != nil {
		log.Error().Err(err).Str("component", "CountBookingTransactions").Msg("")
		return 0, errs.ErrInternalServer
	}

	err = nstmt.GetContext(ctx, &count, args)
	if err != nil {
		log.Error().Err(err).Str("component", "CountBookingTransactions").Msg("")
		return 0, errs.ErrInternalServer
	}

	return
}

func (r *BookingRepositoryImpl) SumPaidRevenue(ctx context.Context) (total int64, err error) {
	err = r.db.GetContext(ctx, &total, "SELECT COALESCE(SUM(total_amount), 0) FROM booking_transactions WHERE is_paid = true AND deleted_at IS NULL")
	if err != nil {
		log.Error().Err(err).Str("component", "SumPaidRevenue").Msg("")
		return 0, errs.ErrInternalServer
	}

	return
}

func (r *BookingRepositoryImpl) UpdateBookingPaymentStatus(ctx context.Context, data domain.BookingTransaction) (err error) {
	_, err = r.db.NamedExecContext(ctx, "UPDATE booking_transactions SET is_paid = true, updated_at = :updated_at WHERE id = :id AND deleted_at IS NULL", data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateBookingPaymentStatus").Msg("")
		return
	}

	return nil
}

func (r *BookingRepositoryImpl) SoftDeleteBookingTransaction(ctx context.Context, id int64) (err error) {
	_, err = r.db.ExecContext(ctx, "UPDATE booking_transactions SET deleted_at = (extract(epoch from now()) * 1000)::bigint WHERE id = $1 AND deleted_at IS NULL", id)
	if err != nil {
		log.Error().Err(err).Str("component", "SoftDeleteBookingTransaction").Msg("")
		return
	}

	return nil
}

func (r *BookingRepositoryImpl) RestoreBookingTransaction(ctx context.Context, id int64) (err error) {
	_, err = r.db.ExecContext(ctx, "UPDATE booking_transactions SET deleted_at = NULL WHERE id = $1", id)
	if err != nil {
		log.Error().Err(err).Str("component", "RestoreBookingTransaction").Msg("")
		return
	}

	return nil
}

func (r *BookingRepositoryImpl) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo BookingRepository) error) (err error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	trxRepo := &BookingRepositoryImpl{
		db: r.db,
		tx: tx,
	}

	err = fn(ctx, trxRepo)

	if err != nil {
		return err
	}

	return nil
}
