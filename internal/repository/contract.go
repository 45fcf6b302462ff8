package repository

import (
	"context"

	"github.com/adcahya/cosmetic-shop/booking-service/internal/domain"
	pkgdto "github.com/adcahya/cosmetic-shop/booking-service/pkg/dto"
)

type BookingRepository interface {
	HandleTrx(ctx context.Context, fn func(ctx context.Context, repo BookingRepository) error) error

	AddBookingTransaction(ctx context.Context, data domain.BookingTransaction) (id int64, err error)
	AddTransactionDetails(ctx context.Context, data []domain.TransactionDetail) (err error)
	GetBookingTransactionByID(ctx context.Context, id int64) (data domain.BookingTransaction, err error)
	GetBookingTransactionByTrxID(ctx context.Context, trxID string) (data domain.BookingTransaction, err error)
	GetBookingTransactionByEmailAndTrxID(ctx context.Context, email string, trxID string) (data domain.BookingTransaction, err error)
	GetTransactionDetailsByBookingID(ctx context.Context, bookingID int64) (data []domain.TransactionDetail, err error)
	GetBookingTransactions(ctx context.Context, filter pkgdto.Filter) (data []domain.BookingTransaction, err error)
	CountBookingTransactions(ctx context.Context, filter pkgdto.Filter) (count int64, err error)
	SumPaidRevenue(ctx context.Context) (total int64, err error)
	UpdateBookingPaymentStatus(ctx context.Context, data domain.BookingTransaction) (err error)
	SoftDeleteBookingTransaction(ctx context.Context, id int64) (err error)
	RestoreBookingTransaction(ctx context.Context, id int64) (err error)
}

type CosmeticRepository interface {
	GetCosmeticsByIDs(ctx context.Context, ids []int64) (data []domain.Cosmetic, err error)
	GetCosmeticBySlug(ctx context.Context, slug string) (data domain.Cosmetic, err error)
	GetCosmetics(ctx context.Context, filter pkgdto.Filter) (data []domain.Cosmetic, err error)
	CountCosmetics(ctx context.Context, filter pkgdto.Filter) (count int64, err error)
	GetBenefitsByCosmeticID(ctx context.Context, cosmeticID int64) (data []domain.Benefit, err error)
	GetPhotosByCosmeticID(ctx context.Context, cosmeticID int64) (data []domain.Photo, err error)
	GetBrandsByIDs(ctx context.Context, ids []int64) (data []domain.Brand, err error)
	GetBrandByID(ctx context.Context, id int64) (data domain.Brand, err error)
	GetCategoryByID(ctx context.Context, id int64) (data domain.Category, err error)
	GetBrands(ctx context.Context) (data []BrandWithCount, err error)
	GetCategories(ctx context.Context) (data []CategoryWithCount, err error)
	CountBrands(ctx context.Context) (count int64, err error)
}

type BrandWithCount struct {
	domain.Brand
	CosmeticCount int64 `db:"cosmetic_count"`
}

type CategoryWithCount struct {
	domain.Category
	CosmeticsCount int64 `db:"cosmetics_count"`
}
