package service

import (
	"context"
	"mime/multipart"

	"github.com/adcahya/cosmetic-shop/booking-service/internal/dto"
	pkgdto "github.com/adcahya/cosmetic-shop/booking-service/pkg/dto"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req dto.BookingRequest, proof *multipart.FileHeader) (resp dto.BookingResponse, err error)
	FindBooking(ctx context.Context, req dto.BookingLookupRequest) (resp dto.BookingResponse, err error)
	ApproveBooking(ctx context.Context, id int64) (resp dto.BookingResponse, err error)
	DeleteBooking(ctx context.Context, id int64) (err error)
	RestoreBooking(ctx context.Context, id int64) (err error)
	GetBookings(ctx context.Context, filter pkgdto.Filter) (resp pkgdto.PaginationResponse, err error)
}

type CatalogService interface {
	GetCosmetics(ctx context.Context, filter pkgdto.Filter) (resp pkgdto.PaginationResponse, err error)
	GetCosmeticBySlug(ctx context.Context, slug string) (resp dto.CosmeticResponse, err error)
	GetBrands(ctx context.Context) (resp []dto.BrandResponse, err error)
	GetCategories(ctx context.Context) (resp []dto.CategoryResponse, err error)
	GetDashboardStats(ctx context.Context) (resp dto.StatsResponse, err error)
}
