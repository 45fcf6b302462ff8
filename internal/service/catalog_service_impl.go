package service

import (
	"context"

	"github.com/adcahya/cosmetic-shop/booking-service/internal/dto"
	"github.com/adcahya/cosmetic-shop/booking-service/internal/repository"
	pkgdto "github.com/adcahya/cosmetic-shop/booking-service/pkg/dto"
	"github.com/adcahya/cosmetic-shop/booking-service/pkg/errs"
)

type CatalogServiceImpl struct {
	cosmeticRepo repository.CosmeticRepository
	bookingRepo  repository.BookingRepository
}

func CreateCatalogService(cosmeticRepo repository.CosmeticRepository, bookingRepo repository.BookingRepository) CatalogService {
	return &CatalogServiceImpl{
		cosmeticRepo: cosmeticRepo,
		bookingRepo:  bookingRepo,
	}
}

func (s *CatalogServiceImpl) GetCosmetics(ctx context.Context, filter pkgdto.Filter) (resp pkgdto.PaginationResponse, err error) {
	cosmetics, err := s.cosmeticRepo.GetCosmetics(ctx, filter)
	if err != nil {
		return
	}

	count, err := s.cosmeticRepo.CountCosmetics(ctx, filter)
	if err != nil {
		return
	}

	records := make([]dto.CosmeticResponse, 0, len(cosmetics))
	for _, cosmetic := range cosmetics {
		records = append(records, dto.CosmeticResponse{
			ID:        cosmetic.ID,
			Name:      cosmetic.Name,
			Slug:      cosmetic.Slug,
			Thumbnail: cosmetic.Thumbnail,
			Price:     cosmetic.Price,
			IsPopular: cosmetic.IsPopular,
		})
	}

	resp.Metadata = pkgdto.PaginationMetadata{
		TotalCount: uint64(count),
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	resp.Records = records

	return
}

func (s *CatalogServiceImpl) GetCosmeticBySlug(ctx context.Context, slug string) (resp dto.CosmeticResponse, err error) {
	cosmetic, err := s.cosmeticRepo.GetCosmeticBySlug(ctx, slug)
	if err != nil {
		return
	}

	if cosmetic.ID == 0 {
		return resp, errs.ErrCosmeticNotFound
	}

	brand, err := s.cosmeticRepo.GetBrandByID(ctx, cosmetic.BrandID)
	if err != nil {
		return
	}

	category, err := s.cosmeticRepo.GetCategoryByID(ctx, cosmetic.CategoryID)
	if err != nil {
		return
	}

	benefits, err := s.cosmeticRepo.GetBenefitsByCosmeticID(ctx, cosmetic.ID)
	if err != nil {
		return
	}

	photos, err := s.cosmeticRepo.GetPhotosByCosmeticID(ctx, cosmetic.ID)
	if err != nil {
		return
	}

	resp = dto.CosmeticResponse{
		ID:        cosmetic.ID,
		Name:      cosmetic.Name,
		Slug:      cosmetic.Slug,
		Thumbnail: cosmetic.Thumbnail,
		About:     cosmetic.About,
		Price:     cosmetic.Price,
		IsPopular: cosmetic.IsPopular,
	}

	if brand.ID != 0 {
		resp.Brand = &dto.BrandResponse{
			ID:    brand.ID,
			Name:  brand.Name,
			Slug:  brand.Slug,
			Photo: brand.Photo,
		}
	}

	if category.ID != 0 {
		resp.Category = &dto.CategoryResponse{
			ID:    category.ID,
			Name:  category.Name,
			Slug:  category.Slug,
			Photo: category.Photo,
		}
	}

	for _, benefit := range benefits {
		resp.Benefits = append(resp.Benefits, dto.BenefitResponse{
			ID:   benefit.ID,
			Name: benefit.Name,
		})
	}

	for _, photo := range photos {
		resp.Photos = append(resp.Photos, dto.PhotoResponse{
			ID:    photo.ID,
			Photo: photo.Photo,
		})
	}

	return
}

func (s *CatalogServiceImpl) GetBrands(ctx context.Context) (resp []dto.BrandResponse, err error) {
	brands, err := s.cosmeticRepo.GetBrands(ctx)
	if err != nil {
		return
	}

	for _, brand := range brands {
		resp = append(resp, dto.BrandResponse{
			ID:            brand.ID,
			Name:          brand.Name,
			Slug:          brand.Slug,
			Photo:         brand.Photo,
			CosmeticCount: brand.CosmeticCount,
		})
	}

	return
}

func (s *CatalogServiceImpl) GetCategories(ctx context.Context) (resp []dto.CategoryResponse, err error) {
	categories, err := s.cosmeticRepo.GetCategories(ctx)
	if err != nil {
		return
	}

	for _, category := range categories {
		resp = append(resp, dto.CategoryResponse{
			ID:             category.ID,
			Name:           category.Name,
			Slug:           category.Slug,
			Photo:          category.Photo,
			CosmeticsCount: category.CosmeticsCount,
		})
	}

	return
}

func (s *CatalogServiceImpl) GetDashboardStats(ctx context.Context) (resp dto.StatsResponse, err error) {
	resp.TotalBrands, err = s.cosmeticRepo.CountBrands(ctx)
	if err != nil {
		return
	}

	resp.TotalCosmetics, err = s.cosmeticRepo.CountCosmetics(ctx, pkgdto.Filter{})
	if err != nil {
		return
	}

	resp.TotalTransactions, err = s.bookingRepo.CountBookingTransactions(ctx, pkgdto.Filter{})
	if err != nil {
		return
	}

	resp.PaidRevenue, err = s.bookingRepo.SumPaidRevenue(ctx)

	return
}
