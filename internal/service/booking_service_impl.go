package service

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/adcahya/cosmetic-shop/booking-service/internal/domain"
	"github.com/adcahya/cosmetic-shop/booking-service/internal/dto"
	"github.com/adcahya/cosmetic-shop/booking-service/internal/infrastructure/mailer"
	"github.com/adcahya/cosmetic-shop/booking-service/internal/infrastructure/storage"
	"github.com/adcahya/cosmetic-shop/booking-service/internal/pricing"
	"github.com/adcahya/cosmetic-shop/booking-service/internal/repository"
	pkgdto "github.com/adcahya/cosmetic-shop/booking-service/pkg/dto"
	"github.com/adcahya/cosmetic-shop/booking-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

const maxBookingCodeAttempts = 5
const maxFieldLength = 255

type BookingServiceImpl struct {
	repository   repository.BookingRepository
	cosmeticRepo repository.CosmeticRepository
	fileStore    storage.FileStore
	mailer       mailer.Mailer
}

func CreateBookingService(repository repository.BookingRepository, cosmeticRepo repository.CosmeticRepository, fileStore storage.FileStore, mailer mailer.Mailer) BookingService {
	return &BookingServiceImpl{
		repository:   repository,
		cosmeticRepo: cosmeticRepo,
		fileStore:    fileStore,
		mailer:       mailer,
	}
}

func validateBookingRequest(req dto.BookingRequest) error {
	required := []struct {
		field string
		value string
	}{
		{"name", req.Name},
		{"phone", req.Phone},
		{"email", req.Email},
		{"address", req.Address},
		{"city", req.City},
		{"post_code", req.PostCode},
	}

	var fields []errs.FieldError
	for _, f := range required {
		if f.value == "" {
			fields = append(fields, errs.FieldError{Field: f.field, Tag: "required"})
			continue
		}
		if len(f.value) > maxFieldLength {
			fields = append(fields, errs.FieldError{Field: f.field, Tag: "max"})
		}
	}

	if len(fields) > 0 {
		return &errs.FieldErrors{Fields: fields}
	}

	return nil
}

func (s *BookingServiceImpl) CreateBooking(ctx context.Context, req dto.BookingRequest, proof *multipart.FileHeader) (resp dto.BookingResponse, err error) {
	if err = validateBookingRequest(req); err != nil {
		return
	}

	items := make([]pricing.LineItem, 0, len(req.CosmeticIDs))
	for _, item := range req.CosmeticIDs {
		items = append(items, pricing.LineItem{
			CosmeticID: item.ID,
			Quantity:   item.Quantity,
		})
	}

	items = pricing.FilterLineItems(items)
	if len(items) == 0 {
		return resp, errs.ErrEmptyLineItems
	}

	var proofPath *string
	if proof != nil {
		path, storeErr := s.fileStore.StoreFile(ctx, proof, "proofs")
		if storeErr != nil {
			return resp, storeErr
		}
		proofPath = &path
	}

	cosmeticIDs := make([]int64, 0, len(items))
	seen := make(map[int64]bool)
	for _, item := range items {
		if !seen[item.CosmeticID] {
			seen[item.CosmeticID] = true
			cosmeticIDs = append(cosmeticIDs, item.CosmeticID)
		}
	}

	cosmetics, err := s.cosmeticRepo.GetCosmeticsByIDs(ctx, cosmeticIDs)
	if err != nil {
		return
	}

	prices := make(pricing.PriceLookup, len(cosmetics))
	for _, cosmetic := range cosmetics {
		prices[cosmetic.ID] = cosmetic.Price
	}

	breakdown, err := pricing.Compute(items, prices)
	if err != nil {
		return
	}

	var booking domain.BookingTransaction
	created := false

	for attempt := 0; attempt < maxBookingCodeAttempts; attempt++ {
		var trxID string
		trxID, err = GenerateBookingCode()
		if err != nil {
			return resp, errs.ErrInternalServer
		}

		existing, lookupErr := s.repository.GetBookingTransactionByTrxID(ctx, trxID)
		if lookupErr != nil {
			return resp, lookupErr
		}
		if existing.ID != 0 {
			continue
		}

		err = s.repository.HandleTrx(ctx, func(ctx context.Context, repo repository.BookingRepository) error {
			timestamp := time.Now().UnixMilli()

			booking = domain.BookingTransaction{
				BookingTrxID:   trxID,
				Name:           req.Name,
				Phone:          req.Phone,
				Email:          req.Email,
				Address:        req.Address,
				City:           req.City,
				PostCode:       req.PostCode,
				Proof:          proofPath,
				Quantity:       breakdown.TotalQuantity,
				SubTotalAmount: breakdown.Subtotal,
				TotalTaxAmount: breakdown.Tax,
				TotalAmount:    breakdown.Total,
				IsPaid:         false,
				CreatedAt:      timestamp,
				UpdatedAt:      timestamp,
			}

			bookingID, trxErr := repo.AddBookingTransaction(ctx, booking)
			if trxErr != nil {
				return trxErr
			}
			booking.ID = bookingID

			details := make([]domain.TransactionDetail, 0, len(items))
			for _, item := range items {
				details = append(details, domain.TransactionDetail{
					BookingTransactionID: bookingID,
					CosmeticID:           item.CosmeticID,
					Quantity:             item.Quantity,
					Price:                prices[item.CosmeticID],
					CreatedAt:            timestamp,
					UpdatedAt:            timestamp,
				})
			}
			booking.TransactionDetails = details

			return repo.AddTransactionDetails(ctx, details)
		})

		// two submissions can race to the same generated code; the unique
		// constraint rejects the loser, which simply draws a new code
		if err == errs.ErrDuplicateBookingID {
			continue
		}
		if err != nil {
			return
		}

		created = true
		break
	}

	if !created {
		return resp, errs.ErrConflict
	}

	resp, err = s.assembleBookingResponse(ctx, booking)
	if err != nil {
		return
	}

	if s.mailer != nil && s.mailer.Enabled() {
		if mailErr := s.mailer.SendBookingConfirmation(booking); mailErr != nil {
			log.Error().Err(mailErr).Str("component", "CreateBooking").Msg("failed to send booking confirmation")
		}
	}

	return
}

func (s *BookingServiceImpl) FindBooking(ctx context.Context, req dto.BookingLookupRequest) (resp dto.BookingResponse, err error) {
	var fields []errs.FieldError
	if req.Email == "" {
		fields = append(fields, errs.FieldError{Field: "email", Tag: "required"})
	}
	if req.BookingTrxID == "" {
		fields = append(fields, errs.FieldError{Field: "booking_trx_id", Tag: "required"})
	}
	if len(fields) > 0 {
		return resp, &errs.FieldErrors{Fields: fields}
	}

	booking, err := s.repository.GetBookingTransactionByEmailAndTrxID(ctx, req.Email, req.BookingTrxID)
	if err != nil {
		return
	}

	if booking.ID == 0 {
		return resp, errs.ErrBookingNotFound
	}

	booking.TransactionDetails, err = s.repository.GetTransactionDetailsByBookingID(ctx, booking.ID)
	if err != nil {
		return
	}

	return s.assembleBookingResponse(ctx, booking)
}

func (s *BookingServiceImpl) ApproveBooking(ctx context.Context, id int64) (resp dto.BookingResponse, err error) {
	booking, err := s.repository.GetBookingTransactionByID(ctx, id)
	if err != nil {
		return
	}

	if booking.ID == 0 {
		return resp, errs.ErrBookingNotFound
	}

	// re-approving an already-paid booking is a no-op
	if !booking.IsPaid {
		booking.IsPaid = true
		booking.UpdatedAt = time.Now().UnixMilli()
		if err = s.repository.UpdateBookingPaymentStatus(ctx, booking); err != nil {
			return
		}
	}

	booking.TransactionDetails, err = s.repository.GetTransactionDetailsByBookingID(ctx, booking.ID)
	if err != nil {
		return
	}

	return s.assembleBookingResponse(ctx, booking)
}

func (s *BookingServiceImpl) DeleteBooking(ctx context.Context, id int64) (err error) {
	booking, err := s.repository.GetBookingTransactionByID(ctx, id)
	if err != nil {
		return
	}

	if booking.ID == 0 {
		return errs.ErrBookingNotFound
	}

	return s.repository.SoftDeleteBookingTransaction(ctx, id)
}

func (s *BookingServiceImpl) RestoreBooking(ctx context.Context, id int64) (err error) {
	return s.repository.RestoreBookingTransaction(ctx, id)
}

func (s *BookingServiceImpl) GetBookings(ctx context.Context, filter pkgdto.Filter) (resp pkgdto.PaginationResponse, err error) {
	bookings, err := s.repository.GetBookingTransactions(ctx, filter)
	if err != nil {
		return
	}

	count, err := s.repository.CountBookingTransactions(ctx, filter)
	if err != nil {
		return
	}

	records := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		records = append(records, dto.BookingResponse{
			ID:             booking.ID,
			BookingTrxID:   booking.BookingTrxID,
			Name:           booking.Name,
			Phone:          booking.Phone,
			Email:          booking.Email,
			Address:        booking.Address,
			City:           booking.City,
			PostCode:       booking.PostCode,
			Proof:          booking.Proof,
			Quantity:       booking.Quantity,
			SubTotalAmount: booking.SubTotalAmount,
			TotalTaxAmount: booking.TotalTaxAmount,
			TotalAmount:    booking.TotalAmount,
			IsPaid:         booking.IsPaid,
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

// assembleBookingResponse attaches each detail's cosmetic and the cosmetic's
// brand through batched lookups before building the response payload.
func (s *BookingServiceImpl) assembleBookingResponse(ctx context.Context, booking domain.BookingTransaction) (resp dto.BookingResponse, err error) {
	cosmeticIDs := make([]int64, 0, len(booking.TransactionDetails))
	for _, detail := range booking.TransactionDetails {
		cosmeticIDs = append(cosmeticIDs, detail.CosmeticID)
	}

	cosmetics, err := s.cosmeticRepo.GetCosmeticsByIDs(ctx, cosmeticIDs)
	if err != nil {
		return
	}

	cosmeticsByID := make(map[int64]domain.Cosmetic, len(cosmetics))
	brandIDs := make([]int64, 0, len(cosmetics))
	for _, cosmetic := range cosmetics {
		cosmeticsByID[cosmetic.ID] = cosmetic
		brandIDs = append(brandIDs, cosmetic.BrandID)
	}

	brands, err := s.cosmeticRepo.GetBrandsByIDs(ctx, brandIDs)
	if err != nil {
		return
	}

	brandsByID := make(map[int64]domain.Brand, len(brands))
	for _, brand := range brands {
		brandsByID[brand.ID] = brand
	}

	details := make([]dto.TransactionDetailResponse, 0, len(booking.TransactionDetails))
	for _, detail := range booking.TransactionDetails {
		cosmetic := cosmeticsByID[detail.CosmeticID]

		cosmeticResp := dto.CosmeticResponse{
			ID:        cosmetic.ID,
			Name:      cosmetic.Name,
			Slug:      cosmetic.Slug,
			Thumbnail: cosmetic.Thumbnail,
			Price:     cosmetic.Price,
			IsPopular: cosmetic.IsPopular,
		}

		if brand, ok := brandsByID[cosmetic.BrandID]; ok {
			cosmeticResp.Brand = &dto.BrandResponse{
				ID:    brand.ID,
				Name:  brand.Name,
				Slug:  brand.Slug,
				Photo: brand.Photo,
			}
		}

		details = append(details, dto.TransactionDetailResponse{
			ID:         detail.ID,
			CosmeticID: detail.CosmeticID,
			Quantity:   detail.Quantity,
			Price:      detail.Price,
			Cosmetic:   cosmeticResp,
		})
	}

	resp = dto.BookingResponse{
		ID:                 booking.ID,
		BookingTrxID:       booking.BookingTrxID,
		Name:               booking.Name,
		Phone:              booking.Phone,
		Email:              booking.Email,
		Address:            booking.Address,
		City:               booking.City,
		PostCode:           booking.PostCode,
		Proof:              booking.Proof,
		Quantity:           booking.Quantity,
		SubTotalAmount:     booking.SubTotalAmount,
		TotalTaxAmount:     booking.TotalTaxAmount,
		TotalAmount:        booking.TotalAmount,
		IsPaid:             booking.IsPaid,
		TransactionDetails: details,
	}

	return
}
