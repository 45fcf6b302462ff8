package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adcahya/cosmetic-shop/booking-service/internal/dto"
	pkgdto "github.com/adcahya/cosmetic-shop/booking-service/pkg/dto"
	"github.com/adcahya/cosmetic-shop/booking-service/pkg/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookingService struct {
	lastRequest dto.BookingRequest
	lastProof   *multipart.FileHeader
	createErr   error
	findErr     error
}

func (s *stubBookingService) CreateBooking(ctx context.Context, req dto.BookingRequest, proof *multipart.FileHeader) (dto.BookingResponse, error) {
	s.lastRequest = req
	s.lastProof = proof
	if s.createErr != nil {
		return dto.BookingResponse{}, s.createErr
	}

	return dto.BookingResponse{BookingTrxID: "CSM-12345678", Quantity: 2}, nil
}

func (s *stubBookingService) FindBooking(ctx context.Context, req dto.BookingLookupRequest) (dto.BookingResponse, error) {
	if s.findErr != nil {
		return dto.BookingResponse{}, s.findErr
	}

	return dto.BookingResponse{BookingTrxID: req.BookingTrxID, Email: req.Email}, nil
}

func (s *stubBookingService) ApproveBooking(ctx context.Context, id int64) (dto.BookingResponse, error) {
	return dto.BookingResponse{ID: id, IsPaid: true}, nil
}

func (s *stubBookingService) DeleteBooking(ctx context.Context, id int64) error {
	return nil
}

func (s *stubBookingService) RestoreBooking(ctx context.Context, id int64) error {
	return nil
}

func (s *stubBookingService) GetBookings(ctx context.Context, filter pkgdto.Filter) (pkgdto.PaginationResponse, error) {
	return pkgdto.PaginationResponse{}, nil
}

func setupBookingController(svc *stubBookingService) *echo.Echo {
	e := echo.New()
	g := e.Group("/api/v1")
	CreateBookingController(g, svc)

	return e
}

func TestCreateBookingMultipart(t *testing.T) {
	svc := &stubBookingService{}
	e := setupBookingController(svc)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("name", "Putri"))
	require.NoError(t, writer.WriteField("phone", "081234567890"))
	require.NoError(t, writer.WriteField("email", "putri@example.com"))
	require.NoError(t, writer.WriteField("address", "Jl. Kenanga No. 1"))
	require.NoError(t, writer.WriteField("city", "Bandung"))
	require.NoError(t, writer.WriteField("post_code", "40111"))
	require.NoError(t, writer.WriteField("cosmetic_ids", `[{"id":1,"quantity":2}]`))

	proofPart, err := writer.CreateFormFile("proof", "proof.png")
	require.NoError(t, err)
	_, err = proofPart.Write([]byte("not-really-a-png"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/booking-transactions", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Putri", svc.lastRequest.Name)
	require.Len(t, svc.lastRequest.CosmeticIDs, 1)
	assert.Equal(t, int64(1), svc.lastRequest.CosmeticIDs[0].ID)
	assert.Equal(t, int64(2), svc.lastRequest.CosmeticIDs[0].Quantity)
	require.NotNil(t, svc.lastProof)
	assert.Equal(t, "proof.png", svc.lastProof.Filename)
}

func TestCreateBookingJSON(t *testing.T) {
	svc := &stubBookingService{}
	e := setupBookingController(svc)

	payload := `{"name":"Putri","phone":"081234567890","email":"putri@example.com","address":"Jl. Kenanga No. 1","city":"Bandung","post_code":"40111","cosmetic_ids":[{"id":2,"quantity":3}]}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/booking-transactions", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, svc.lastRequest.CosmeticIDs, 1)
	assert.Equal(t, int64(2), svc.lastRequest.CosmeticIDs[0].ID)
	assert.Nil(t, svc.lastProof)
}

func TestCreateBookingValidationResponse(t *testing.T) {
	svc := &stubBookingService{
		createErr: &errs.FieldErrors{Fields: []errs.FieldError{{Field: "email", Tag: "required"}}},
	}
	e := setupBookingController(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/booking-transactions", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp["status"])
	require.Len(t, resp["errors"], 1)
}

func TestFindBookingNotFoundResponse(t *testing.T) {
	svc := &stubBookingService{findErr: errs.ErrBookingNotFound}
	e := setupBookingController(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/booking-transactions/details?email=x@example.com&booking_trx_id=CSM-00000000", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Booking not found", resp["message"])
}

func TestFindBookingPassesQueryParams(t *testing.T) {
	svc := &stubBookingService{}
	e := setupBookingController(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/booking-transactions/details?email=putri@example.com&booking_trx_id=CSM-12345678", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data dto.BookingResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "CSM-12345678", resp.Data.BookingTrxID)
	assert.Equal(t, "putri@example.com", resp.Data.Email)
}
