package controller

import (
	"encoding/json"
	"mime/multipart"

	"github.com/adcahya/cosmetic-shop/booking-service/internal/dto"
	"github.com/adcahya/cosmetic-shop/booking-service/internal/service"
	"github.com/adcahya/cosmetic-shop/booking-service/pkg/errs"
	"github.com/adcahya/cosmetic-shop/booking-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type BookingController struct {
	service service.BookingService
}

func CreateBookingController(e *echo.Group, service service.BookingService) {
	c := BookingController{
		service: service,
	}

	e.POST("/booking-transactions", c.CreateBooking)
	e.GET("/booking-transactions/details", c.FindBooking)
}

func (c *BookingController) CreateBooking(e echo.Context) error {
	payload := dto.BookingRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "CreateBooking").Msg("")
	}

	// multipart submissions carry the line items as a JSON-encoded field
	if len(payload.CosmeticIDs) == 0 {
		if raw := e.FormValue("cosmetic_ids"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &payload.CosmeticIDs); err != nil {
				return response.WriteErrorResponse(e, errs.ErrClient, nil)
			}
		}
	}

	var proof *multipart.FileHeader
	if file, err := e.FormFile("proof"); err == nil {
		proof = file
	}

	resp, err := c.service.CreateBooking(e.Request().Context(), payload, proof)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *BookingController) FindBooking(e echo.Context) error {
	payload := dto.BookingLookupRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "FindBooking").Msg("")
	}

	resp, err := c.service.FindBooking(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
