package controller

import (
	"strconv"

	"github.com/adcahya/cosmetic-shop/booking-service/internal/service"
	pkgdto "github.com/adcahya/cosmetic-shop/booking-service/pkg/dto"
	"github.com/adcahya/cosmetic-shop/booking-service/pkg/errs"
	"github.com/adcahya/cosmetic-shop/booking-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type AdminController struct {
	bookingService service.BookingService
	catalogService service.CatalogService
}

func CreateAdminController(e *echo.Group, bookingService service.BookingService, catalogService service.CatalogService) {
	c := AdminController{
		bookingService: bookingService,
		catalogService: catalogService,
	}

	e.GET("/admin/booking-transactions", c.GetBookings)
	e.PATCH("/admin/booking-transactions/:id/approve", c.ApproveBooking)
	e.DELETE("/admin/booking-transactions/:id", c.DeleteBooking)
	e.POST("/admin/booking-transactions/:id/restore", c.RestoreBooking)
	e.GET("/admin/stats", c.GetDashboardStats)
}

func (c *AdminController) GetBookings(e echo.Context) error {
	filter := pkgdto.Filter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetBookings").Msg("")
	}

	resp, err := c.bookingService.GetBookings(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved booking transactions", resp)
}

func (c *AdminController) ApproveBooking(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.bookingService.ApproveBooking(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "booking approved", resp)
}

func (c *AdminController) DeleteBooking(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := c.bookingService.DeleteBooking(e.Request().Context(), id); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "booking deleted", nil)
}

func (c *AdminController) RestoreBooking(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := c.bookingService.RestoreBooking(e.Request().Context(), id); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "booking restored", nil)
}

func (c *AdminController) GetDashboardStats(e echo.Context) error {
	resp, err := c.catalogService.GetDashboardStats(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
