package controller

import (
	"github.com/adcahya/cosmetic-shop/booking-service/internal/service"
	pkgdto "github.com/adcahya/cosmetic-shop/booking-service/pkg/dto"
	"github.com/adcahya/cosmetic-shop/booking-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type CatalogController struct {
	service service.CatalogService
}

func CreateCatalogController(e *echo.Group, service service.CatalogService) {
	c := CatalogController{
		service: service,
	}

	e.GET("/cosmetics", c.GetCosmetics)
	e.GET("/cosmetics/:slug", c.GetCosmeticBySlug)
	e.GET("/brands", c.GetBrands)
	e.GET("/categories", c.GetCategories)
}

func (c *CatalogController) GetCosmetics(e echo.Context) error {
	filter := pkgdto.Filter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetCosmetics").Msg("")
	}

	resp, err := c.service.GetCosmetics(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved cosmetics", resp)
}

func (c *CatalogController) GetCosmeticBySlug(e echo.Context) error {
	resp, err := c.service.GetCosmeticBySlug(e.Request().Context(), e.Param("slug"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) GetBrands(e echo.Context) error {
	resp, err := c.service.GetBrands(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved brands", resp)
}

func (c *CatalogController) GetCategories(e echo.Context) error {
	resp, err := c.service.GetCategories(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved categories", resp)
}
