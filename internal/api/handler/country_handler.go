package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/songcontest/contest-api/internal/core/ports"
)

type CountryHandler struct {
	service ports.CountryService
}

func NewCountryHandler(service ports.CountryService) *CountryHandler {
	return &CountryHandler{service: service}
}

// Create
//
// @Summary      Create a country
// @Tags         countries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      countryRequest  true  "Country"
// @Success      200   {object}  domain.Country
// @Failure      400   {object}  errorListResponse
// @Failure      403   {object}  messageResponse
// @Router       /api/countries [post]
func (h *CountryHandler) Create(c echo.Context) error {
	var req countryRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	country, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, country)
}

// List
//
// @Summary      List countries
// @Tags         countries
// @Produce      json
// @Success      200  {array}  domain.Country
// @Router       /api/countries [get]
func (h *CountryHandler) List(c echo.Context) error {
	countries, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countries)
}

// Get
//
// @Summary      Get a country
// @Tags         countries
// @Produce      json
// @Param        id   path      string  true  "Country id"
// @Success      200  {object}  domain.Country
// @Failure      400  {object}  messageResponse
// @Router       /api/countries/{id} [get]
func (h *CountryHandler) Get(c echo.Context) error {
	country, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, country)
}

// Update
//
// @Summary      Update a country
// @Tags         countries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Country id"
// @Param        body  body      countryRequest  true  "Fields to change"
// @Success      200   {object}  domain.Country
// @Failure      400   {object}  errorListResponse
// @Failure      403   {object}  messageResponse
// @Router       /api/countries/{id} [put]
func (h *CountryHandler) Update(c echo.Context) error {
	var req countryRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	country, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, country)
}

// Delete
//
// @Summary      Delete a country
// @Tags         countries
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Country id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /api/countries/{id} [delete]
func (h *CountryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Msg: "Country removed"})
}
