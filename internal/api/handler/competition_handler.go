package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/songcontest/contest-api/internal/core/ports"
)

type CompetitionHandler struct {
	service ports.CompetitionService
}

func NewCompetitionHandler(service ports.CompetitionService) *CompetitionHandler {
	return &CompetitionHandler{service: service}
}

// Create
//
// @Summary      Create a competition
// @Tags         competitions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      competitionRequest  true  "Competition"
// @Success      200   {object}  domain.Competition
// @Failure      400   {object}  errorListResponse
// @Failure      403   {object}  messageResponse
// @Router       /api/competitions [post]
func (h *CompetitionHandler) Create(c echo.Context) error {
	var req competitionRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	competition, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, competition)
}

// List
//
// @Summary      List competitions, most recent first
// @Tags         competitions
// @Produce      json
// @Success      200  {array}  domain.Competition
// @Router       /api/competitions [get]
func (h *CompetitionHandler) List(c echo.Context) error {
	competitions, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, competitions)
}

// Get
//
// @Summary      Get a competition
// @Tags         competitions
// @Produce      json
// @Param        id   path      string  true  "Competition id"
// @Success      200  {object}  domain.Competition
// @Failure      400  {object}  messageResponse
// @Router       /api/competitions/{id} [get]
func (h *CompetitionHandler) Get(c echo.Context) error {
	competition, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, competition)
}

// Update
//
// @Summary      Update a competition
// @Tags         competitions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Competition id"
// @Param        body  body      competitionRequest  true  "Fields to change"
// @Success      200   {object}  domain.Competition
// @Failure      400   {object}  errorListResponse
// @Failure      403   {object}  messageResponse
// @Router       /api/competitions/{id} [put]
func (h *CompetitionHandler) Update(c echo.Context) error {
	var req competitionRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	competition, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, competition)
}

// Delete
//
// @Summary      Delete a competition
// @Tags         competitions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Competition id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /api/competitions/{id} [delete]
func (h *CompetitionHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Msg: "Competition removed"})
}
