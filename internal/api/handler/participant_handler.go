package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/songcontest/contest-api/internal/core/domain"
	"github.com/songcontest/contest-api/internal/core/ports"
)

type ParticipantHandler struct {
	service ports.ParticipantService
}

func NewParticipantHandler(service ports.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{service: service}
}

// Create
//
// @Summary      Create a participant
// @Tags         participants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      participantRequest  true  "Participant"
// @Success      200   {object}  domain.Participant
// @Failure      400   {object}  errorListResponse
// @Failure      403   {object}  messageResponse
// @Router       /api/participants [post]
func (h *ParticipantHandler) Create(c echo.Context) error {
	var req participantRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	participant, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, participant)
}

// List
//
// @Summary      List participants, sorted by country
// @Tags         participants
// @Produce      json
// @Success      200  {array}  domain.Participant
// @Router       /api/participants [get]
func (h *ParticipantHandler) List(c echo.Context) error {
	participants, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, participants)
}

// Get
//
// @Summary      Get a participant
// @Tags         participants
// @Produce      json
// @Param        id   path      string  true  "Participant id"
// @Success      200  {object}  domain.Participant
// @Failure      400  {object}  messageResponse
// @Router       /api/participants/{id} [get]
func (h *ParticipantHandler) Get(c echo.Context) error {
	participant, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, participant)
}

// Update
//
// @Summary      Update a participant
// @Tags         participants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Participant id"
// @Param        body  body      participantRequest  true  "Fields to change"
// @Success      200   {object}  domain.Participant
// @Failure      400   {object}  errorListResponse
// @Failure      403   {object}  messageResponse
// @Router       /api/participants/{id} [put]
func (h *ParticipantHandler) Update(c echo.Context) error {
	var req participantRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	participant, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, participant)
}

// Delete
//
// @Summary      Delete a participant and every vote cast for it
// @Tags         participants
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Participant id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /api/participants/{id} [delete]
func (h *ParticipantHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Msg: "Participant removed"})
}

// ListByYear
//
// @Summary      List the participants of one edition
// @Tags         participants
// @Produce      json
// @Param        year  path      int  true  "Contest year"
// @Success      200   {array}   domain.Participant
// @Failure      400   {object}  errorListResponse
// @Router       /api/participants/year/{year} [get]
func (h *ParticipantHandler) ListByYear(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return domain.NewValidationError("Year must be a number")
	}
	participants, err := h.service.ListByYear(c.Request().Context(), year)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, participants)
}
