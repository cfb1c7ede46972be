package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/songcontest/contest-api/internal/core/domain"
	"github.com/songcontest/contest-api/internal/core/ports"
)

type VoteHandler struct {
	service ports.VoteService
}

func NewVoteHandler(service ports.VoteService) *VoteHandler {
	return &VoteHandler{service: service}
}

// CastFromPath handles POST /api/participants/vote/:id/:vote.
//
// @Summary      Vote for a participant (score in path)
// @Tags         votes
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Participant id"
// @Param        vote  path      int     true  "Score, 1 to 12"
// @Success      200   {object}  domain.Participant
// @Failure      400   {object}  errorListResponse
// @Failure      401   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/participants/vote/{id}/{vote} [post]
func (h *VoteHandler) CastFromPath(c echo.Context) error {
	score, err := strconv.Atoi(c.Param("vote"))
	if err != nil {
		return domain.NewValidationError(fmt.Sprintf("vote must be an integer between %d and %d", domain.MinScore, domain.MaxScore))
	}
	return h.cast(c, score)
}

// CastFromBody handles POST /api/participants/vote/:id with {"vote": n}.
//
// @Summary      Vote for a participant
// @Tags         votes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Participant id"
// @Param        body  body      voteRequest  true  "Score, 1 to 12"
// @Success      200   {object}  domain.Participant
// @Failure      400   {object}  errorListResponse
// @Failure      401   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/participants/vote/{id} [post]
func (h *VoteHandler) CastFromBody(c echo.Context) error {
	var req voteRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	return h.cast(c, *req.Vote)
}

func (h *VoteHandler) cast(c echo.Context, score int) error {
	voterID, err := callerID(c)
	if err != nil {
		return err
	}

	participant, err := h.service.CastVote(c.Request().Context(), ports.CastVoteInput{
		VoterID:       voterID,
		ParticipantID: c.Param("id"),
		Score:         score,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, participant)
}

// Tally handles GET /api/participants/:id/votes.
//
// @Summary      Votes received by a participant
// @Tags         votes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Participant id"
// @Success      200  {object}  tallyResponse
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Router       /api/participants/{id}/votes [get]
func (h *VoteHandler) Tally(c echo.Context) error {
	tally, err := h.service.Tally(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tallyResponse{Total: tally.Total, Votes: tally.Votes})
}
