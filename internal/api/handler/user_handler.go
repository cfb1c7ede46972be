package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/songcontest/contest-api/internal/core/ports"
)

// UserHandler serves the caller's own account routes.
type UserHandler struct {
	votes    ports.VoteService
	accounts ports.AccountService
}

func NewUserHandler(votes ports.VoteService, accounts ports.AccountService) *UserHandler {
	return &UserHandler{votes: votes, accounts: accounts}
}

// Votes lists the caller's votes, highest score first.
//
// @Summary      My votes
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userVoteResponse
// @Failure      401  {object}  messageResponse
// @Router       /api/users/votes [get]
func (h *UserHandler) Votes(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	items, err := h.votes.VotesForUser(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserVoteResponses(items))
}

// Delete removes the caller's votes from every participant, then the account.
//
// @Summary      Delete my account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /api/users [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	if err := h.accounts.DeleteAccount(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Msg: "User deleted"})
}
