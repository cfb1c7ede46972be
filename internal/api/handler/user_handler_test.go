package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/songcontest/contest-api/internal/api/middleware"
	"github.com/songcontest/contest-api/internal/core/domain"
	"github.com/songcontest/contest-api/internal/core/ports"
)

func TestUserHandler_Votes(t *testing.T) {
	e := newEcho()
	votes := &stubVoteService{
		votesFn: func(ctx context.Context, userID string) ([]ports.UserVoteItem, error) {
			assert.Equal(t, "U1", userID)
			return []ports.UserVoteItem{{ParticipantID: "P1", Score: 12, Country: "Sweden", Artist: "Loreen"}}, nil
		},
	}
	h := NewUserHandler(votes, &stubAccountService{})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/users/votes", nil), rec)
	c.Set(middleware.ContextUserID, "U1")

	require.NoError(t, h.Votes(c))
	assert.JSONEq(t, `[{"participant":"P1","vote":12,"country":"Sweden","artist":"Loreen"}]`, rec.Body.String())
}

func TestUserHandler_Votes_EmptyList(t *testing.T) {
	e := newEcho()
	votes := &stubVoteService{
		votesFn: func(context.Context, string) ([]ports.UserVoteItem, error) {
			return []ports.UserVoteItem{}, nil
		},
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/users/votes", nil), rec)
	c.Set(middleware.ContextUserID, "U1")

	require.NoError(t, NewUserHandler(votes, &stubAccountService{}).Votes(c))
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestUserHandler_Delete(t *testing.T) {
	e := newEcho()
	accounts := &stubAccountService{}

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/api/users", nil), rec)
	c.Set(middleware.ContextUserID, "U1")

	require.NoError(t, NewUserHandler(&stubVoteService{}, accounts).Delete(c))
	assert.Equal(t, []string{"U1"}, accounts.deleted)
	assert.JSONEq(t, `{"msg":"User deleted"}`, rec.Body.String())
}

func TestUserHandler_Delete_Failure(t *testing.T) {
	e := newEcho()
	boom := errors.New("boom")
	accounts := &stubAccountService{err: boom}

	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/api/users", nil), httptest.NewRecorder())
	c.Set(middleware.ContextUserID, "U1")

	assert.ErrorIs(t, NewUserHandler(&stubVoteService{}, accounts).Delete(c), boom)
}

func TestUserHandler_Votes_NeedsCaller(t *testing.T) {
	e := newEcho()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/users/votes", nil), httptest.NewRecorder())

	err := NewUserHandler(&stubVoteService{}, &stubAccountService{}).Votes(c)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
