package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/songcontest/contest-api/internal/core/domain"
)

type messageResponse struct {
	Msg string `json:"msg"`
}

type errorListResponse struct {
	Errors []messageResponse `json:"errors"`
}

// Sentinels whose text is safe to show to the client, most specific first.
var publicErrors = []error{
	domain.ErrUserNotFound,
	domain.ErrParticipantNotFound,
	domain.ErrCountryNotFound,
	domain.ErrCompetitionNotFound,
	domain.ErrInvalidCredentials,
	domain.ErrUserExists,
	domain.ErrCountryExists,
	domain.ErrCompetitionExists,
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain error classes to status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders {"msg": ...} or {"errors": [{"msg": ...}]}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, any) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, list(ve.Messages...)
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, list(domain.Message(err))
	case errors.Is(err, domain.ErrConflict):
		return http.StatusBadRequest, list(publicMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusBadRequest, messageResponse{Msg: publicMessage(err)}
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, messageResponse{Msg: publicMessage(err)}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, messageResponse{Msg: domain.ErrForbidden.Error()}
	}

	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code >= http.StatusInternalServerError {
			logInternal(log, c, err)
		}
		return he.Code, messageResponse{Msg: fmt.Sprintf("%v", he.Message)}
	}

	logInternal(log, c, err)
	return http.StatusInternalServerError, messageResponse{Msg: "Server error"}
}

func publicMessage(err error) string {
	for _, known := range publicErrors {
		if errors.Is(err, known) {
			return domain.Message(known)
		}
	}
	return domain.Message(err)
}

func list(msgs ...string) errorListResponse {
	out := errorListResponse{Errors: make([]messageResponse, 0, len(msgs))}
	for _, m := range msgs {
		out.Errors = append(out.Errors, messageResponse{Msg: m})
	}
	return out
}

func logInternal(log zerolog.Logger, c echo.Context, err error) {
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")
}
