package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/songcontest/contest-api/internal/api/middleware"
	"github.com/songcontest/contest-api/internal/core/domain"
)

// callerID returns the authenticated user id. A missing id means the route
// was registered without the Auth middleware; fail closed.
func callerID(c echo.Context) (string, error) {
	caller := middleware.CallerFrom(c)
	if caller.UserID == "" {
		return "", domain.ErrUnauthorized
	}
	return caller.UserID, nil
}

// bind decodes the request and runs the registered validator. Malformed
// bodies are reported as validation errors.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domain.NewValidationError("Invalid request payload")
	}
	return c.Validate(req)
}
