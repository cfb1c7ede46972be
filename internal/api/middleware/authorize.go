package middleware

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/songcontest/contest-api/internal/core/domain"
)

// AccountLookup loads the stored account behind an authenticated caller.
type AccountLookup interface {
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}

// Authorize applies domain.Authorize to the caller set by Auth. When the
// decision depends on the role, the role comes from accounts rather than the
// token, so a demoted or deleted admin loses write access immediately.
func Authorize(accounts AccountLookup, resource domain.Resource, action domain.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller := CallerFrom(c)
			if domain.RoleSensitive(resource, action) {
				if caller.UserID == "" {
					return domain.ErrUnauthorized
				}
				user, err := accounts.CurrentUser(c.Request().Context(), caller.UserID)
				if err != nil {
					if errors.Is(err, domain.ErrNotFound) {
						return domain.ErrUnauthorized
					}
					return err
				}
				caller.Role = user.Role
			}
			if err := domain.Authorize(caller, resource, action); err != nil {
				return err
			}
			return next(c)
		}
	}
}
