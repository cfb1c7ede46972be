package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/songcontest/contest-api/internal/core/domain"
)

// Context keys set by Auth.
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// TokenHeader is the legacy header the site's frontend sends the token in.
const TokenHeader = "x-auth-token"

// Auth validates the JWT and injects the caller's identity into context.
// The token is read from "Authorization: Bearer <t>" or from x-auth-token.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := tokenFrom(c.Request())
			if err != nil {
				return err
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "Token is not valid")
			}

			userID, _ := claims["user_id"].(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Token is not valid")
			}
			role, _ := claims["role"].(string)

			c.Set(ContextUserID, userID)
			c.Set(ContextRole, role)

			return next(c)
		}
	}
}

func tokenFrom(r *http.Request) (string, error) {
	if authHeader := r.Header.Get(echo.HeaderAuthorization); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
			return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
		}
		return parts[1], nil
	}
	if t := r.Header.Get(TokenHeader); t != "" {
		return t, nil
	}
	return "", echo.NewHTTPError(http.StatusUnauthorized, "No token, authorization denied")
}

// CallerFrom returns the identity Auth stored on c. Unauthenticated
// requests yield the zero Caller.
func CallerFrom(c echo.Context) domain.Caller {
	userID, _ := c.Get(ContextUserID).(string)
	role, _ := c.Get(ContextRole).(string)
	return domain.Caller{UserID: userID, Role: role}
}
