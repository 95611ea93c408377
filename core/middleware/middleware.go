package middleware

import (
	"net/http"
	"strings"
	"time"

	"enoki-admin/core/config"
	"enoki-admin/core/constants"
	"enoki-admin/core/errors"
	"enoki-admin/core/utils"

	"github.com/labstack/echo/v4"
)

type Middleware struct {
	cfg config.Config
}

func New(cfg config.Config) *Middleware {
	return &Middleware{cfg: cfg}
}

// AuthMiddleware validates the Bearer token and stores claims on the context
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized,
					errors.NewAppError(errors.ErrMissingAuthorizationHeader, "Missing authorization header", nil))
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized,
					errors.NewAppError(errors.ErrInvalidTokenFormat, "Invalid authorization header format", nil))
			}

			claims, appErr := utils.ParseToken(parts[1], m.cfg.Auth.JWTSecret)
			if appErr != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, appErr)
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}

// RequireRole gates a route group to the listed account roles
func (m *Middleware) RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenData := c.Get(constants.ContextTokenData)
			claims, ok := tokenData.(*utils.TokenClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized,
					errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil))
			}
			for _, r := range roles {
				if claims.Role == r {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden,
				errors.NewAppError(errors.ErrForbidden, "Insufficient role", nil))
		}
	}
}

// AccessTokenTTL resolves the configured token lifetime
func (m *Middleware) AccessTokenTTL() time.Duration {
	return time.Duration(m.cfg.Auth.AccessTokenTTLMins) * time.Minute
}
