package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/minauth/auth-service/internal/api/metrics"
	"github.com/minauth/auth-service/internal/core/domain"
	"github.com/minauth/auth-service/internal/core/ports"
)

const principalKey = "principal"

// Auth resolves the bearer token to a Principal and injects it into the
// request context. Token validity is re-checked against the session store on
// every request, never cached.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing or invalid token")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing or invalid token")
			}

			principal, err := auth.Verify(c.Request().Context(), parts[1])
			if err != nil {
				return fmt.Errorf("verify token: %w", err)
			}
			if principal == nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// PrincipalFrom returns the Principal injected by Auth, or nil when the
// middleware has not run on this request.
func PrincipalFrom(c echo.Context) *domain.Principal {
	principal, _ := c.Get(principalKey).(*domain.Principal)
	return principal
}
