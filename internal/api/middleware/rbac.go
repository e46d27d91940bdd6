package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minauth/auth-service/internal/core/domain"
)

// RBAC restricts a route to the given roles. It requires Auth to have run
// first; a request without a resolved Principal is rejected as unauthorized.
// The engine re-checks the caller's role on privileged operations, so this
// middleware only short-circuits earlier with the same outward result.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := PrincipalFrom(c)
			if principal == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing or invalid token")
			}
			if _, ok := allowed[principal.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "Unauthorized")
			}
			return next(c)
		}
	}
}
