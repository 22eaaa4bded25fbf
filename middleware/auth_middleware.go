// middleware/auth_middleware.go
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ctkevents/evm_backend/models"
)

// RequireAdmin rejects requests whose token does not carry the admin flag
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !IsAdminRequest(c) {
				return c.JSON(http.StatusForbidden, models.Response{
					Status:  http.StatusForbidden,
					Message: "Access denied. Admins only!",
				})
			}
			return next(c)
		}
	}
}
