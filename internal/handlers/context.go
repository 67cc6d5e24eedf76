package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/warblr-social/backend/internal/models"
)

// getUserIDFromContext returns the authenticated user id stored by the JWT
// middleware, or 0 when the request carries no identity.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return 0
	}
	return claims.UserID
}
