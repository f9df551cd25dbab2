package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Hellga-Olga/MyBubble/internal/models"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// getUserIDFromContext extracts the authenticated user ID set by the JWT
// middleware. Returns 0 when unauthenticated.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return 0
	}
	return claims.UserID
}

// pageParam parses ?page=, defaulting to 1.
func pageParam(c echo.Context) int {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	return page
}

// repoError maps persistence errors onto the HTTP taxonomy: missing rows are
// 404s, everything else a 500.
func repoError(err error, notFoundMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, notFoundMsg)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
