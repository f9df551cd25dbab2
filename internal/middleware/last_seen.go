package middleware

import (
	"time"

	"github.com/Hellga-Olga/MyBubble/internal/models"
	"github.com/Hellga-Olga/MyBubble/internal/repositories"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// LastSeenMiddleware records request activity for the authenticated user.
// Runs after JWT auth; a failed touch never fails the request.
func LastSeenMiddleware(userRepo repositories.UserRepository, log *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if claims, ok := c.Get("user").(*models.JwtCustomClaims); ok && claims.UserID != 0 {
				if err := userRepo.TouchLastSeen(claims.UserID, time.Now().UTC()); err != nil {
					log.WithError(err).Warn("failed to update last seen")
				}
			}
			return next(c)
		}
	}
}
