package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Hellga-Olga/MyBubble/internal/repositories"
	"github.com/labstack/echo/v4"
)

// NotificationHandler serves the incremental notification poll
type NotificationHandler struct {
	notificationRepository repositories.NotificationRepository
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationRepo repositories.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notificationRepository: notificationRepo}
}

// RegisterNotificationRoutes registers notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
}

type notificationView struct {
	Name      string          `json:"name"`
	Data      json.RawMessage `json:"data"`
	Timestamp float64         `json:"timestamp"`
}

// GetNotifications returns the user's notifications strictly newer than
// ?since=<float unix seconds>, oldest first. Clients poll with the largest
// timestamp they have seen.
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	since := 0.0
	if raw := c.QueryParam("since"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid since parameter")
		}
		since = parsed
	}

	notifications, err := h.notificationRepository.ListSince(currentUserID, since)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	views := make([]notificationView, len(notifications))
	for i, n := range notifications {
		views[i] = notificationView{
			Name:      n.Name,
			Data:      json.RawMessage(n.Payload),
			Timestamp: n.Timestamp,
		}
	}
	return c.JSON(http.StatusOK, views)
}
