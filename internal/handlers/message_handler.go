package handlers

import (
	"net/http"
	"time"

	"github.com/Hellga-Olga/MyBubble/internal/metrics"
	"github.com/Hellga-Olga/MyBubble/internal/models"
	"github.com/Hellga-Olga/MyBubble/internal/repositories"
	"github.com/labstack/echo/v4"
)

// MessageHandler handles private-message HTTP requests
type MessageHandler struct {
	messageRepository      repositories.MessageRepository
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
	metrics                *metrics.Metrics
	perPage                int
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
	m *metrics.Metrics,
	perPage int,
) *MessageHandler {
	return &MessageHandler{
		messageRepository:      messageRepo,
		userRepository:         userRepo,
		notificationRepository: notificationRepo,
		metrics:                m,
		perPage:                perPage,
	}
}

// RegisterMessageRoutes registers messaging routes
func (h *MessageHandler) RegisterMessageRoutes(g *echo.Group) {
	g.POST("/users/:username/messages", h.SendMessage)
	g.GET("/messages", h.GetReceivedMessages)
	g.GET("/messages/sent", h.GetSentMessages)
}

// SendMessage delivers a private message to :username. The recipient's
// unread-count notification refreshes in the same transaction as the insert.
func (h *MessageHandler) SendMessage(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	recipient, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		return repoError(err, "User not found")
	}
	if recipient.ID == currentUserID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot message yourself")
	}

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	msg, err := h.messageRepository.Send(currentUserID, recipient.ID, req.Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.metrics.MessagesSent.Inc()

	return c.JSON(http.StatusCreated, msg)
}

// GetReceivedMessages returns the inbox page. Opening it advances the read
// marker and zeroes the unread-count notification, so the unread count is 0
// immediately afterwards.
func (h *MessageHandler) GetReceivedMessages(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	if err := h.userRepository.AdvanceMessageReadTime(currentUserID, time.Now().UTC()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if _, err := h.notificationRepository.Upsert(currentUserID, models.UnreadMessageCountNotification, 0); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	page, err := h.messageRepository.ReceivedPage(currentUserID, pageParam(c), h.perPage)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, page)
}

// GetSentMessages returns the sent-messages page.
func (h *MessageHandler) GetSentMessages(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	page, err := h.messageRepository.SentPage(currentUserID, pageParam(c), h.perPage)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, page)
}
