package handlers

import (
	"net/http"

	"github.com/Hellga-Olga/MyBubble/internal/translate"
	"github.com/labstack/echo/v4"
)

// TranslateHandler proxies the external translation service
type TranslateHandler struct {
	client *translate.Client
}

// NewTranslateHandler creates a new TranslateHandler
func NewTranslateHandler(client *translate.Client) *TranslateHandler {
	return &TranslateHandler{client: client}
}

// RegisterTranslateRoutes registers the translation route
func (h *TranslateHandler) RegisterTranslateRoutes(g *echo.Group) {
	g.POST("/translate", h.TranslateText)
}

type translateRequest struct {
	Text           string `json:"text" validate:"required"`
	SourceLanguage string `json:"source_language" validate:"required"`
	DestLanguage   string `json:"dest_language" validate:"required"`
}

// TranslateText translates text synchronously, independent of persisted
// data.
func (h *TranslateHandler) TranslateText(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	text, err := h.client.Translate(c.Request().Context(), req.Text, req.SourceLanguage, req.DestLanguage)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"text": text})
}
