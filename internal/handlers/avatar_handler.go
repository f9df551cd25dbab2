package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Hellga-Olga/MyBubble/internal/models"
	"github.com/Hellga-Olga/MyBubble/internal/repositories"
	"github.com/Hellga-Olga/MyBubble/internal/storage"
	"github.com/labstack/echo/v4"
)

const avatarsSubdir = "avatars"

// AvatarHandler handles avatar uploads
type AvatarHandler struct {
	avatarRepository repositories.AvatarRepository
	fileStore        *storage.FileStore
}

// NewAvatarHandler creates a new AvatarHandler
func NewAvatarHandler(avatarRepo repositories.AvatarRepository, fileStore *storage.FileStore) *AvatarHandler {
	return &AvatarHandler{
		avatarRepository: avatarRepo,
		fileStore:        fileStore,
	}
}

// RegisterAvatarRoutes registers avatar routes
func (h *AvatarHandler) RegisterAvatarRoutes(g *echo.Group) {
	g.POST("/avatar", h.UploadAvatar)
}

// UploadAvatar stores a new avatar (original + thumbnail variant) for the
// authenticated user. Any previous avatar row and its files are removed, so
// exactly one avatar per user survives.
func (h *AvatarHandler) UploadAvatar(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing avatar file")
	}
	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	defer src.Close()

	variants, err := h.fileStore.SaveImage(src, fileHeader.Filename, avatarsSubdir)
	if err != nil {
		if errors.Is(err, storage.ErrNotAnImage) {
			return echo.NewHTTPError(http.StatusBadRequest, "Uploaded file is not a valid image")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	avatar := &models.Avatar{
		UserID:        currentUserID,
		OriginalPath:  variants.OriginalPath,
		ThumbnailPath: variants.ThumbnailPath,
		CreatedAt:     time.Now().UTC(),
	}
	old, err := h.avatarRepository.Replace(avatar)
	if err != nil {
		h.fileStore.Remove(variants.OriginalPath, variants.ThumbnailPath)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if old != nil {
		h.fileStore.Remove(old.OriginalPath, old.ThumbnailPath)
	}

	return c.JSON(http.StatusCreated, avatar)
}
