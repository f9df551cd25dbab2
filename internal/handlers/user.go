package handlers

import (
	"errors"
	"net/http"

	"github.com/Hellga-Olga/MyBubble/internal/models"
	"github.com/Hellga-Olga/MyBubble/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const avatarDisplaySize = 128

// UserHandler handles profile HTTP requests
type UserHandler struct {
	userRepository   repositories.UserRepository
	followRepository repositories.FollowRepository
	postRepository   repositories.PostRepository
	avatarRepository repositories.AvatarRepository
	postsPerPage     int
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(
	userRepo repositories.UserRepository,
	followRepo repositories.FollowRepository,
	postRepo repositories.PostRepository,
	avatarRepo repositories.AvatarRepository,
	postsPerPage int,
) *UserHandler {
	return &UserHandler{
		userRepository:   userRepo,
		followRepository: followRepo,
		postRepository:   postRepo,
		avatarRepository: avatarRepo,
		postsPerPage:     postsPerPage,
	}
}

// RegisterUserRoutes registers profile-related routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users/search", h.SearchUsers)
	g.GET("/users/:username", h.GetProfile)
	g.GET("/users/:username/posts", h.GetUserPosts)
	g.PUT("/profile", h.UpdateProfile)
}

// GetProfile returns a user page: profile fields, follow counts and whether
// the viewer follows them. Users without an uploaded avatar get an identicon
// URL derived from their email.
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		return repoError(err, "User not found")
	}

	followers, err := h.followRepository.GetFollowersCount(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	following, err := h.followRepository.GetFollowingCount(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	isFollowing := false
	if viewerID := getUserIDFromContext(c); viewerID != 0 && viewerID != user.ID {
		isFollowing, err = h.followRepository.IsFollowing(viewerID, user.ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	avatarURL := user.AvatarURL(avatarDisplaySize)
	avatar, err := h.avatarRepository.GetByUserID(user.ID)
	if err == nil {
		avatarURL = avatar.ThumbnailPath
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, models.UserProfile{
		ID:             user.ID,
		Username:       user.Username,
		AboutMe:        user.AboutMe,
		LastSeen:       user.LastSeen,
		AvatarURL:      avatarURL,
		FollowersCount: followers,
		FollowingCount: following,
		IsFollowing:    isFollowing,
	})
}

// GetUserPosts returns the user's own posts, newest first, paginated.
func (h *UserHandler) GetUserPosts(c echo.Context) error {
	user, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		return repoError(err, "User not found")
	}
	page, err := h.postRepository.ListByAuthor(user.ID, pageParam(c), h.postsPerPage)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, page)
}

// UpdateProfile edits the authenticated user's username and about-me text.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByID(currentUserID)
	if err != nil {
		return repoError(err, "User not found")
	}

	if req.Username != "" && req.Username != user.Username {
		if _, err := h.userRepository.GetUserByUsername(req.Username); err == nil {
			return echo.NewHTTPError(http.StatusConflict, "Username already taken")
		}
		user.Username = req.Username
	}
	if req.AboutMe != "" {
		user.AboutMe = req.AboutMe
	}

	if err := h.userRepository.UpdateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, user)
}

// SearchUsers searches users by username fragment.
func (h *UserHandler) SearchUsers(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing search query")
	}
	users, err := h.userRepository.SearchUsers(query)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"users": users})
}
