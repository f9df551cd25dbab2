package handlers

import (
	"net/http"

	"github.com/Hellga-Olga/MyBubble/internal/metrics"
	"github.com/Hellga-Olga/MyBubble/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followRepository repositories.FollowRepository
	userRepository   repositories.UserRepository
	metrics          *metrics.Metrics
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, userRepo repositories.UserRepository, m *metrics.Metrics) *FollowHandler {
	return &FollowHandler{
		followRepository: followRepo,
		userRepository:   userRepo,
		metrics:          m,
	}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:username/follow", h.FollowUser)
	g.DELETE("/users/:username/follow", h.UnfollowUser)
	g.GET("/users/:username/followers", h.GetFollowers)
	g.GET("/users/:username/following", h.GetFollowing)
}

// FollowUser follows a user. Following an already-followed user is a no-op
// success; following yourself is rejected here, not in the repository.
func (h *FollowHandler) FollowUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	target, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		return repoError(err, "User not found")
	}
	if currentUserID == target.ID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot follow yourself")
	}

	if err := h.followRepository.Follow(currentUserID, target.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.metrics.FollowRequests.Inc()

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": true}})
}

// UnfollowUser unfollows a user. Unfollowing a user you do not follow is a
// no-op success.
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	target, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		return repoError(err, "User not found")
	}
	if currentUserID == target.ID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot unfollow yourself")
	}

	if err := h.followRepository.Unfollow(currentUserID, target.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.metrics.UnfollowRequests.Inc()

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": false}})
}

// GetFollowers lists the users following :username.
func (h *FollowHandler) GetFollowers(c echo.Context) error {
	target, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		return repoError(err, "User not found")
	}
	users, err := h.followRepository.GetFollowers(target.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"users": users})
}

// GetFollowing lists the users :username follows.
func (h *FollowHandler) GetFollowing(c echo.Context) error {
	target, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		return repoError(err, "User not found")
	}
	users, err := h.followRepository.GetFollowing(target.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"users": users})
}
