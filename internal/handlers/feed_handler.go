package handlers

import (
	"net/http"

	"github.com/Hellga-Olga/MyBubble/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	postRepository repositories.PostRepository
	postsPerPage   int
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(postRepo repositories.PostRepository, postsPerPage int) *FeedHandler {
	return &FeedHandler{
		postRepository: postRepo,
		postsPerPage:   postsPerPage,
	}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
	g.GET("/explore", h.GetExplore)
}

// GetFeed returns the union of the current user's posts and their followees'
// posts, newest first, paginated.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	page, err := h.postRepository.Feed(currentUserID, pageParam(c), h.postsPerPage)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"posts": page.Posts},
		"meta": echo.Map{
			"currentPage":     page.Page,
			"itemsPerPage":    page.PerPage,
			"totalItems":      page.TotalItems,
			"hasNextPage":     page.HasNext(),
			"hasPreviousPage": page.HasPrev(),
		},
	})
}

// GetExplore returns all posts regardless of follow edges.
func (h *FeedHandler) GetExplore(c echo.Context) error {
	page, err := h.postRepository.Explore(pageParam(c), h.postsPerPage)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"posts": page.Posts},
		"meta": echo.Map{
			"currentPage":     page.Page,
			"itemsPerPage":    page.PerPage,
			"totalItems":      page.TotalItems,
			"hasNextPage":     page.HasNext(),
			"hasPreviousPage": page.HasPrev(),
		},
	})
}
