package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/Hellga-Olga/MyBubble/internal/langdetect"
	"github.com/Hellga-Olga/MyBubble/internal/metrics"
	"github.com/Hellga-Olga/MyBubble/internal/models"
	"github.com/Hellga-Olga/MyBubble/internal/repositories"
	"github.com/Hellga-Olga/MyBubble/internal/storage"
	"github.com/labstack/echo/v4"
)

const postImagesSubdir = "posts"

// PostHandler handles board posting, replies and post lookup/deletion
type PostHandler struct {
	postRepository  repositories.PostRepository
	boardRepository repositories.BoardRepository
	fileStore       *storage.FileStore
	detector        *langdetect.Detector
	metrics         *metrics.Metrics
	postsPerPage    int
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(
	postRepo repositories.PostRepository,
	boardRepo repositories.BoardRepository,
	fileStore *storage.FileStore,
	detector *langdetect.Detector,
	m *metrics.Metrics,
	postsPerPage int,
) *PostHandler {
	return &PostHandler{
		postRepository:  postRepo,
		boardRepository: boardRepo,
		fileStore:       fileStore,
		detector:        detector,
		metrics:         m,
		postsPerPage:    postsPerPage,
	}
}

// RegisterPostRoutes registers board and post routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.GET("/boards", h.ListBoards)
	g.GET("/boards/:name/posts", h.GetBoardPosts)
	g.POST("/boards/:name/posts", h.CreateBoardPost)
	g.GET("/posts/:id", h.GetPost)
	g.POST("/posts/:id/reply", h.ReplyToPost)
	g.DELETE("/posts/:id", h.DeletePost)
}

// ListBoards returns all boards.
func (h *PostHandler) ListBoards(c echo.Context) error {
	boards, err := h.boardRepository.ListBoards()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"boards": boards})
}

// GetBoardPosts returns a board's posts, newest first, paginated.
func (h *PostHandler) GetBoardPosts(c echo.Context) error {
	board, err := h.boardRepository.GetBoardByName(c.Param("name"))
	if err != nil {
		return repoError(err, "Board not found")
	}
	page, err := h.postRepository.ListByBoard(board.ID, pageParam(c), h.postsPerPage)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"board": board, "page": page})
}

// CreateBoardPost publishes a post to a board. The request is multipart:
// a "body" field plus optional "images" files, each stored as original +
// thumbnail before the row commit. The post's language tag is best-effort;
// undetectable text gets an empty tag.
func (h *PostHandler) CreateBoardPost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	board, err := h.boardRepository.GetBoardByName(c.Param("name"))
	if err != nil {
		return repoError(err, "Board not found")
	}
	return h.createPost(c, currentUserID, board.ID, nil)
}

// ReplyToPost publishes a reply to an existing post, on the parent's board.
func (h *PostHandler) ReplyToPost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	parentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	parent, err := h.postRepository.GetPostByID(uint(parentID))
	if err != nil {
		return repoError(err, "Post not found")
	}
	pid := parent.ID
	return h.createPost(c, currentUserID, parent.BoardID, &pid)
}

func (h *PostHandler) createPost(c echo.Context, userID, boardID uint, parentID *uint) error {
	req := models.CreatePostRequest{Body: c.FormValue("body")}
	if err := c.Validate(&req); err != nil {
		return err
	}

	images, err := h.storeUploads(c, userID)
	if err != nil {
		return err
	}

	post := &models.Post{
		Body:         req.Body,
		Timestamp:    time.Now().UTC(),
		UserID:       userID,
		BoardID:      boardID,
		ParentPostID: parentID,
		Language:     h.detector.Detect(req.Body),
	}
	if err := h.postRepository.CreatePost(post, images); err != nil {
		// the rows never committed; the stored files are orphans
		for _, img := range images {
			h.fileStore.Remove(img.OriginalPath, img.ThumbnailPath)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.metrics.PostsCreated.Inc()

	return c.JSON(http.StatusCreated, post)
}

// storeUploads persists every attached image synchronously; the request
// blocks until originals and thumbnails are on disk.
func (h *PostHandler) storeUploads(c echo.Context, userID uint) ([]models.Image, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// plain form post without attachments
		return nil, nil
	}

	var images []models.Image
	for _, fileHeader := range form.File["images"] {
		variants, err := h.saveUpload(fileHeader)
		if err != nil {
			if errors.Is(err, storage.ErrNotAnImage) {
				return nil, echo.NewHTTPError(http.StatusBadRequest, "Attached file is not a valid image")
			}
			return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		images = append(images, models.Image{
			UserID:        userID,
			OriginalPath:  variants.OriginalPath,
			ThumbnailPath: variants.ThumbnailPath,
		})
	}
	return images, nil
}

func (h *PostHandler) saveUpload(fileHeader *multipart.FileHeader) (*storage.Variants, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return h.fileStore.SaveImage(src, fileHeader.Filename, postImagesSubdir)
}

// GetPost returns one post with its images and, for replies, the direct
// parent. Thread chains are not walked.
func (h *PostHandler) GetPost(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	post, err := h.postRepository.GetPostByID(uint(id))
	if err != nil {
		return repoError(err, "Post not found")
	}

	resp := echo.Map{"post": post}
	if post.ParentPostID != nil {
		parent, err := h.postRepository.GetParent(post)
		if err != nil {
			return repoError(err, "Parent post not found")
		}
		resp["parent"] = parent
	}
	return c.JSON(http.StatusOK, resp)
}

// DeletePost removes the author's own post, cascading its image rows and
// unlinking their files.
func (h *PostHandler) DeletePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	post, err := h.postRepository.GetPostByID(uint(id))
	if err != nil {
		return repoError(err, "Post not found")
	}
	if post.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Cannot delete another user's post")
	}

	images, err := h.postRepository.DeletePost(post.ID)
	if err != nil {
		return repoError(err, "Post not found")
	}
	for _, img := range images {
		h.fileStore.Remove(img.OriginalPath, img.ThumbnailPath)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
