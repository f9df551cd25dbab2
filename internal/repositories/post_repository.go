package repositories

import (
	"time"

	"github.com/Hellga-Olga/MyBubble/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post and feed operations.
// All listings return materialized pages ordered newest-first with id as the
// deterministic tie-break on equal timestamps.
type PostRepository interface {
	CreatePost(post *models.Post, images []models.Image) error
	GetPostByID(id uint) (*models.Post, error)
	GetParent(post *models.Post) (*models.Post, error)
	DeletePost(id uint) ([]models.Image, error)
	Feed(userID uint, page, perPage int) (*models.PostPage, error)
	Explore(page, perPage int) (*models.PostPage, error)
	ListByBoard(boardID uint, page, perPage int) (*models.PostPage, error)
	ListByAuthor(userID uint, page, perPage int) (*models.PostPage, error)
}

// PostgresPostRepository implements PostRepository for the relational store
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost inserts the post and its attached images in one transaction.
func (r *PostgresPostRepository) CreatePost(post *models.Post, images []models.Image) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if post.Timestamp.IsZero() {
			post.Timestamp = time.Now().UTC()
		}
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		for i := range images {
			images[i].PostID = post.ID
			if err := tx.Create(&images[i]).Error; err != nil {
				return err
			}
		}
		post.Images = images
		return nil
	})
}

func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Images").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetParent fetches the direct parent of a reply. Callers get
// gorm.ErrRecordNotFound for a dangling reference; thread chains are not
// walked.
func (r *PostgresPostRepository) GetParent(post *models.Post) (*models.Post, error) {
	if post.ParentPostID == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetPostByID(*post.ParentPostID)
}

// DeletePost removes the post and its image rows in one transaction and
// returns the removed images so the caller can unlink their files.
func (r *PostgresPostRepository) DeletePost(id uint) ([]models.Image, error) {
	var images []models.Image
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, id).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Find(&images).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Image{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return images, nil
}

// Feed returns the union of the user's own posts and posts by everyone the
// user follows, newest first. The followed-author set is resolved through a
// subquery against the followers table, so no join fan-out duplicates arise.
func (r *PostgresPostRepository) Feed(userID uint, page, perPage int) (*models.PostPage, error) {
	followed := r.db.Table("followers").Select("followed_id").Where("follower_id = ?", userID)
	scope := r.db.Model(&models.Post{}).Where("user_id = ? OR user_id IN (?)", userID, followed)
	return r.paginate(scope, page, perPage)
}

// Explore returns all posts newest-first, regardless of follow edges.
func (r *PostgresPostRepository) Explore(page, perPage int) (*models.PostPage, error) {
	return r.paginate(r.db.Model(&models.Post{}), page, perPage)
}

func (r *PostgresPostRepository) ListByBoard(boardID uint, page, perPage int) (*models.PostPage, error) {
	return r.paginate(r.db.Model(&models.Post{}).Where("board_id = ?", boardID), page, perPage)
}

func (r *PostgresPostRepository) ListByAuthor(userID uint, page, perPage int) (*models.PostPage, error) {
	return r.paginate(r.db.Model(&models.Post{}).Where("user_id = ?", userID), page, perPage)
}

func (r *PostgresPostRepository) paginate(scope *gorm.DB, page, perPage int) (*models.PostPage, error) {
	if page < 1 {
		page = 1
	}
	var total int64
	if err := scope.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}
	var posts []models.Post
	err := scope.Session(&gorm.Session{}).
		Preload("Images").
		Order("timestamp DESC, id DESC").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return &models.PostPage{Posts: posts, Page: page, PerPage: perPage, TotalItems: total}, nil
}
