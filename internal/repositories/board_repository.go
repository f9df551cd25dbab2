package repositories

import (
	"github.com/Hellga-Olga/MyBubble/internal/models"
	"gorm.io/gorm"
)

// BoardRepository defines the interface for board lookups and seeding
type BoardRepository interface {
	GetBoardByName(name string) (*models.Board, error)
	GetBoardByID(id uint) (*models.Board, error)
	ListBoards() ([]models.Board, error)
	Seed(names []string) error
}

type postgresBoardRepository struct {
	db *gorm.DB
}

// NewPostgresBoardRepository creates a board repository backed by the
// relational store
func NewPostgresBoardRepository(db *gorm.DB) BoardRepository {
	return &postgresBoardRepository{db: db}
}

func (r *postgresBoardRepository) GetBoardByName(name string) (*models.Board, error) {
	var board models.Board
	if err := r.db.Where("name = ?", name).First(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *postgresBoardRepository) GetBoardByID(id uint) (*models.Board, error) {
	var board models.Board
	if err := r.db.First(&board, id).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *postgresBoardRepository) ListBoards() ([]models.Board, error) {
	var boards []models.Board
	err := r.db.Order("id ASC").Find(&boards).Error
	return boards, err
}

// Seed creates any boards from names that do not exist yet. Run at startup.
func (r *postgresBoardRepository) Seed(names []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, name := range names {
			var board models.Board
			err := tx.Where("name = ?", name).First(&board).Error
			if err == nil {
				continue
			}
			if err != gorm.ErrRecordNotFound {
				return err
			}
			if err := tx.Create(&models.Board{Name: name}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
