package repositories

import (
	"errors"

	"github.com/Hellga-Olga/MyBubble/internal/models"
	"gorm.io/gorm"
)

// AvatarRepository defines the interface for avatar rows. A user has at most
// one avatar; Replace swaps the row and reports the displaced one so the
// caller can unlink its files.
type AvatarRepository interface {
	GetByUserID(userID uint) (*models.Avatar, error)
	Replace(avatar *models.Avatar) (old *models.Avatar, err error)
}

type postgresAvatarRepository struct {
	db *gorm.DB
}

// NewPostgresAvatarRepository creates an avatar repository backed by the
// relational store
func NewPostgresAvatarRepository(db *gorm.DB) AvatarRepository {
	return &postgresAvatarRepository{db: db}
}

func (r *postgresAvatarRepository) GetByUserID(userID uint) (*models.Avatar, error) {
	var avatar models.Avatar
	if err := r.db.Where("user_id = ?", userID).First(&avatar).Error; err != nil {
		return nil, err
	}
	return &avatar, nil
}

// Replace deletes the user's previous avatar row, if any, and inserts the
// new one in the same transaction. The previous row is returned so its files
// can be removed after commit.
func (r *postgresAvatarRepository) Replace(avatar *models.Avatar) (*models.Avatar, error) {
	var old *models.Avatar
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var prev models.Avatar
		err := tx.Where("user_id = ?", avatar.UserID).First(&prev).Error
		switch {
		case err == nil:
			old = &prev
			if err := tx.Delete(&prev).Error; err != nil {
				return err
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
		return tx.Create(avatar).Error
	})
	if err != nil {
		return nil, err
	}
	return old, nil
}
