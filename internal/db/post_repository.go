package db

import (
	"github.com/jaehyuncho/fitdiary/internal/models"
	"gorm.io/gorm"
)

type PostRepository struct {
	database *gorm.DB
}

func NewPostRepository(database *gorm.DB) *PostRepository {
	return &PostRepository{database: database}
}

func (repo *PostRepository) ListNewestFirst() ([]models.Post, error) {
	posts := make([]models.Post, 0)
	if err := repo.database.
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepository) FindByID(postID string) (models.Post, error) {
	var post models.Post
	if err := repo.database.First(&post, "id = ?", postID).Error; err != nil {
		return models.Post{}, err
	}
	return post, nil
}

func (repo *PostRepository) Create(post *models.Post) error {
	return repo.database.Create(post).Error
}

func (repo *PostRepository) Save(post *models.Post) error {
	return repo.database.Save(post).Error
}

func (repo *PostRepository) Delete(postID string) error {
	return repo.database.Delete(&models.Post{}, "id = ?", postID).Error
}
