package store

import (
	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlogStore is the GORM-backed blog persistence layer.
type BlogStore struct {
	db *gorm.DB
}

func NewBlogStore(db *gorm.DB) *BlogStore {
	return &BlogStore{db: db}
}

func (s *BlogStore) Create(blog *models.Blog) error {
	return s.db.Create(blog).Error
}

func (s *BlogStore) GetByID(id uuid.UUID) (*models.Blog, error) {
	var blog models.Blog
	if err := s.db.First(&blog, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

func (s *BlogStore) List(status string, page, limit int) ([]models.Blog, int64, error) {
	var blogs []models.Blog
	var total int64

	query := s.db.Model(&models.Blog{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&blogs).Error
	return blogs, total, err
}

func (s *BlogStore) UpdateFields(id uuid.UUID, fields map[string]interface{}) (bool, error) {
	result := s.db.Model(&models.Blog{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected > 0, result.Error
}

func (s *BlogStore) Delete(id uuid.UUID) (bool, error) {
	result := s.db.Delete(&models.Blog{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
