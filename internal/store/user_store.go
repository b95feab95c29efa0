package store

import (
	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserStore is the GORM-backed user persistence layer.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *UserStore) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) List(status string) ([]models.User, error) {
	var users []models.User
	query := s.db.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&users).Error
	return users, err
}

func (s *UserStore) ListDonors(bloodGroup, district, upazila string) ([]models.User, error) {
	var donors []models.User
	query := s.db.Where("role = ? AND status = ?", models.RoleDonor, models.UserStatusActive)
	if bloodGroup != "" {
		query = query.Where("blood_group = ?", bloodGroup)
	}
	if district != "" {
		query = query.Where("district = ?", district)
	}
	if upazila != "" {
		query = query.Where("upazila = ?", upazila)
	}
	err := query.Order("created_at DESC").Find(&donors).Error
	return donors, err
}

func (s *UserStore) UpdateFields(id uuid.UUID, fields map[string]interface{}) (bool, error) {
	result := s.db.Model(&models.User{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected > 0, result.Error
}

func (s *UserStore) UpdateFieldsByEmail(email string, fields map[string]interface{}) (bool, error) {
	result := s.db.Model(&models.User{}).Where("email = ?", email).Updates(fields)
	return result.RowsAffected > 0, result.Error
}

func (s *UserStore) CountByRole(role string) (int64, error) {
	var count int64
	err := s.db.Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}
