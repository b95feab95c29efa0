package store

import (
	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FundingStore is the GORM-backed funding persistence layer.
type FundingStore struct {
	db *gorm.DB
}

func NewFundingStore(db *gorm.DB) *FundingStore {
	return &FundingStore{db: db}
}

func (s *FundingStore) Create(funding *models.Funding) error {
	return s.db.Create(funding).Error
}

func (s *FundingStore) List() ([]models.Funding, error) {
	var fundings []models.Funding
	err := s.db.Order("created_at DESC").Find(&fundings).Error
	return fundings, err
}

func (s *FundingStore) ListByEmail(email string) ([]models.Funding, error) {
	var fundings []models.Funding
	err := s.db.Where("email = ?", email).Order("created_at DESC").Find(&fundings).Error
	return fundings, err
}

func (s *FundingStore) Delete(id uuid.UUID) (bool, error) {
	result := s.db.Delete(&models.Funding{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (s *FundingStore) TotalAmount() (float64, error) {
	var total float64
	err := s.db.Model(&models.Funding{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
