package store

import (
	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestStore is the GORM-backed donation-request persistence layer.
type RequestStore struct {
	db *gorm.DB
}

func NewRequestStore(db *gorm.DB) *RequestStore {
	return &RequestStore{db: db}
}

func (s *RequestStore) Create(req *models.DonationRequest) error {
	return s.db.Create(req).Error
}

func (s *RequestStore) GetByID(id uuid.UUID) (*models.DonationRequest, error) {
	var req models.DonationRequest
	if err := s.db.First(&req, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *RequestStore) List(status string, page, limit int) ([]models.DonationRequest, int64, error) {
	var requests []models.DonationRequest
	var total int64

	query := s.db.Model(&models.DonationRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&requests).Error
	return requests, total, err
}

func (s *RequestStore) ListAll(status string) ([]models.DonationRequest, error) {
	var requests []models.DonationRequest
	query := s.db.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&requests).Error
	return requests, err
}

func (s *RequestStore) ListByRequester(email, status string) ([]models.DonationRequest, error) {
	var requests []models.DonationRequest
	query := s.db.Where("LOWER(requester_email) = LOWER(?)", email)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (s *RequestStore) ListRecentByRequester(email string, n int) ([]models.DonationRequest, error) {
	var requests []models.DonationRequest
	err := s.db.Where("requester_email = ?", email).
		Order("created_at DESC").
		Limit(n).
		Find(&requests).Error
	return requests, err
}

func (s *RequestStore) UpdateFields(id uuid.UUID, fields map[string]interface{}) (bool, error) {
	result := s.db.Model(&models.DonationRequest{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected > 0, result.Error
}

// UpdateStatusFrom is the conditional write behind status transitions: the
// row is updated only if its status still equals what the caller read.
func (s *RequestStore) UpdateStatusFrom(id uuid.UUID, expected string, fields map[string]interface{}) (bool, error) {
	result := s.db.Model(&models.DonationRequest{}).
		Where("id = ? AND status = ?", id, expected).
		Updates(fields)
	return result.RowsAffected > 0, result.Error
}

func (s *RequestStore) Exists(id uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Model(&models.DonationRequest{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (s *RequestStore) Delete(id uuid.UUID) (bool, error) {
	result := s.db.Delete(&models.DonationRequest{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (s *RequestStore) Count() (int64, error) {
	var count int64
	err := s.db.Model(&models.DonationRequest{}).Count(&count).Error
	return count, err
}
