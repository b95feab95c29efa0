package services

import (
	"encoding/json"
	"fmt"

	"github.com/bloodlink/bloodlink-backend/internal/dto"
	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FundingService records monetary contributions after a successful payment.
// Records are immutable apart from deletion.
type FundingService struct {
	fundings FundingStore
}

func NewFundingService(fundings FundingStore) *FundingService {
	return &FundingService{fundings: fundings}
}

// Record stores a funding row. The amount arrives through dto.Amount, so a
// numeric string has already been coerced to a number by the time it lands
// here.
func (s *FundingService) Record(req *dto.CreateFundingRequest) (*models.Funding, error) {
	if req.Email == "" {
		return nil, ErrMissingFields
	}
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	funding := &models.Funding{
		ID:            uuid.New(),
		Email:         req.Email,
		Name:          req.Name,
		Amount:        float64(req.Amount),
		TransactionID: req.TransactionID,
	}
	if req.CreatedAt != nil {
		funding.CreatedAt = *req.CreatedAt
	}
	if req.TransactionID != "" {
		meta, _ := json.Marshal(map[string]string{"provider": "stripe", "intent": req.TransactionID})
		funding.Gateway = datatypes.JSON(meta)
	}

	if err := s.fundings.Create(funding); err != nil {
		return nil, fmt.Errorf("record funding: %w", err)
	}
	return funding, nil
}

func (s *FundingService) List() ([]models.Funding, error) {
	return s.fundings.List()
}

func (s *FundingService) ListByEmail(email string) ([]models.Funding, error) {
	return s.fundings.ListByEmail(email)
}

func (s *FundingService) Delete(id uuid.UUID) error {
	deleted, err := s.fundings.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *FundingService) Total() (float64, error) {
	return s.fundings.TotalAmount()
}
