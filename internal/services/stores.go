package services

import (
	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/google/uuid"
)

// Store interfaces are defined here, on the consuming side; the GORM
// implementations live in internal/store. Lookups that miss return
// gorm.ErrRecordNotFound, which services translate into their own errors.

type UserStore interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id uuid.UUID) (*models.User, error)
	List(status string) ([]models.User, error)
	ListDonors(bloodGroup, district, upazila string) ([]models.User, error)
	UpdateFields(id uuid.UUID, fields map[string]interface{}) (bool, error)
	UpdateFieldsByEmail(email string, fields map[string]interface{}) (bool, error)
	CountByRole(role string) (int64, error)
}

type RequestStore interface {
	Create(req *models.DonationRequest) error
	GetByID(id uuid.UUID) (*models.DonationRequest, error)
	// List returns one page sorted by creation time descending plus the
	// total matching count. An empty status means no status filter.
	List(status string, page, limit int) ([]models.DonationRequest, int64, error)
	// ListAll returns every matching request newest-first, unpaginated.
	ListAll(status string) ([]models.DonationRequest, error)
	// ListByRequester matches the requester email case-insensitively.
	ListByRequester(email, status string) ([]models.DonationRequest, error)
	ListRecentByRequester(email string, n int) ([]models.DonationRequest, error)
	UpdateFields(id uuid.UUID, fields map[string]interface{}) (bool, error)
	// UpdateStatusFrom applies fields only if the stored status still equals
	// expected, reporting whether a row matched.
	UpdateStatusFrom(id uuid.UUID, expected string, fields map[string]interface{}) (bool, error)
	Exists(id uuid.UUID) (bool, error)
	Delete(id uuid.UUID) (bool, error)
	Count() (int64, error)
}

type BlogStore interface {
	Create(blog *models.Blog) error
	GetByID(id uuid.UUID) (*models.Blog, error)
	List(status string, page, limit int) ([]models.Blog, int64, error)
	UpdateFields(id uuid.UUID, fields map[string]interface{}) (bool, error)
	Delete(id uuid.UUID) (bool, error)
}

type FundingStore interface {
	Create(funding *models.Funding) error
	List() ([]models.Funding, error)
	ListByEmail(email string) ([]models.Funding, error)
	Delete(id uuid.UUID) (bool, error)
	TotalAmount() (float64, error)
}
