package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/bloodlink/bloodlink-backend/internal/dto"
	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService owns the user registry: registration, profile reads and
// updates, and the admin role/status switches.
type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Register creates a user with the default donor role and active status.
// Duplicate emails are rejected.
func (s *UserService) Register(req *dto.RegisterRequest) (*models.User, error) {
	if req.Email == "" || req.Name == "" || req.BloodGroup == "" || req.District == "" || req.Upazila == "" {
		return nil, ErrMissingFields
	}

	_, err := s.users.GetByEmail(req.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	user := &models.User{
		ID:         uuid.New(),
		Email:      req.Email,
		Name:       req.Name,
		BloodGroup: req.BloodGroup,
		District:   req.District,
		Upazila:    req.Upazila,
		Avatar:     req.Avatar,
		Role:       models.RoleDonor,
		Status:     models.UserStatusActive,
	}

	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *UserService) GetByEmail(email string) (*models.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies the allow-listed profile fields for the given email.
func (s *UserService) UpdateProfile(email string, req *dto.UpdateProfileRequest) (int64, error) {
	fields := req.Fields()
	if len(fields) == 0 {
		return 0, ErrMissingFields
	}
	fields["updated_at"] = time.Now()

	matched, err := s.users.UpdateFieldsByEmail(email, fields)
	if err != nil {
		return 0, err
	}
	if !matched {
		return 0, ErrUserNotFound
	}
	return 1, nil
}

// List returns all users, optionally filtered by account status.
// "all" and empty both mean no filter.
func (s *UserService) List(status string) ([]models.User, error) {
	if status == "all" {
		status = ""
	}
	return s.users.List(status)
}

// ListDonors returns active donors matching the optional filters.
func (s *UserService) ListDonors(bloodGroup, district, upazila string) ([]models.User, error) {
	return s.users.ListDonors(bloodGroup, district, upazila)
}

// SetStatus switches a user between active and blocked.
func (s *UserService) SetStatus(id uuid.UUID, status string) error {
	if !models.ValidUserStatus(status) {
		return ErrInvalidStatus
	}
	matched, err := s.users.UpdateFields(id, map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if err != nil {
		return err
	}
	if !matched {
		return ErrUserNotFound
	}
	return nil
}

// SetRole assigns a new role to a user.
func (s *UserService) SetRole(id uuid.UUID, role string) error {
	if !models.ValidRole(role) {
		return ErrInvalidRole
	}
	matched, err := s.users.UpdateFields(id, map[string]interface{}{
		"role":       role,
		"updated_at": time.Now(),
	})
	if err != nil {
		return err
	}
	if !matched {
		return ErrUserNotFound
	}
	return nil
}

func (s *UserService) CountDonors() (int64, error) {
	return s.users.CountByRole(models.RoleDonor)
}
