package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bloodlink/bloodlink-backend/internal/dto"
	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const recentRequestCount = 3

// Pagination describes one page of a listing.
type Pagination struct {
	Page       int   `json:"currentPage"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"totalCount"`
	TotalPages int64 `json:"totalPages"`
}

// RequestService owns the donation-request lifecycle: creation, listing,
// the edit capability, and the status state machine.
type RequestService struct {
	requests RequestStore
}

func NewRequestService(requests RequestStore) *RequestService {
	return &RequestService{requests: requests}
}

// Create stores a new request. Status is forced to pending and donor fields
// start absent regardless of what the caller sent.
func (s *RequestService) Create(req *dto.CreateDonationRequest) (*models.DonationRequest, error) {
	if req.RequesterEmail == "" || req.BloodGroup == "" {
		return nil, ErrMissingFields
	}

	request := &models.DonationRequest{
		ID:                uuid.New(),
		RequesterName:     req.RequesterName,
		RequesterEmail:    req.RequesterEmail,
		RecipientName:     req.RecipientName,
		RecipientDistrict: req.RecipientDistrict,
		RecipientUpazila:  req.RecipientUpazila,
		HospitalName:      req.HospitalName,
		FullAddress:       req.FullAddress,
		BloodGroup:        req.BloodGroup,
		DonationDate:      req.DonationDate,
		DonationTime:      req.DonationTime,
		RequestMessage:    req.RequestMessage,
		Status:            models.StatusPending,
	}

	if err := s.requests.Create(request); err != nil {
		return nil, fmt.Errorf("create donation request: %w", err)
	}
	return request, nil
}

func (s *RequestService) Get(id uuid.UUID) (*models.DonationRequest, error) {
	request, err := s.requests.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return request, nil
}

// List returns one page of requests newest-first. "all" and empty status
// both mean no filter.
func (s *RequestService) List(status string, page, limit int) ([]models.DonationRequest, *Pagination, error) {
	if status == "all" {
		status = ""
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	items, total, err := s.requests.List(status, page, limit)
	if err != nil {
		return nil, nil, err
	}

	return items, &Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + int64(limit) - 1) / int64(limit),
	}, nil
}

// ListAll returns every request newest-first, lowercasing the status filter
// the way the volunteer dashboard sends it.
func (s *RequestService) ListAll(status string) ([]models.DonationRequest, error) {
	status = strings.ToLower(status)
	if status == "all" || !models.ValidRequestStatus(status) {
		status = ""
	}
	return s.requests.ListAll(status)
}

// ListByRequester matches the requester email case-insensitively. Unknown
// status values are ignored rather than rejected, matching the public
// filtering behavior.
func (s *RequestService) ListByRequester(email, status string) ([]models.DonationRequest, error) {
	if !models.ValidRequestStatus(status) {
		status = ""
	}
	return s.requests.ListByRequester(email, status)
}

func (s *RequestService) Recent(email string) ([]models.DonationRequest, error) {
	return s.requests.ListRecentByRequester(email, recentRequestCount)
}

// Edit applies allow-listed field changes outside the state machine. It never
// touches status or donor fields; those move only through Transition.
func (s *RequestService) Edit(id uuid.UUID, req *dto.EditDonationRequest) (int64, error) {
	fields := req.Fields()
	if len(fields) == 0 {
		return 0, ErrMissingFields
	}
	fields["updated_at"] = time.Now()

	matched, err := s.requests.UpdateFields(id, fields)
	if err != nil {
		return 0, err
	}
	if !matched {
		return 0, ErrNotFound
	}
	return 1, nil
}

// Transition moves a request to the target status.
//
// The policy is deliberately asymmetric: inprogress is the only state with an
// exit restriction (done or canceled), every other current→target pair is
// allowed, including pending→canceled directly. Entering inprogress requires
// donor identity and sets the donor fields; every other target clears them.
// The write is conditional on the status read at the start, so a concurrent
// transition loses with ErrStatusConflict instead of silently overwriting.
func (s *RequestService) Transition(id uuid.UUID, target, donorName, donorEmail string) error {
	if !models.ValidRequestStatus(target) {
		return ErrInvalidStatus
	}

	request, err := s.Get(id)
	if err != nil {
		return err
	}

	if request.Status == models.StatusInProgress &&
		target != models.StatusDone && target != models.StatusCanceled {
		return ErrInvalidTransition
	}

	fields := map[string]interface{}{
		"status":     target,
		"updated_at": time.Now(),
	}
	if target == models.StatusInProgress {
		if donorName == "" || donorEmail == "" {
			return ErrMissingDonorInfo
		}
		fields["donor_name"] = donorName
		fields["donor_email"] = donorEmail
	} else {
		fields["donor_name"] = nil
		fields["donor_email"] = nil
	}

	return s.applyTransition(id, request.Status, fields)
}

// ConfirmDonation is the pending→inprogress transition that assigns a donor.
// It is legal only while the request is still pending.
func (s *RequestService) ConfirmDonation(id uuid.UUID, donorName, donorEmail string) error {
	if donorName == "" || donorEmail == "" {
		return ErrMissingDonorInfo
	}

	request, err := s.Get(id)
	if err != nil {
		return err
	}
	if request.Status != models.StatusPending {
		return ErrInvalidTransition
	}

	fields := map[string]interface{}{
		"status":      models.StatusInProgress,
		"donor_name":  donorName,
		"donor_email": donorEmail,
		"updated_at":  time.Now(),
	}
	return s.applyTransition(id, models.StatusPending, fields)
}

func (s *RequestService) applyTransition(id uuid.UUID, expected string, fields map[string]interface{}) error {
	matched, err := s.requests.UpdateStatusFrom(id, expected, fields)
	if err != nil {
		return fmt.Errorf("apply transition: %w", err)
	}
	if matched {
		return nil
	}
	exists, err := s.requests.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return ErrStatusConflict
}

func (s *RequestService) Delete(id uuid.UUID) error {
	deleted, err := s.requests.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *RequestService) Count() (int64, error) {
	return s.requests.Count()
}
