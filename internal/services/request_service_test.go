package services

import (
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/bloodlink/bloodlink-backend/internal/dto"
	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRequestStore struct {
	requests map[uuid.UUID]*models.DonationRequest
}

func newFakeRequestStore() *fakeRequestStore {
	return &fakeRequestStore{requests: make(map[uuid.UUID]*models.DonationRequest)}
}

func (s *fakeRequestStore) Create(req *models.DonationRequest) error {
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}
	cp := *req
	s.requests[req.ID] = &cp
	return nil
}

func (s *fakeRequestStore) GetByID(id uuid.UUID) (*models.DonationRequest, error) {
	req, ok := s.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *req
	return &cp, nil
}

func (s *fakeRequestStore) sorted(status string) []models.DonationRequest {
	var out []models.DonationRequest
	for _, req := range s.requests {
		if status != "" && req.Status != status {
			continue
		}
		out = append(out, *req)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *fakeRequestStore) List(status string, page, limit int) ([]models.DonationRequest, int64, error) {
	all := s.sorted(status)
	total := int64(len(all))
	start := (page - 1) * limit
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (s *fakeRequestStore) ListAll(status string) ([]models.DonationRequest, error) {
	return s.sorted(status), nil
}

func (s *fakeRequestStore) ListByRequester(email, status string) ([]models.DonationRequest, error) {
	var out []models.DonationRequest
	for _, req := range s.sorted(status) {
		if req.RequesterEmail == email {
			out = append(out, req)
		}
	}
	return out, nil
}

func (s *fakeRequestStore) ListRecentByRequester(email string, n int) ([]models.DonationRequest, error) {
	all, _ := s.ListByRequester(email, "")
	if len(all) > n {
		all = all[:n]
	}
	return all, nil
}

func (s *fakeRequestStore) apply(req *models.DonationRequest, fields map[string]interface{}) {
	for col, val := range fields {
		switch col {
		case "status":
			req.Status = val.(string)
		case "donor_name":
			if val == nil {
				req.DonorName = nil
			} else {
				v := val.(string)
				req.DonorName = &v
			}
		case "donor_email":
			if val == nil {
				req.DonorEmail = nil
			} else {
				v := val.(string)
				req.DonorEmail = &v
			}
		case "hospital_name":
			req.HospitalName = val.(string)
		case "blood_group":
			req.BloodGroup = val.(string)
		case "updated_at":
			req.UpdatedAt = val.(time.Time)
		}
	}
}

func (s *fakeRequestStore) UpdateFields(id uuid.UUID, fields map[string]interface{}) (bool, error) {
	req, ok := s.requests[id]
	if !ok {
		return false, nil
	}
	s.apply(req, fields)
	return true, nil
}

func (s *fakeRequestStore) UpdateStatusFrom(id uuid.UUID, expected string, fields map[string]interface{}) (bool, error) {
	req, ok := s.requests[id]
	if !ok || req.Status != expected {
		return false, nil
	}
	s.apply(req, fields)
	return true, nil
}

func (s *fakeRequestStore) Exists(id uuid.UUID) (bool, error) {
	_, ok := s.requests[id]
	return ok, nil
}

func (s *fakeRequestStore) Delete(id uuid.UUID) (bool, error) {
	if _, ok := s.requests[id]; !ok {
		return false, nil
	}
	delete(s.requests, id)
	return true, nil
}

func (s *fakeRequestStore) Count() (int64, error) {
	return int64(len(s.requests)), nil
}

func createRequest(t *testing.T, svc *RequestService) *models.DonationRequest {
	t.Helper()
	req, err := svc.Create(&dto.CreateDonationRequest{
		RequesterName:  "Rahim Uddin",
		RequesterEmail: "rahim@example.com",
		RecipientName:  "Karim",
		HospitalName:   "Dhaka Medical College",
		BloodGroup:     "A+",
		DonationDate:   "2026-09-15",
		DonationTime:   "10:30",
	})
	require.NoError(t, err)
	return req
}

func TestCreateRequestStartsPending(t *testing.T) {
	svc := NewRequestService(newFakeRequestStore())

	req := createRequest(t, svc)

	assert.Equal(t, models.StatusPending, req.Status)
	assert.Nil(t, req.DonorName)
	assert.Nil(t, req.DonorEmail)
}

func TestCreateRequestMissingFields(t *testing.T) {
	svc := NewRequestService(newFakeRequestStore())

	_, err := svc.Create(&dto.CreateDonationRequest{RequesterEmail: "rahim@example.com"})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestConfirmDonationRequiresDonorInfo(t *testing.T) {
	svc := NewRequestService(newFakeRequestStore())
	req := createRequest(t, svc)

	err := svc.ConfirmDonation(req.ID, "", "")
	assert.ErrorIs(t, err, ErrMissingDonorInfo)

	got, err := svc.Get(req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestConfirmDonationAssignsDonor(t *testing.T) {
	svc := NewRequestService(newFakeRequestStore())
	req := createRequest(t, svc)

	err := svc.ConfirmDonation(req.ID, "Salma Akter", "salma@example.com")
	require.NoError(t, err)

	got, err := svc.Get(req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, got.Status)
	require.NotNil(t, got.DonorName)
	require.NotNil(t, got.DonorEmail)
	assert.Equal(t, "Salma Akter", *got.DonorName)
	assert.Equal(t, "salma@example.com", *got.DonorEmail)
}

func TestConfirmDonationOnlyWhilePending(t *testing.T) {
	svc := NewRequestService(newFakeRequestStore())
	req := createRequest(t, svc)

	require.NoError(t, svc.ConfirmDonation(req.ID, "Salma Akter", "salma@example.com"))

	err := svc.ConfirmDonation(req.ID, "Other Donor", "other@example.com")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransitionInProgressCannotReturnToPending(t *testing.T) {
	svc := NewRequestService(newFakeRequestStore())
	req := createRequest(t, svc)
	require.NoError(t, svc.ConfirmDonation(req.ID, "Salma Akter", "salma@example.com"))

	err := svc.Transition(req.ID, models.StatusPending, "", "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransitionDoneClearsDonorFields(t *testing.T) {
	for _, target := range []string{models.StatusDone, models.StatusCanceled} {
		t.Run(target, func(t *testing.T) {
			svc := NewRequestService(newFakeRequestStore())
			req := createRequest(t, svc)
			require.NoError(t, svc.ConfirmDonation(req.ID, "Salma Akter", "salma@example.com"))

			require.NoError(t, svc.Transition(req.ID, target, "", ""))

			got, err := svc.Get(req.ID)
			require.NoError(t, err)
			assert.Equal(t, target, got.Status)
			assert.Nil(t, got.DonorName)
			assert.Nil(t, got.DonorEmail)
		})
	}
}

func TestTransitionPendingCanCancelDirectly(t *testing.T) {
	svc := NewRequestService(newFakeRequestStore())
	req := createRequest(t, svc)

	require.NoError(t, svc.Transition(req.ID, models.StatusCanceled, "", ""))

	got, err := svc.Get(req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCanceled, got.Status)
}

func TestTransitionToInProgressRequiresDonorInfo(t *testing.T) {
	svc := NewRequestService(newFakeRequestStore())
	req := createRequest(t, svc)

	err := svc.Transition(req.ID, models.StatusInProgress, "Salma Akter", "")
	assert.ErrorIs(t, err, ErrMissingDonorInfo)

	err = svc.Transition(req.ID, models.StatusInProgress, "Salma Akter", "salma@example.com")
	require.NoError(t, err)

	got, err := svc.Get(req.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DonorEmail)
	assert.Equal(t, "salma@example.com", *got.DonorEmail)
}

func TestTransitionUnknownStatusRejected(t *testing.T) {
	svc := NewRequestService(newFakeRequestStore())
	req := createRequest(t, svc)

	err := svc.Transition(req.ID, "archived", "", "")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestTransitionUnknownRequest(t *testing.T) {
	svc := NewRequestService(newFakeRequestStore())

	err := svc.Transition(uuid.New(), models.StatusDone, "", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

type racingRequestStore struct {
	*fakeRequestStore
	flipOnce bool
}

// UpdateStatusFrom simulates a concurrent writer that changed the status
// between the service's read and its conditional write.
func (s *racingRequestStore) UpdateStatusFrom(id uuid.UUID, expected string, fields map[string]interface{}) (bool, error) {
	if s.flipOnce {
		s.flipOnce = false
		if req, ok := s.requests[id]; ok {
			req.Status = models.StatusDone
		}
	}
	return s.fakeRequestStore.UpdateStatusFrom(id, expected, fields)
}

func TestTransitionConcurrentStatusChange(t *testing.T) {
	store := &racingRequestStore{fakeRequestStore: newFakeRequestStore(), flipOnce: true}
	svc := NewRequestService(store)
	req := createRequest(t, svc)

	err := svc.Transition(req.ID, models.StatusCanceled, "", "")
	assert.ErrorIs(t, err, ErrStatusConflict)

	got, getErr := svc.Get(req.ID)
	require.NoError(t, getErr)
	assert.Equal(t, models.StatusDone, got.Status)
}

func TestListPagination(t *testing.T) {
	store := newFakeRequestStore()
	svc := NewRequestService(store)

	base := time.Now()
	for i := 0; i < 25; i++ {
		id := uuid.New()
		store.requests[id] = &models.DonationRequest{
			ID:             id,
			RequesterEmail: fmt.Sprintf("user%d@example.com", i),
			BloodGroup:     "B+",
			Status:         models.StatusPending,
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		}
	}

	items, pg, err := svc.List("", 3, 10)
	require.NoError(t, err)
	assert.Len(t, items, 5)
	assert.Equal(t, int64(25), pg.Total)
	assert.Equal(t, int64(3), pg.TotalPages)
	assert.Equal(t, 3, pg.Page)

	// Newest first: page 1 starts with the most recently created request.
	firstPage, _, err := svc.List("", 1, 10)
	require.NoError(t, err)
	require.Len(t, firstPage, 10)
	assert.Equal(t, "user24@example.com", firstPage[0].RequesterEmail)
	assert.True(t, firstPage[0].CreatedAt.After(firstPage[9].CreatedAt))
}

func TestListClampsPageAndLimit(t *testing.T) {
	svc := NewRequestService(newFakeRequestStore())
	createRequest(t, svc)

	items, pg, err := svc.List("all", 0, -5)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, pg.Page)
	assert.Equal(t, 10, pg.Limit)
	assert.Equal(t, int64(1), pg.TotalPages)
}

func TestListAllNormalizesStatus(t *testing.T) {
	store := newFakeRequestStore()
	svc := NewRequestService(store)
	req := createRequest(t, svc)
	require.NoError(t, svc.ConfirmDonation(req.ID, "Salma Akter", "salma@example.com"))
	createRequest(t, svc)

	inProgress, err := svc.ListAll("InProgress")
	require.NoError(t, err)
	assert.Len(t, inProgress, 1)

	all, err := svc.ListAll("all")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestEditIgnoresStatusAndDonorFields(t *testing.T) {
	svc := NewRequestService(newFakeRequestStore())
	req := createRequest(t, svc)

	hospital := "Chittagong General"
	modified, err := svc.Edit(req.ID, &dto.EditDonationRequest{HospitalName: &hospital})
	require.NoError(t, err)
	assert.Equal(t, int64(1), modified)

	got, err := svc.Get(req.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chittagong General", got.HospitalName)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Nil(t, got.DonorName)
}

func TestEditEmptyBodyRejected(t *testing.T) {
	svc := NewRequestService(newFakeRequestStore())
	req := createRequest(t, svc)

	_, err := svc.Edit(req.ID, &dto.EditDonationRequest{})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestDeleteUnknownRequest(t *testing.T) {
	svc := NewRequestService(newFakeRequestStore())

	err := svc.Delete(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
