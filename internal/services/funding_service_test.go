package services

import (
	"errors"
	"testing"
	"time"

	"github.com/bloodlink/bloodlink-backend/internal/dto"
	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81"
)

type fakeFundingStore struct {
	fundings map[uuid.UUID]*models.Funding
}

func newFakeFundingStore() *fakeFundingStore {
	return &fakeFundingStore{fundings: make(map[uuid.UUID]*models.Funding)}
}

func (s *fakeFundingStore) Create(funding *models.Funding) error {
	if funding.CreatedAt.IsZero() {
		funding.CreatedAt = time.Now()
	}
	cp := *funding
	s.fundings[funding.ID] = &cp
	return nil
}

func (s *fakeFundingStore) List() ([]models.Funding, error) {
	var out []models.Funding
	for _, f := range s.fundings {
		out = append(out, *f)
	}
	return out, nil
}

func (s *fakeFundingStore) ListByEmail(email string) ([]models.Funding, error) {
	var out []models.Funding
	for _, f := range s.fundings {
		if f.Email == email {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (s *fakeFundingStore) Delete(id uuid.UUID) (bool, error) {
	if _, ok := s.fundings[id]; !ok {
		return false, nil
	}
	delete(s.fundings, id)
	return true, nil
}

func (s *fakeFundingStore) TotalAmount() (float64, error) {
	var total float64
	for _, f := range s.fundings {
		total += f.Amount
	}
	return total, nil
}

func TestRecordFundingValidation(t *testing.T) {
	svc := NewFundingService(newFakeFundingStore())

	_, err := svc.Record(&dto.CreateFundingRequest{Amount: 25})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Record(&dto.CreateFundingRequest{Email: "rahim@example.com", Amount: 0})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Record(&dto.CreateFundingRequest{Email: "rahim@example.com", Amount: -5})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestRecordFundingStoresGatewayMetadata(t *testing.T) {
	store := newFakeFundingStore()
	svc := NewFundingService(store)

	funding, err := svc.Record(&dto.CreateFundingRequest{
		Email:         "rahim@example.com",
		Name:          "Rahim Uddin",
		Amount:        25.5,
		TransactionID: "pi_123",
	})
	require.NoError(t, err)
	assert.Equal(t, 25.5, funding.Amount)
	assert.JSONEq(t, `{"provider":"stripe","intent":"pi_123"}`, string(funding.Gateway))

	total, err := svc.Total()
	require.NoError(t, err)
	assert.Equal(t, 25.5, total)
}

func TestFundingListByEmail(t *testing.T) {
	svc := NewFundingService(newFakeFundingStore())

	_, err := svc.Record(&dto.CreateFundingRequest{Email: "rahim@example.com", Amount: 10})
	require.NoError(t, err)
	_, err = svc.Record(&dto.CreateFundingRequest{Email: "salma@example.com", Amount: 20})
	require.NoError(t, err)

	mine, err := svc.ListByEmail("rahim@example.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, float64(10), mine[0].Amount)
}

func TestFundingDeleteUnknown(t *testing.T) {
	svc := NewFundingService(newFakeFundingStore())

	assert.ErrorIs(t, svc.Delete(uuid.New()), ErrNotFound)
}

type fakeIntentCreator struct {
	lastParams *stripe.PaymentIntentParams
	err        error
}

func (f *fakeIntentCreator) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	f.lastParams = params
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.PaymentIntent{ClientSecret: "pi_123_secret_abc"}, nil
}

func TestCreateIntentConvertsToCents(t *testing.T) {
	creator := &fakeIntentCreator{}
	svc := NewPaymentServiceWithCreator(creator)

	secret, err := svc.CreateIntent(25.5)
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret_abc", secret)

	require.NotNil(t, creator.lastParams)
	assert.Equal(t, int64(2550), *creator.lastParams.Amount)
	assert.Equal(t, string(stripe.CurrencyUSD), *creator.lastParams.Currency)
}

func TestCreateIntentRejectsNonPositiveAmount(t *testing.T) {
	svc := NewPaymentServiceWithCreator(&fakeIntentCreator{})

	_, err := svc.CreateIntent(0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestCreateIntentPropagatesStripeError(t *testing.T) {
	svc := NewPaymentServiceWithCreator(&fakeIntentCreator{err: errors.New("stripe unavailable")})

	_, err := svc.CreateIntent(10)
	assert.ErrorContains(t, err, "stripe unavailable")
}
