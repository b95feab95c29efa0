package services

import (
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

// IntentCreator is the slice of the Stripe client the service needs.
type IntentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type stripeIntentCreator struct{}

func (stripeIntentCreator) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	return paymentintent.New(params)
}

// PaymentService creates Stripe payment intents; the funding record is
// written separately once the client confirms the payment.
type PaymentService struct {
	intents IntentCreator
}

func NewPaymentService(secretKey string) *PaymentService {
	stripe.Key = secretKey
	return &PaymentService{intents: stripeIntentCreator{}}
}

// NewPaymentServiceWithCreator is used by tests to swap the Stripe client.
func NewPaymentServiceWithCreator(intents IntentCreator) *PaymentService {
	return &PaymentService{intents: intents}
}

// CreateIntent creates a card payment intent for the given dollar amount and
// returns the client secret.
func (s *PaymentService) CreateIntent(amount float64) (string, error) {
	if amount <= 0 {
		return "", ErrInvalidAmount
	}

	cents := int64(math.Round(amount * 100))
	intent, err := s.intents.New(&stripe.PaymentIntentParams{
		Amount:             stripe.Int64(cents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	})
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
