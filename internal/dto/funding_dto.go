package dto

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Amount decodes a JSON number or a numeric string into a float64, so a
// client sending `"amount": "25"` still stores a number.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*a = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			return err
		}
		*a = Amount(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*a = Amount(f)
	return nil
}

type CreateFundingRequest struct {
	Email         string     `json:"email"`
	Name          string     `json:"name"`
	Amount        Amount     `json:"amount"`
	TransactionID string     `json:"transactionId"`
	CreatedAt     *time.Time `json:"createdAt"`
}

type CreatePaymentIntentRequest struct {
	Amount Amount `json:"amount"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
