package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Funding records a monetary contribution tied to a payment-gateway
// transaction. Rows are immutable once written, except for deletion.
type Funding struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email         string         `gorm:"size:255;not null;index" json:"email"`
	Name          string         `gorm:"size:120" json:"name"`
	Amount        float64        `gorm:"not null" json:"amount"`
	TransactionID string         `gorm:"size:255;index" json:"transactionId"`
	Gateway       datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"gateway"`
	CreatedAt     time.Time      `gorm:"index" json:"createdAt"`
}
