package models

import (
	"time"

	"github.com/google/uuid"
)

// Donation request statuses. A request starts as pending; inprogress is the
// only state with an exit restriction (done or canceled only).
const (
	StatusPending    = "pending"
	StatusInProgress = "inprogress"
	StatusDone       = "done"
	StatusCanceled   = "canceled"
)

// DonationRequest is a request for blood posted by a member. Donor fields are
// set only while the request is inprogress and cleared on any other status.
type DonationRequest struct {
	ID                uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RequesterName     string    `gorm:"size:120" json:"requesterName"`
	RequesterEmail    string    `gorm:"size:255;not null;index" json:"requesterEmail"`
	RecipientName     string    `gorm:"size:120" json:"recipientName"`
	RecipientDistrict string    `gorm:"size:80" json:"recipientDistrict"`
	RecipientUpazila  string    `gorm:"size:80" json:"recipientUpazila"`
	HospitalName      string    `gorm:"size:200" json:"hospitalName"`
	FullAddress       string    `gorm:"size:500" json:"fullAddress"`
	BloodGroup        string    `gorm:"size:5;not null;index" json:"bloodGroup"`
	DonationDate      string    `gorm:"size:20" json:"donationDate"`
	DonationTime      string    `gorm:"size:20" json:"donationTime"`
	RequestMessage    string    `gorm:"type:text" json:"requestMessage"`
	Status            string    `gorm:"size:20;default:'pending';index" json:"status"`
	DonorName         *string   `gorm:"size:120" json:"donorName,omitempty"`
	DonorEmail        *string   `gorm:"size:255" json:"donorEmail,omitempty"`
	CreatedAt         time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func ValidRequestStatus(status string) bool {
	switch status {
	case StatusPending, StatusInProgress, StatusDone, StatusCanceled:
		return true
	}
	return false
}
