package models

import (
	"time"

	"github.com/google/uuid"
)

// Roles a user can hold. New registrations always start as donors.
const (
	RoleDonor     = "donor"
	RoleVolunteer = "volunteer"
	RoleAdmin     = "admin"
)

const (
	UserStatusActive  = "active"
	UserStatusBlocked = "blocked"
)

// User is a registered platform member, keyed by email.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email      string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Name       string    `gorm:"size:120;not null" json:"name"`
	BloodGroup string    `gorm:"size:5;not null;index" json:"bloodGroup"`
	District   string    `gorm:"size:80;index" json:"district"`
	Upazila    string    `gorm:"size:80;index" json:"upazila"`
	Avatar     string    `gorm:"size:500" json:"avatar"`
	Role       string    `gorm:"size:20;default:'donor';index" json:"role"`
	Status     string    `gorm:"size:20;default:'active';index" json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleDonor, RoleVolunteer, RoleAdmin:
		return true
	}
	return false
}

func ValidUserStatus(status string) bool {
	return status == UserStatusActive || status == UserStatusBlocked
}
