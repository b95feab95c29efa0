package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
)

// Blog is a content post. Created as draft, toggled to published by staff.
type Blog struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title        string    `gorm:"size:200;not null" json:"title"`
	ThumbnailURL string    `gorm:"size:500;not null" json:"thumbnailUrl"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	Status       string    `gorm:"size:20;default:'draft';index" json:"status"`
	CreatedAt    time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func ValidBlogStatus(status string) bool {
	return status == BlogStatusDraft || status == BlogStatusPublished
}
