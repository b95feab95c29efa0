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

// BlogService handles blog CRUD and the publish toggle.
type BlogService struct {
	blogs BlogStore
}

func NewBlogService(blogs BlogStore) *BlogService {
	return &BlogService{blogs: blogs}
}

// Create stores a new blog post in draft status.
func (s *BlogService) Create(req *dto.CreateBlogRequest) (*models.Blog, error) {
	if req.Title == "" || req.ThumbnailURL == "" || req.Content == "" {
		return nil, ErrMissingFields
	}

	blog := &models.Blog{
		ID:           uuid.New(),
		Title:        req.Title,
		ThumbnailURL: req.ThumbnailURL,
		Content:      req.Content,
		Status:       models.BlogStatusDraft,
	}

	if err := s.blogs.Create(blog); err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}
	return blog, nil
}

func (s *BlogService) Get(id uuid.UUID) (*models.Blog, error) {
	blog, err := s.blogs.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return blog, nil
}

func (s *BlogService) List(status string, page, limit int) ([]models.Blog, *Pagination, error) {
	if status == "all" {
		status = ""
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	items, total, err := s.blogs.List(status, page, limit)
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

// Update applies allow-listed blog fields; status is untouched here.
func (s *BlogService) Update(id uuid.UUID, req *dto.UpdateBlogRequest) error {
	fields := req.Fields()
	if len(fields) == 0 {
		return ErrMissingFields
	}
	fields["updated_at"] = time.Now()

	matched, err := s.blogs.UpdateFields(id, fields)
	if err != nil {
		return err
	}
	if !matched {
		return ErrNotFound
	}
	return nil
}

// SetStatus toggles a blog between draft and published.
func (s *BlogService) SetStatus(id uuid.UUID, status string) error {
	if !models.ValidBlogStatus(status) {
		return ErrInvalidStatus
	}
	matched, err := s.blogs.UpdateFields(id, map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if err != nil {
		return err
	}
	if !matched {
		return ErrNotFound
	}
	return nil
}

func (s *BlogService) Delete(id uuid.UUID) error {
	deleted, err := s.blogs.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
