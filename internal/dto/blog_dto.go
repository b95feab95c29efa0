package dto

type CreateBlogRequest struct {
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Content      string `json:"content"`
}

// UpdateBlogRequest is the allow-list for blog edits. Omitted fields stay
// untouched; status moves only through its own endpoint.
type UpdateBlogRequest struct {
	Title        *string `json:"title"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	Content      *string `json:"content"`
}

func (r *UpdateBlogRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.ThumbnailURL != nil {
		fields["thumbnail_url"] = *r.ThumbnailURL
	}
	if r.Content != nil {
		fields["content"] = *r.Content
	}
	return fields
}

type SetBlogStatusRequest struct {
	Status string `json:"status"`
}
