package dto

type PresignRequest struct {
	Kind        string `json:"kind"`
	ContentType string `json:"contentType"`
}

type PresignResponse struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
	Key       string `json:"key"`
}
