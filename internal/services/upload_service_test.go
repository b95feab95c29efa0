package services

import (
	"context"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePresigner struct {
	lastInput *s3.PutObjectInput
}

func (f *fakePresigner) PresignPutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.PresignOptions)) (*v4PresignedRequest, error) {
	f.lastInput = params
	return &v4PresignedRequest{URL: "https://uploads.s3.amazonaws.com/" + *params.Key + "?sig=abc"}, nil
}

func TestPresignImageUpload(t *testing.T) {
	presigner := &fakePresigner{}
	svc := NewUploadServiceWithPresigner(presigner, "uploads", "us-east-1")

	resp, err := svc.PresignImageUpload("Avatar", "image/png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.Key, "avatar/"))
	assert.True(t, strings.HasSuffix(resp.Key, ".png"))
	assert.Contains(t, resp.UploadURL, resp.Key)
	assert.Equal(t, "https://uploads.s3.us-east-1.amazonaws.com/"+resp.Key, resp.PublicURL)

	require.NotNil(t, presigner.lastInput)
	assert.Equal(t, "uploads", *presigner.lastInput.Bucket)
	assert.Equal(t, "image/png", *presigner.lastInput.ContentType)
}

func TestPresignImageUploadRejectsBadInput(t *testing.T) {
	svc := NewUploadServiceWithPresigner(&fakePresigner{}, "uploads", "us-east-1")

	_, err := svc.PresignImageUpload("document", "image/png")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.PresignImageUpload("avatar", "application/pdf")
	assert.ErrorIs(t, err, ErrMissingFields)
}
