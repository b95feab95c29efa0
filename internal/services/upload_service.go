package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/bloodlink/bloodlink-backend/internal/dto"
	"github.com/google/uuid"
)

const presignExpiry = 15 * time.Minute

var uploadKinds = map[string]bool{
	"avatar":    true,
	"thumbnail": true,
}

var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

// Presigner is the slice of the S3 presign client the service needs.
type Presigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4PresignedRequest, error)
}

// v4PresignedRequest mirrors the fields used from the SDK's presigned
// request type.
type v4PresignedRequest struct {
	URL string
}

type s3Presigner struct {
	client *s3.PresignClient
}

func (p s3Presigner) PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4PresignedRequest, error) {
	req, err := p.client.PresignPutObject(ctx, params, optFns...)
	if err != nil {
		return nil, err
	}
	return &v4PresignedRequest{URL: req.URL}, nil
}

// UploadService hands out presigned S3 PUT URLs for avatar and blog
// thumbnail images. The API itself only ever stores the resulting URL.
type UploadService struct {
	presigner Presigner
	bucket    string
	region    string
}

func NewUploadService(bucket, region string) (*UploadService, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg)
	return &UploadService{
		presigner: s3Presigner{client: s3.NewPresignClient(client)},
		bucket:    bucket,
		region:    region,
	}, nil
}

// NewUploadServiceWithPresigner is used by tests to swap the S3 client.
func NewUploadServiceWithPresigner(presigner Presigner, bucket, region string) *UploadService {
	return &UploadService{presigner: presigner, bucket: bucket, region: region}
}

// PresignImageUpload returns a time-limited PUT URL plus the public object
// URL the client should store after uploading.
func (s *UploadService) PresignImageUpload(kind, contentType string) (*dto.PresignResponse, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if !uploadKinds[kind] {
		return nil, ErrMissingFields
	}
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, fmt.Errorf("unsupported content type %q: %w", contentType, ErrMissingFields)
	}

	key := fmt.Sprintf("%s/%s-%d%s", kind, uuid.New().String(), time.Now().Unix(), ext)

	req, err := s.presigner.PresignPutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return nil, fmt.Errorf("presign upload: %w", err)
	}

	return &dto.PresignResponse{
		UploadURL: req.URL,
		PublicURL: fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key),
		Key:       key,
	}, nil
}
