package utils

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Archiver uploads drink photos to S3 so history entries can link back to
// the original image.
type S3Archiver struct {
	client *s3.Client
	bucket string
	cfURL  string
}

// NewS3Archiver returns nil when S3_BUCKET is not set; photo archival is
// optional and the pipeline tolerates its absence.
func NewS3Archiver() (*S3Archiver, error) {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		return nil, nil
	}

	region := os.Getenv("S3_REGION")
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config for S3: %w", err)
	}

	return &S3Archiver{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		cfURL:  os.Getenv("CLOUDFRONT_URL"),
	}, nil
}

func (a *S3Archiver) Upload(ctx context.Context, image []byte, userID string) (string, error) {
	contentType := http.DetectContentType(image)
	ext := ".jpg"
	switch contentType {
	case "image/png":
		ext = ".png"
	case "image/gif":
		ext = ".gif"
	case "image/webp":
		ext = ".webp"
	}

	key := fmt.Sprintf("drink-uploads/%s-%d%s", userID, time.Now().UnixNano(), ext)

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(image),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	if a.cfURL != "" {
		return fmt.Sprintf("%s/%s", a.cfURL, key), nil
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", a.bucket, key), nil
}
