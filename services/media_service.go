package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// MediaService hands out short-lived presigned S3 URLs for profile photos.
// The photos themselves never pass through this server.
type MediaService struct {
	Bucket    string
	Presigner *s3.PresignClient
}

const presignTTL = 5 * time.Minute

func NewMediaService() (*MediaService, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &MediaService{
		Bucket:    os.Getenv("S3_BUCKET_NAME"),
		Presigner: s3.NewPresignClient(s3.NewFromConfig(cfg)),
	}, nil
}

// UploadURL returns a presigned PUT URL plus the object key the client
// should store on its profile.
func (ms *MediaService) UploadURL(ctx context.Context, fileName, fileType string) (string, string, error) {
	key := "profile-photos/" + time.Now().Format("20060102150405") + "-" + fileName
	presigned, err := ms.Presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(ms.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return "", "", fmt.Errorf("failed to presign upload: %w", err)
	}
	return presigned.URL, key, nil
}

// ReadURL returns a presigned GET URL for a stored photo key.
func (ms *MediaService) ReadURL(ctx context.Context, key string) (string, error) {
	presigned, err := ms.Presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(ms.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return "", fmt.Errorf("failed to presign read: %w", err)
	}
	return presigned.URL, nil
}
