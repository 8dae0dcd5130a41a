package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Bucket names for the two image kinds. Overridden from the environment in
// NewS3Store.
var (
	AvatarBucket = "foodtracker-avatars"
	FoodBucket   = "foodtracker-food-images"
)

// S3Store serves uploaded images from S3, optionally fronted by CloudFront.
type S3Store struct {
	client *s3.Client
	region string
	cdnURL string
}

func NewS3Store() *S3Store {
	region := os.Getenv("S3_REGION")
	if region == "" {
		region = os.Getenv("AWS_REGION") // fallback
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		log.Fatalf("Unable to load AWS config for S3: %v", err)
	}

	if b := os.Getenv("AVATAR_BUCKET"); b != "" {
		AvatarBucket = b
	}
	if b := os.Getenv("FOOD_BUCKET"); b != "" {
		FoodBucket = b
	}

	return &S3Store{
		client: s3.NewFromConfig(cfg),
		region: region,
		cdnURL: os.Getenv("CLOUDFRONT_URL"),
	}
}

func (s *S3Store) Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}
	return nil
}

func (s *S3Store) PublicURL(bucket, key string) string {
	if s.cdnURL != "" {
		return fmt.Sprintf("%s/%s/%s", s.cdnURL, bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, s.region, key)
}

func (s *S3Store) Remove(ctx context.Context, bucket string, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	objects := make([]s3types.ObjectIdentifier, 0, len(keys))
	for _, k := range keys {
		objects = append(objects, s3types.ObjectIdentifier{Key: aws.String(k)})
	}
	_, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(bucket),
		Delete: &s3types.Delete{Objects: objects, Quiet: aws.Bool(true)},
	})
	if err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}
	return nil
}
