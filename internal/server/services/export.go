package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}

	now = time.Now
)

// ExportResult points at an uploaded snapshot.
type ExportResult struct {
	URL       string
	Key       string
	Count     int
	ExpiresAt time.Time
}

type exportedApplication struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"company_name"`
	URL         string    `json:"url"`
	Status      string    `json:"status"`
	DateApplied time.Time `json:"date_applied"`
	CreatedAt   time.Time `json:"created_at"`
}

type exportSnapshot struct {
	ExportedAt   time.Time             `json:"exported_at"`
	Applications []exportedApplication `json:"applications"`
}

// ExportStorageKey returns the object key of a new snapshot for userID.
func ExportStorageKey(userID string, at time.Time) string {
	return fmt.Sprintf("exports/%s/%d/%02d/%02d/%v.json", userID, at.Year(), at.Month(), at.Day(), uuid.New())
}

func (s *ApplicationService) getS3Clients(ctx context.Context) (*s3.Client, *s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return client, newS3PresignClient(client), nil
}

// Export writes a JSON snapshot of the user's applications to object
// storage and returns a presigned GET link valid for
// ExportURLValidityDuration.
func (s *ApplicationService) Export(ctx context.Context, userID string) (*ExportResult, error) {
	apps, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	at := now().UTC()
	snap := exportSnapshot{ExportedAt: at, Applications: make([]exportedApplication, 0, len(apps))}
	for _, a := range apps {
		snap.Applications = append(snap.Applications, exportedApplication{
			ID:          a.ID,
			CompanyName: a.CompanyName,
			URL:         a.URL,
			Status:      string(a.Status),
			DateApplied: a.DateApplied,
			CreatedAt:   a.CreatedAt,
		})
	}
	body, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding export: %w", err)
	}

	client, presignClient, err := s.getS3Clients(ctx)
	if err != nil {
		return nil, err
	}

	bucket := s.config.S3Bucket
	key := ExportStorageKey(userID, at)

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("error uploading export: %w", err)
	}

	ttl := s.config.ExportURLValidityDuration
	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return nil, fmt.Errorf("error presigning export: %w", err)
	}

	return &ExportResult{URL: req.URL, Key: key, Count: len(apps), ExpiresAt: at.Add(ttl)}, nil
}
