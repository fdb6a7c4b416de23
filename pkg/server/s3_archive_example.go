//go:build s3example
// +build s3example

// This file provides an example S3 report archiver.
// It is excluded from regular builds because it requires the AWS SDK.
//
// To use this in your project, copy this file and add the AWS SDK:
//   go get github.com/aws/aws-sdk-go-v2
//   go get github.com/aws/aws-sdk-go-v2/config
//   go get github.com/aws/aws-sdk-go-v2/service/s3

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/bindkit-dev/bindkit/pkg/bind"
)

// S3ReportArchiver persists session binding reports to AWS S3, one
// JSON object per session. Useful for auditing which documents bound
// cleanly in production.
//
// Example usage:
//
//	cfg, _ := config.LoadDefaultConfig(context.Background())
//	s3Client := s3.NewFromConfig(cfg)
//	archiver := server.NewS3ReportArchiver(s3Client, "my-bucket", "bindkit/reports/")
//
//	archiver.Archive(context.Background(), sess.ID, sess.Report())
type S3ReportArchiver struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3ReportArchiver creates an archiver writing under the given key
// prefix (e.g., "bindkit/reports/").
func NewS3ReportArchiver(client *s3.Client, bucket, prefix string) *S3ReportArchiver {
	return &S3ReportArchiver{client: client, bucket: bucket, prefix: prefix}
}

type archivedReport struct {
	Session   string    `json:"session"`
	Timestamp time.Time `json:"timestamp"`
	Elements  int       `json:"elements"`
	Bound     int       `json:"bound"`
	Listeners int       `json:"listeners"`
	Errors    []string  `json:"errors,omitempty"`
}

// Archive uploads one session's binding report.
func (a *S3ReportArchiver) Archive(ctx context.Context, sessionID string, report bind.Report) error {
	rec := archivedReport{
		Session:   sessionID,
		Timestamp: time.Now().UTC(),
		Elements:  report.Elements,
		Bound:     report.Bound,
		Listeners: report.Listeners,
	}
	for _, err := range report.Errors {
		rec.Errors = append(rec.Errors, err.Error())
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	key := fmt.Sprintf("%s%s-%d.json", a.prefix, sessionID, rec.Timestamp.Unix())
	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("s3 upload failed: %w", err)
	}
	return nil
}

// ListKeys returns archived report keys older than maxAge, for pruning.
func (a *S3ReportArchiver) ListKeys(ctx context.Context, maxAge time.Duration) ([]string, error) {
	cutoff := time.Now().Add(-maxAge)

	paginator := s3.NewListObjectsV2Paginator(a.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(a.bucket),
		Prefix: aws.String(a.prefix),
	})

	var keys []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			if obj.LastModified != nil && obj.LastModified.Before(cutoff) && obj.Key != nil {
				keys = append(keys, *obj.Key)
			}
		}
	}
	return keys, nil
}
