package report

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"roll-checker/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// FileName is the name of a saved report.
const FileName = "Audit_Report.txt"

// WriteLocal saves the report into dir and returns the file path.
func WriteLocal(dir, content string) (string, error) {
	target := filepath.Join(dir, FileName)
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return target, nil
}

// Uploader stores reports in the bucket.
type Uploader struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewUploader creates a report uploader writing under prefix.
func NewUploader(client storage.Client, bucket, prefix string, logger *zap.Logger) *Uploader {
	return &Uploader{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		logger: logger,
	}
}

// Key returns the object key of the report for a run.
func (u *Uploader) Key(runID string) string {
	return path.Join(u.prefix, runID, FileName)
}

// Upload stores the report of a run and returns its object key.
func (u *Uploader) Upload(ctx context.Context, runID, content string) (string, error) {
	key := u.Key(runID)

	_, err := u.client.PutObject(ctx, u.bucket, key, strings.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		u.logger.Error("Failed to upload report", zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("failed to upload report: %w", err)
	}

	u.logger.Info("Uploaded report", zap.String("key", key))
	return key, nil
}
