package checks

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"roll-checker/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// StructureReport describes the bucket layout.
type StructureReport struct {
	Bucket       string   `json:"bucket"`
	BucketExists bool     `json:"bucket_exists"`
	Missing      []string `json:"missing"`
}

// OK reports whether nothing needs fixing.
func (r *StructureReport) OK() bool {
	return r.BucketExists && len(r.Missing) == 0
}

func folderKey(folder string) string {
	folder = strings.Trim(folder, "/")
	return folder + "/"
}

// CheckStructure verifies the bucket exists and every folder holds at least one object.
// A missing bucket reports every folder as missing.
func CheckStructure(ctx context.Context, client storage.Client, bucket string, folders []string) (*StructureReport, error) {
	report := &StructureReport{Bucket: bucket, Missing: []string{}}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.BucketExists = exists

	for _, folder := range folders {
		if strings.Trim(folder, "/") == "" {
			continue
		}
		if !exists {
			report.Missing = append(report.Missing, folder)
			continue
		}

		opts := minio.ListObjectsOptions{
			Prefix:  folderKey(folder),
			MaxKeys: 1,
		}

		found := false
		for obj := range client.ListObjects(ctx, bucket, opts) {
			if obj.Err != nil {
				return nil, fmt.Errorf("failed to list %s: %w", folder, obj.Err)
			}
			found = true
			break
		}
		if !found {
			report.Missing = append(report.Missing, folder)
		}
	}

	return report, nil
}

// FixStructure creates the bucket when absent, then a marker object for each missing folder.
func FixStructure(ctx context.Context, client storage.Client, report *StructureReport, logger *zap.Logger) error {
	if !report.BucketExists {
		if err := client.MakeBucket(ctx, report.Bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", report.Bucket, err)
		}
		logger.Info("Created bucket", zap.String("bucket", report.Bucket))
		report.BucketExists = true
	}

	for _, folder := range report.Missing {
		_, err := client.PutObject(ctx, report.Bucket, folderKey(folder), bytes.NewReader(nil), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", folder), zap.Error(err))
			return fmt.Errorf("failed to create folder %s: %w", folder, err)
		}
		logger.Info("Created missing folder", zap.String("folder", folder))
	}
	report.Missing = []string{}
	return nil
}
