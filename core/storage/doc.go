// Package storage wraps the MinIO Go client behind a small interface.
//
// Roll buckets are listed with ListObjects, captured snapshots are read with
// GetObject, and audit reports are written with PutObject. The same client works
// against AWS S3 and self-hosted MinIO.
//
// The mocks subpackage provides a testify mock of Client for unit tests.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, "rolls")
package storage
