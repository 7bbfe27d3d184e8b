package sources

import (
	"context"
	"fmt"
	"path"
	"strings"

	"roll-checker/core/listing"
	"roll-checker/core/reconcile"
	"roll-checker/core/storage"

	"github.com/minio/minio-go/v7"
)

// KindBucket identifies an object storage source.
const KindBucket = "bucket"

// Bucket lists every object under a prefix. The object key's base name is the file name.
type Bucket struct {
	client    storage.Client
	bucket    string
	prefix    string
	extension string
}

// NewBucket creates a bucket source.
func NewBucket(client storage.Client, bucket, prefix, extension string) *Bucket {
	prefix = strings.TrimPrefix(prefix, "/")
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &Bucket{client: client, bucket: bucket, prefix: prefix, extension: extension}
}

func (b *Bucket) Kind() string     { return KindBucket }
func (b *Bucket) Location() string { return b.bucket + "/" + b.prefix }

// CacheKey identifies the listing by bucket, prefix and extension.
func (b *Bucket) CacheKey() string {
	return KindBucket + ":" + b.bucket + "/" + b.prefix + "|" + listing.NormalizeExtension(b.extension)
}

// Load lists the prefix recursively.
func (b *Bucket) Load(ctx context.Context) ([]reconcile.FileEntry, error) {
	exists, err := b.client.BucketExists(ctx, b.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", b.bucket)
	}

	ext := listing.NormalizeExtension(b.extension)
	opts := minio.ListObjectsOptions{
		Prefix:    b.prefix,
		Recursive: true,
	}

	entries := make([]reconcile.FileEntry, 0)
	for obj := range b.client.ListObjects(ctx, b.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", b.Location(), obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}

		name := path.Base(obj.Key)
		if ext != "" && !strings.HasSuffix(strings.ToLower(name), ext) {
			continue
		}
		entries = append(entries, reconcile.FileEntry{Name: name, SizeBytes: obj.Size})
	}
	return entries, nil
}
