package sources

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"roll-checker/core/listing"
	"roll-checker/core/reconcile"
	"roll-checker/core/storage"

	"github.com/minio/minio-go/v7"
)

// KindSnapshot identifies a captured snapshot source.
const KindSnapshot = "snapshot"

// Snapshot extracts files from a captured listing page.
type Snapshot struct {
	location  string
	extension string
	open      func(ctx context.Context) (io.ReadCloser, error)
}

// NewSnapshotFile reads the snapshot from a local file.
func NewSnapshotFile(filePath, extension string) *Snapshot {
	return &Snapshot{
		location:  filePath,
		extension: extension,
		open: func(context.Context) (io.ReadCloser, error) {
			return os.Open(filePath)
		},
	}
}

// NewSnapshotObject reads the snapshot from an object in the bucket.
func NewSnapshotObject(client storage.Client, bucket, key, extension string) *Snapshot {
	return &Snapshot{
		location:  bucket + "/" + key,
		extension: extension,
		open: func(ctx context.Context) (io.ReadCloser, error) {
			return client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
		},
	}
}

// NewSnapshotBytes uses an in-memory snapshot, as posted to the HTTP API.
func NewSnapshotBytes(data []byte, extension string) *Snapshot {
	return &Snapshot{
		location:  "inline",
		extension: extension,
		open: func(context.Context) (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

func (s *Snapshot) Kind() string     { return KindSnapshot }
func (s *Snapshot) Location() string { return s.location }

// Load opens the snapshot, parses it and runs the extraction strategies.
func (s *Snapshot) Load(ctx context.Context) ([]reconcile.FileEntry, error) {
	rc, err := s.open(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot %s: %w", s.location, err)
	}
	defer rc.Close()

	snap, err := ReadSnapshot(rc)
	if err != nil {
		return nil, err
	}
	return listing.Extract(snap, s.extension), nil
}

// ReadSnapshot decodes a snapshot. Input starting with '{' is the JSON form of
// listing.Snapshot; anything else is treated as captured HTML.
func ReadSnapshot(r io.Reader) (*listing.Snapshot, error) {
	br := bufio.NewReader(r)

	first, err := firstNonSpace(br)
	if err == io.EOF {
		return &listing.Snapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	if first == '{' {
		var snap listing.Snapshot
		if err := json.NewDecoder(br).Decode(&snap); err != nil {
			return nil, fmt.Errorf("failed to decode snapshot: %w", err)
		}
		return &snap, nil
	}
	return listing.ParseHTML(br)
}

// firstNonSpace peeks the first non-whitespace byte without consuming it.
func firstNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n', 0xEF, 0xBB, 0xBF:
			continue
		}
		return b, br.UnreadByte()
	}
}
