package sources

import (
	"context"
	"fmt"
	"os"
	"strings"

	"roll-checker/core/listing"
	"roll-checker/core/reconcile"
)

// KindLocal identifies a local directory source.
const KindLocal = "local"

// Directory lists the files of a local folder. Subfolders are not traversed.
type Directory struct {
	Path      string
	Extension string
}

// NewDirectory creates a directory source keeping files that end in extension.
func NewDirectory(path, extension string) *Directory {
	return &Directory{Path: path, Extension: extension}
}

func (d *Directory) Kind() string     { return KindLocal }
func (d *Directory) Location() string { return d.Path }

// Load reads the directory entries.
func (d *Directory) Load(ctx context.Context) ([]reconcile.FileEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dirEntries, err := os.ReadDir(d.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", d.Path, err)
	}

	ext := listing.NormalizeExtension(d.Extension)
	entries := make([]reconcile.FileEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		if ext != "" && !strings.HasSuffix(strings.ToLower(de.Name()), ext) {
			continue
		}

		info, err := de.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		entries = append(entries, reconcile.FileEntry{Name: de.Name(), SizeBytes: info.Size()})
	}
	return entries, nil
}
