package reconcile

import "context"

// Source acquires the list of present files for an audit.
// Acquisition is the only blocking step of an audit; Load must honour ctx.
type Source interface {
	// Kind returns the source type (e.g., "local", "bucket", "snapshot", "remote").
	Kind() string

	// Location describes what is being listed (directory path, bucket prefix, URL).
	Location() string

	// Load returns the observed files. Implementations should not retry.
	Load(ctx context.Context) ([]FileEntry, error)
}

// Cacheable is implemented by sources whose listing may be reused for a while.
type Cacheable interface {
	// CacheKey returns a key identifying the listing, unique per location and filter.
	CacheKey() string
}
