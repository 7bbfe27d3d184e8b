package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Audit acquires the file list from spec.Source and reconciles it.
//
// Configuration errors (range, missing matcher or source) are reported before any
// acquisition. A failed or timed-out acquisition is returned as a *SnapshotError and
// no partial result is produced. Audit never retries.
func Audit(ctx context.Context, spec *Spec) (*Outcome, error) {
	if spec.Source == nil {
		return nil, errors.New("audit source is required")
	}
	if spec.Matcher == nil {
		return nil, fmt.Errorf("%w: no matcher configured", ErrInvalidTemplate)
	}
	if err := spec.Range.Validate(); err != nil {
		return nil, err
	}

	startedAt := time.Now()

	entries, err := acquire(ctx, spec)
	if err != nil {
		var snapErr *SnapshotError
		if errors.As(err, &snapErr) {
			return nil, snapErr
		}
		return nil, &SnapshotError{Source: spec.Source.Kind(), Err: err}
	}

	result, err := Reconcile(entries, spec.Matcher, spec.Range, spec.Ignore, spec.SizeCeilingBytes)
	if err != nil {
		return nil, err
	}

	return &Outcome{
		ID:        uuid.NewString(),
		Source:    spec.Source.Kind(),
		Location:  spec.Source.Location(),
		Scanned:   len(entries),
		NoMatches: len(entries) == 0,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Result:    result,
	}, nil
}

// acquire loads the entries under the spec timeout, through the cache when enabled.
func acquire(ctx context.Context, spec *Spec) ([]FileEntry, error) {
	if spec.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, spec.Timeout)
		defer cancel()
	}

	load := spec.Source.Load
	if c, ok := spec.Source.(Cacheable); ok && spec.CacheTTL > 0 {
		key := c.CacheKey()
		load = func(ctx context.Context) ([]FileEntry, error) {
			return GetOrLoad(ctx, key, spec.CacheTTL, spec.Source.Load)
		}
	}

	type loaded struct {
		entries []FileEntry
		err     error
	}
	done := make(chan loaded, 1)
	go func() {
		entries, err := load(ctx)
		done <- loaded{entries, err}
	}()

	// Sources are expected to honour ctx, but the deadline is enforced here regardless.
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		if res.err != nil {
			return nil, res.err
		}
		return res.entries, nil
	}
}
