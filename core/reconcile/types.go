package reconcile

import (
	"fmt"
	"math"
	"time"
)

// MaxRangeSize is the largest range Reconcile accepts. Every identifier of the
// range is visited and may end up in the missing list.
const MaxRangeSize = 1_000_000

// FileEntry is a single observed file: its name and byte size.
type FileEntry struct {
	// Name is the file name without any directory component.
	Name string `json:"name"`
	// SizeBytes is the file size in bytes. Zero when unknown.
	SizeBytes int64 `json:"size_bytes"`
}

// Range is the inclusive range of expected identifiers.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Validate checks that Start <= End and that the range holds at most MaxRangeSize identifiers.
func (r Range) Validate() error {
	return r.ValidateMax(MaxRangeSize)
}

// ValidateMax checks that Start <= End and that the range holds at most limit identifiers.
// A limit <= 0 or above MaxRangeSize is treated as MaxRangeSize.
func (r Range) ValidateMax(limit int) error {
	if r.Start > r.End {
		return fmt.Errorf("%w: start %d is greater than end %d", ErrInvalidRange, r.Start, r.End)
	}
	if limit <= 0 || limit > MaxRangeSize {
		limit = MaxRangeSize
	}
	if size := r.Size(); size > limit {
		return fmt.Errorf("%w: %d identifiers exceed the limit of %d", ErrInvalidRange, size, limit)
	}
	return nil
}

// Contains reports whether id lies within the range.
func (r Range) Contains(id int) bool {
	return id >= r.Start && id <= r.End
}

// Size returns the number of identifiers in the range, saturating at math.MaxInt.
func (r Range) Size() int {
	if r.Start > r.End {
		return 0
	}
	// the unsigned difference is exact for any Start <= End
	diff := uint64(r.End) - uint64(r.Start)
	if diff >= math.MaxInt {
		return math.MaxInt
	}
	return int(diff) + 1
}

// IgnoreSet holds identifiers excluded from expected and missing accounting.
type IgnoreSet map[int]struct{}

// NewIgnoreSet builds an IgnoreSet from a list of identifiers.
func NewIgnoreSet(ids []int) IgnoreSet {
	set := make(IgnoreSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Has reports whether id is ignored.
func (s IgnoreSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// Duplicate groups the files found for one identifier, in first-seen order.
type Duplicate struct {
	Identifier int      `json:"identifier"`
	FileNames  []string `json:"file_names"`
}

// Oversize is a file whose size exceeds the configured ceiling.
type Oversize struct {
	Identifier int    `json:"identifier"`
	SizeBytes  int64  `json:"size_bytes"`
	FileName   string `json:"file_name"`
}

// Result is the outcome of reconciling a file list against a range.
type Result struct {
	TotalExpected  int `json:"total_expected"`
	FoundCount     int `json:"found_count"`
	MissingCount   int `json:"missing_count"`
	DuplicateCount int `json:"duplicate_count"`
	IgnoredCount   int `json:"ignored_count"`

	// MissingIdentifiers are expected, not present and not ignored, ascending.
	MissingIdentifiers []int `json:"missing_identifiers"`
	// FoundIdentifiers are present within the size ceiling and not ignored, ascending.
	FoundIdentifiers []int `json:"found_identifiers"`
	// Duplicates are identifiers with more than one file within the size ceiling.
	Duplicates []Duplicate `json:"duplicates"`
	// Oversized are files above the size ceiling, one record per file.
	Oversized []Oversize `json:"oversized"`
}

// Spec bundles everything needed to run one audit.
type Spec struct {
	// Source acquires the file list.
	Source Source

	// Matcher extracts identifiers from file names.
	Matcher Matcher

	// Range is the expected identifier range.
	Range Range

	// Ignore lists identifiers excluded from accounting.
	Ignore IgnoreSet

	// SizeCeilingBytes flags files larger than this as oversize. Zero disables the check.
	SizeCeilingBytes int64

	// Timeout bounds snapshot acquisition. Zero means no timeout beyond ctx.
	Timeout time.Duration

	// CacheTTL enables caching of the acquired entries for cacheable sources.
	// If zero, caching is disabled.
	CacheTTL time.Duration
}

// Outcome is the result of one audit run, including acquisition metadata.
type Outcome struct {
	// ID uniquely identifies the run.
	ID string `json:"id"`

	// Source is the source kind ("local", "bucket", ...).
	Source string `json:"source"`

	// Location describes where the entries came from (path, prefix, URL).
	Location string `json:"location"`

	// Scanned is the number of entries the source returned.
	Scanned int `json:"scanned"`

	// NoMatches is true when the source returned no entries at all.
	// It is reported separately from "nothing missing".
	NoMatches bool `json:"no_matches"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// Duration is how long the run took.
	Duration time.Duration `json:"duration"`

	// Result is the reconciliation result.
	Result *Result `json:"result"`
}
