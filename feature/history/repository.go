package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roll-checker/core/reconcile"
	"roll-checker/core/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultLimit is the number of runs returned when no limit is given.
const DefaultLimit = 50

// ErrNotFound is returned when a run does not exist.
var ErrNotFound = errors.New("audit run not found")

// Repository stores audit runs.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the history table.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&Run{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", TableName, err)
	}
	return nil
}

// RecordSuccess stores a completed audit.
func (r *Repository) RecordSuccess(ctx context.Context, outcome *reconcile.Outcome) error {
	res := outcome.Result
	run := Run{
		ID:             outcome.ID,
		Source:         outcome.Source,
		Location:       outcome.Location,
		StartedAt:      outcome.StartedAt,
		DurationMs:     outcome.Duration.Milliseconds(),
		TotalExpected:  res.TotalExpected,
		FoundCount:     res.FoundCount,
		MissingCount:   res.MissingCount,
		DuplicateCount: res.DuplicateCount,
		IgnoredCount:   res.IgnoredCount,
		OversizeCount:  len(res.Oversized),
		Missing:        utils.FormatIntList(res.MissingIdentifiers),
		Status:         StatusOK,
	}
	return r.create(ctx, &run)
}

// RecordFailure stores an audit that ended in err.
func (r *Repository) RecordFailure(ctx context.Context, source, location string, startedAt time.Time, failure error) error {
	run := Run{
		ID:         uuid.NewString(),
		Source:     source,
		Location:   location,
		StartedAt:  startedAt,
		DurationMs: time.Since(startedAt).Milliseconds(),
		Status:     StatusFailed,
		Error:      failure.Error(),
	}
	return r.create(ctx, &run)
}

func (r *Repository) create(ctx context.Context, run *Run) error {
	if err := r.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to record audit run: %w", err)
	}
	return nil
}

// List returns the most recent runs first. An empty source returns every source.
func (r *Repository) List(ctx context.Context, source string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	q := r.db.WithContext(ctx).Order("started_at DESC").Limit(limit)
	if source != "" {
		q = q.Where("source = ?", source)
	}

	runs := make([]Run, 0)
	if err := q.Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list audit runs: %w", err)
	}
	return runs, nil
}

// Get returns one run by id.
func (r *Repository) Get(ctx context.Context, id string) (*Run, error) {
	var run Run
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load audit run: %w", err)
	}
	return &run, nil
}
