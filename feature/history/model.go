package history

import (
	"time"

	"roll-checker/core/utils"
)

const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// TableName is the history table.
const TableName = "audit_runs"

// Columns lists the columns the history feature relies on.
var Columns = []string{
	"id", "source", "location", "started_at", "duration_ms",
	"total_expected", "found_count", "missing_count", "duplicate_count", "ignored_count", "oversize_count",
	"missing", "status", "error",
}

// Run is one recorded audit.
type Run struct {
	ID             string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Source         string    `gorm:"column:source;size:32;index" json:"source"`
	Location       string    `gorm:"column:location;type:text" json:"location"`
	StartedAt      time.Time `gorm:"column:started_at;index" json:"started_at"`
	DurationMs     int64     `gorm:"column:duration_ms" json:"duration_ms"`
	TotalExpected  int       `gorm:"column:total_expected" json:"total_expected"`
	FoundCount     int       `gorm:"column:found_count" json:"found_count"`
	MissingCount   int       `gorm:"column:missing_count" json:"missing_count"`
	DuplicateCount int       `gorm:"column:duplicate_count" json:"duplicate_count"`
	IgnoredCount   int       `gorm:"column:ignored_count" json:"ignored_count"`
	OversizeCount  int       `gorm:"column:oversize_count" json:"oversize_count"`
	Missing        string    `gorm:"column:missing;type:text" json:"missing"` // comma separated
	Status         string    `gorm:"column:status;size:16" json:"status"`
	Error          string    `gorm:"column:error;type:text" json:"error,omitempty"`
}

// TableName overrides the table name.
func (Run) TableName() string {
	return TableName
}

// MissingIdentifiers decodes the stored missing list.
func (r Run) MissingIdentifiers() []int {
	return utils.ParseIntList(r.Missing)
}
