package integrity

import (
	"context"
	"errors"

	"roll-checker/core/storage"
	"roll-checker/feature/history"
	"roll-checker/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrStorageDisabled is returned by structure checks when no storage client is configured.
	ErrStorageDisabled = errors.New("storage is not configured")
	// ErrDatabaseDisabled is returned by history checks when no database is configured.
	ErrDatabaseDisabled = errors.New("database is not configured")
)

// Report combines every check. A nil section was skipped.
type Report struct {
	Structure *checks.StructureReport `json:"structure,omitempty"`
	History   *checks.SchemaReport    `json:"history,omitempty"`
	Errors    map[string]string       `json:"errors,omitempty"`
}

// Service handles integrity checks.
type Service struct {
	client  storage.Client
	bucket  string
	folders []string
	db      *gorm.DB
	logger  *zap.Logger
}

// NewService creates a new integrity service. client and db may each be nil,
// which disables the matching check. folders are the prefixes expected in the bucket.
func NewService(client storage.Client, bucket string, folders []string, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		client:  client,
		bucket:  bucket,
		folders: folders,
		db:      db,
		logger:  logger,
	}
}

// CheckStructure inspects the bucket layout.
func (s *Service) CheckStructure(ctx context.Context) (*checks.StructureReport, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}
	return checks.CheckStructure(ctx, s.client, s.bucket, s.folders)
}

// FixStructure creates whatever the report lists as missing.
func (s *Service) FixStructure(ctx context.Context, report *checks.StructureReport) error {
	if s.client == nil {
		return ErrStorageDisabled
	}
	return checks.FixStructure(ctx, s.client, report, s.logger)
}

// CheckHistory compares the audit_runs table with the history model.
func (s *Service) CheckHistory() (*checks.SchemaReport, error) {
	if s.db == nil {
		return nil, ErrDatabaseDisabled
	}
	return checks.CheckSchema(s.db, history.TableName, history.Columns)
}

// CheckAll runs every configured check. Failures are collected per check.
func (s *Service) CheckAll(ctx context.Context) *Report {
	report := &Report{}
	fail := func(name string, err error) {
		if report.Errors == nil {
			report.Errors = make(map[string]string)
		}
		report.Errors[name] = err.Error()
	}

	if s.client != nil {
		if structure, err := s.CheckStructure(ctx); err != nil {
			fail("structure", err)
		} else {
			report.Structure = structure
		}
	}
	if s.db != nil {
		if schema, err := s.CheckHistory(); err != nil {
			fail("history", err)
		} else {
			report.History = schema
		}
	}
	return report
}
