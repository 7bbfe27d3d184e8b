package audit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"roll-checker/core/listing"
	"roll-checker/core/reconcile"
	"roll-checker/core/storage"
	"roll-checker/feature/audit/report"
	"roll-checker/feature/audit/sources"
	"roll-checker/feature/settings"

	"go.uber.org/zap"
)

// Recorder stores the outcome of audit runs.
// *history.Repository is the standard implementation.
type Recorder interface {
	RecordSuccess(ctx context.Context, outcome *reconcile.Outcome) error
	RecordFailure(ctx context.Context, source, location string, startedAt time.Time, failure error) error
}

// Result is a finished audit with its rendered report.
type Result struct {
	Outcome *reconcile.Outcome `json:"outcome"`
	Report  string             `json:"report"`
	// ReportLocation is the saved report path or object key.
	ReportLocation string `json:"report_location,omitempty"`
	// ReportError is set when the report could not be saved. The audit itself succeeded.
	ReportError string `json:"report_error,omitempty"`
}

// Extraction is the file list recovered from a snapshot.
type Extraction struct {
	Files      []reconcile.FileEntry `json:"files"`
	Candidates []listing.Candidate   `json:"candidates,omitempty"`
}

// Service runs audits.
type Service struct {
	client   storage.Client
	bucket   string
	cfg      Config
	remote   sources.RemoteConfig
	recorder Recorder
	settings *settings.Store
	uploader *report.Uploader
	logger   *zap.Logger
}

// NewService creates a new audit service. client may be nil when no storage is configured.
func NewService(client storage.Client, bucket string, cfg Config, remote sources.RemoteConfig, logger *zap.Logger) *Service {
	s := &Service{
		client: client,
		bucket: bucket,
		cfg:    cfg,
		remote: remote,
		logger: logger,
	}
	if client != nil {
		s.uploader = report.NewUploader(client, bucket, cfg.ReportPrefix, logger)
	}
	return s
}

// SetRecorder enables history recording.
func (s *Service) SetRecorder(r Recorder) {
	s.recorder = r
}

// UseSettings overlays the saved settings on the defaults at the start of every run.
func (s *Service) UseSettings(store *settings.Store) {
	s.settings = store
}

// Config returns the audit defaults in use.
func (s *Service) Config() Config {
	if s.settings == nil {
		return s.cfg
	}
	return s.cfg.WithSettings(s.settings.Load())
}

// Run executes one audit. Configuration errors are returned before any acquisition.
func (s *Service) Run(ctx context.Context, req Request) (*Result, error) {
	startedAt := time.Now()

	r, err := s.resolve(req)
	if err != nil {
		return nil, err
	}
	src, err := s.source(r)
	if err != nil {
		return nil, err
	}

	l := s.logger.With(zap.String("source", src.Kind()), zap.String("location", src.Location()))
	l.Info("Starting audit",
		zap.Int("start", r.rng.Start),
		zap.Int("end", r.rng.End),
		zap.String("template", r.pattern.String()))

	outcome, err := reconcile.Audit(ctx, s.spec(r, src))
	if err != nil {
		l.Error("Audit failed", zap.Error(err))
		s.recordFailure(ctx, src, startedAt, err)
		return nil, err
	}

	res := &Result{
		Outcome: outcome,
		Report:  report.Format(outcome.Result, r.reportOptions(outcome)),
	}

	if req.SaveReport {
		location, err := s.saveReport(ctx, r, outcome, res.Report)
		if err != nil {
			l.Warn("Failed to save report", zap.Error(err))
			res.ReportError = err.Error()
		} else {
			res.ReportLocation = location
		}
	}

	if outcome.NoMatches {
		l.Warn("Source returned no files")
	}
	l.Info("Audit completed",
		zap.String("id", outcome.ID),
		zap.Int("scanned", outcome.Scanned),
		zap.Int("expected", outcome.Result.TotalExpected),
		zap.Int("found", outcome.Result.FoundCount),
		zap.Int("missing", outcome.Result.MissingCount),
		zap.Int("duplicates", outcome.Result.DuplicateCount),
		zap.Duration("duration", outcome.Duration))

	s.recordSuccess(ctx, outcome)
	return res, nil
}

func (s *Service) saveReport(ctx context.Context, r *resolved, outcome *reconcile.Outcome, text string) (string, error) {
	if outcome.Source == sources.KindLocal {
		return report.WriteLocal(r.req.Location, text)
	}
	if s.uploader == nil {
		return "", errors.New("storage is not configured")
	}
	return s.uploader.Upload(ctx, outcome.ID, text)
}

func (s *Service) recordSuccess(ctx context.Context, outcome *reconcile.Outcome) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.RecordSuccess(ctx, outcome); err != nil {
		s.logger.Warn("Failed to record audit run", zap.Error(err))
	}
}

func (s *Service) recordFailure(ctx context.Context, src reconcile.Source, startedAt time.Time, failure error) {
	if s.recorder == nil {
		return
	}
	// the run context may already be cancelled
	ctx = context.WithoutCancel(ctx)
	if err := s.recorder.RecordFailure(ctx, src.Kind(), src.Location(), startedAt, failure); err != nil {
		s.logger.Warn("Failed to record audit run", zap.Error(err))
	}
}

// Extract returns the file list of a captured snapshot. extension nil uses the default.
func (s *Service) Extract(data []byte, extension *string, withCandidates bool) (*Extraction, error) {
	snap, err := sources.ReadSnapshot(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	ext := s.Config().Extension
	if extension != nil {
		ext = *extension
	}

	out := &Extraction{Files: listing.Extract(snap, ext)}
	if withCandidates {
		out.Candidates = listing.Candidates(snap)
	}
	return out, nil
}
