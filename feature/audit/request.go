package audit

import (
	"errors"
	"fmt"

	"roll-checker/core/pattern"
	"roll-checker/core/reconcile"
	"roll-checker/core/utils"
	"roll-checker/feature/audit/report"
	"roll-checker/feature/audit/sources"
)

// ErrInvalidRequest is returned for requests that name no usable source.
var ErrInvalidRequest = errors.New("invalid audit request")

// Request is the configuration bundle of one audit. Nil and empty fields use the defaults.
type Request struct {
	// Source is one of local, bucket, snapshot, remote.
	Source string `json:"source" example:"local"`
	// Location is the folder path, bucket prefix, snapshot path or object key, or folder URL.
	Location string `json:"location" example:"/srv/rolls/2024"`
	// Snapshot is an inline snapshot (captured HTML or snapshot JSON) for the snapshot source.
	Snapshot string `json:"snapshot,omitempty"`
	// FromBucket reads a snapshot Location from the bucket instead of the local disk.
	FromBucket bool `json:"from_bucket,omitempty"`

	RangeStart      *int     `json:"range_start,omitempty" example:"1"`
	RangeEnd        *int     `json:"range_end,omitempty" example:"140"`
	Template        string   `json:"template,omitempty" example:"___"`
	SizeCeilingMB   *float64 `json:"size_ceiling_mb,omitempty" example:"5"`
	Ignore          *string  `json:"ignore,omitempty" example:"13, 42"`
	Extension       *string  `json:"extension,omitempty" example:".pdf"`
	CheckDuplicates *bool    `json:"check_duplicates,omitempty"`

	// SaveReport writes the report next to a local folder, or uploads it for other sources.
	SaveReport bool `json:"save_report,omitempty"`
}

// resolved is a Request with every default applied.
type resolved struct {
	req       Request
	pattern   *pattern.Pattern
	rng       reconcile.Range
	ignore    reconcile.IgnoreSet
	ceilingMB float64
	extension string
	checkDups bool
}

func (s *Service) resolve(req Request) (*resolved, error) {
	cfg := s.Config()
	r := &resolved{
		req:       req,
		rng:       reconcile.Range{Start: cfg.RangeStart, End: cfg.RangeEnd},
		ceilingMB: cfg.SizeCeilingMB,
		extension: cfg.Extension,
		checkDups: cfg.CheckDuplicates,
	}

	if req.RangeStart != nil {
		r.rng.Start = *req.RangeStart
	}
	if req.RangeEnd != nil {
		r.rng.End = *req.RangeEnd
	}
	if err := r.rng.ValidateMax(cfg.MaxRange); err != nil {
		return nil, err
	}

	template := cfg.Template
	if req.Template != "" {
		template = req.Template
	}
	p, err := pattern.Compile(template)
	if err != nil {
		return nil, err
	}
	r.pattern = p

	ignore := cfg.Ignore
	if req.Ignore != nil {
		ignore = *req.Ignore
	}
	r.ignore = reconcile.NewIgnoreSet(utils.ParseIntList(ignore))

	if req.SizeCeilingMB != nil {
		r.ceilingMB = *req.SizeCeilingMB
	}
	if req.Extension != nil {
		r.extension = *req.Extension
	}
	if req.CheckDuplicates != nil {
		r.checkDups = *req.CheckDuplicates
	}
	return r, nil
}

// source builds the acquisition collaborator named by the request.
func (s *Service) source(r *resolved) (reconcile.Source, error) {
	req := r.req
	switch req.Source {
	case sources.KindLocal:
		if req.Location == "" {
			return nil, fmt.Errorf("%w: local source needs a folder path", ErrInvalidRequest)
		}
		return sources.NewDirectory(req.Location, r.extension), nil
	case sources.KindBucket:
		if s.client == nil {
			return nil, fmt.Errorf("%w: storage is not configured", ErrInvalidRequest)
		}
		return sources.NewBucket(s.client, s.bucket, req.Location, r.extension), nil
	case sources.KindSnapshot:
		switch {
		case req.Snapshot != "":
			return sources.NewSnapshotBytes([]byte(req.Snapshot), r.extension), nil
		case req.Location != "" && req.FromBucket:
			if s.client == nil {
				return nil, fmt.Errorf("%w: storage is not configured", ErrInvalidRequest)
			}
			return sources.NewSnapshotObject(s.client, s.bucket, req.Location, r.extension), nil
		case req.Location != "":
			return sources.NewSnapshotFile(req.Location, r.extension), nil
		}
		return nil, fmt.Errorf("%w: snapshot source needs inline content or a location", ErrInvalidRequest)
	case sources.KindRemote:
		if _, ok := sources.FolderID(req.Location); !ok {
			return nil, fmt.Errorf("%w: %q is not a shared folder url", ErrInvalidRequest, req.Location)
		}
		return sources.NewRemote(req.Location, r.extension, s.remote), nil
	}
	return nil, fmt.Errorf("%w: unknown source %q", ErrInvalidRequest, req.Source)
}

// spec builds the reconcile spec for a resolved request.
func (s *Service) spec(r *resolved, src reconcile.Source) *reconcile.Spec {
	return &reconcile.Spec{
		Source:           src,
		Matcher:          r.pattern,
		Range:            r.rng,
		Ignore:           r.ignore,
		SizeCeilingBytes: utils.MegabytesToBytes(r.ceilingMB),
		Timeout:          s.cfg.SnapshotTimeout(),
		CacheTTL:         s.cfg.CacheTTL(),
	}
}

// reportOptions builds the formatter options for a resolved request.
func (r *resolved) reportOptions(outcome *reconcile.Outcome) report.Options {
	return report.Options{
		Width:           r.pattern.Width(),
		SizeCeilingMB:   r.ceilingMB,
		CheckDuplicates: r.checkDups,
		NoMatches:       outcome.NoMatches,
		GeneratedAt:     outcome.StartedAt,
	}
}
