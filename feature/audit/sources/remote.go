package sources

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"roll-checker/core/listing"
	"roll-checker/core/reconcile"

	"github.com/gofiber/fiber/v2"
)

// KindRemote identifies a remote folder page source.
const KindRemote = "remote"

var folderIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`folders/([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`[?&]id=([A-Za-z0-9_-]+)`),
}

// FolderID returns the folder id embedded in a shared folder URL.
func FolderID(url string) (string, bool) {
	for _, re := range folderIDPatterns {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// RemoteConfig holds the HTTP settings used to fetch folder pages.
type RemoteConfig struct {
	// UserAgent is sent with every page request.
	UserAgent string `mapstructure:"user_agent" default:"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"`
	// TimeoutSeconds bounds a single page request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Remote fetches a public folder page and extracts the files it lists.
// Only what the page renders without interaction is visible; large folders that
// lazy-load rows need a captured snapshot instead.
type Remote struct {
	url       string
	extension string
	cfg       RemoteConfig
}

// NewRemote creates a remote source for a shared folder URL.
func NewRemote(url, extension string, cfg RemoteConfig) *Remote {
	return &Remote{url: url, extension: extension, cfg: cfg}
}

func (r *Remote) Kind() string     { return KindRemote }
func (r *Remote) Location() string { return r.url }

// CacheKey identifies the listing by URL and extension.
func (r *Remote) CacheKey() string {
	return KindRemote + ":" + r.url + "|" + listing.NormalizeExtension(r.extension)
}

// Load fetches the page and runs the extraction strategies.
func (r *Remote) Load(ctx context.Context) ([]reconcile.FileEntry, error) {
	body, err := r.fetch(ctx)
	if err != nil {
		return nil, err
	}

	snap, err := listing.ParseHTML(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return listing.Extract(snap, r.extension), nil
}

func (r *Remote) fetch(ctx context.Context) ([]byte, error) {
	timeout := time.Duration(r.cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	if timeout <= 0 {
		return nil, context.DeadlineExceeded
	}

	agent := fiber.Get(r.url)
	agent.Timeout(timeout)
	agent.MaxRedirectsCount(5)
	if r.cfg.UserAgent != "" {
		agent.UserAgent(r.cfg.UserAgent)
	}
	if err := agent.Parse(); err != nil {
		return nil, fmt.Errorf("invalid folder url %q: %w", r.url, err)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to fetch %s: %w", r.url, errors.Join(errs...))
	}
	if code != fiber.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: unexpected status %d", r.url, code)
	}
	return body, nil
}
