package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"roll-checker/core/pattern"
)

// Config holds the settings file location.
type Config struct {
	// Path is the settings file.
	Path string `mapstructure:"path" default:"settings.json"`
}

// ErrInvalidSettings is returned by Validate.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings are the saved audit preferences.
type Settings struct {
	Theme             string `json:"theme"`
	IgnoreRolls       string `json:"ignoreRolls"`
	StartRoll         string `json:"startRoll"`
	EndRoll           string `json:"endRoll"`
	RollNumberPattern string `json:"rollNumberPattern"`
	MaxSizeMB         string `json:"maxSizeMB"`
	CheckDuplicates   bool   `json:"checkDuplicates"`
}

// Defaults returns the settings used when nothing has been saved.
func Defaults() Settings {
	return Settings{
		Theme:             "dark",
		IgnoreRolls:       "",
		StartRoll:         "001",
		EndRoll:           "140",
		RollNumberPattern: "___",
		MaxSizeMB:         "0",
		CheckDuplicates:   true,
	}
}

// Range parses the start and end rolls.
func (s Settings) Range() (int, int, error) {
	start, err := strconv.Atoi(strings.TrimSpace(s.StartRoll))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: start roll %q is not a number", ErrInvalidSettings, s.StartRoll)
	}
	end, err := strconv.Atoi(strings.TrimSpace(s.EndRoll))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: end roll %q is not a number", ErrInvalidSettings, s.EndRoll)
	}
	return start, end, nil
}

// MaxSize parses the size ceiling in MB. Empty means no ceiling.
func (s Settings) MaxSize() (float64, error) {
	raw := strings.TrimSpace(s.MaxSizeMB)
	if raw == "" {
		return 0, nil
	}
	mb, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: max size %q is not a number", ErrInvalidSettings, s.MaxSizeMB)
	}
	return mb, nil
}

// Validate checks every field that feeds an audit.
func (s Settings) Validate() error {
	start, end, err := s.Range()
	if err != nil {
		return err
	}
	if start > end {
		return fmt.Errorf("%w: start roll %d is greater than end roll %d", ErrInvalidSettings, start, end)
	}
	if _, err := s.MaxSize(); err != nil {
		return err
	}
	if _, err := pattern.Compile(s.RollNumberPattern); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}

// Store reads and writes the settings file.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a store for path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the settings file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the saved settings, or the defaults when the file is missing or broken.
// Fields absent from the file keep their default values.
func (s *Store) Load() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return Defaults()
	}

	loaded := Defaults()
	if err := json.Unmarshal(data, &loaded); err != nil {
		return Defaults()
	}
	return loaded
}

// Save writes settings to the file, creating its directory if needed.
func (s *Store) Save(settings Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
