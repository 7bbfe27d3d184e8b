package pattern

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Placeholder marks one identifier digit in a template.
const Placeholder = '_'

// ErrInvalidTemplate is returned when the placeholder span of a template cannot be resolved.
var ErrInvalidTemplate = errors.New("invalid identifier template")

var digitRun = regexp.MustCompile(`\d+`)

// Pattern is a compiled identifier template.
type Pattern struct {
	// Template is the source template.
	Template string `json:"template"`
	// Prefix is the literal text required before the identifier.
	Prefix string `json:"prefix"`
	// Suffix is the literal text required after the identifier.
	Suffix string `json:"suffix"`
	// Length is the number of identifier digits. Zero means any length.
	Length int `json:"length"`

	re *regexp.Regexp
}

// Compile parses a template into a Pattern.
func Compile(template string) (*Pattern, error) {
	first := strings.IndexRune(template, Placeholder)
	if first < 0 {
		return &Pattern{Template: template}, nil
	}
	last := strings.LastIndexFunc(template, func(r rune) bool { return r == Placeholder })

	span := template[first : last+1]
	if strings.Trim(span, string(Placeholder)) != "" {
		return nil, fmt.Errorf("%w: %q has non-placeholder characters inside the identifier span", ErrInvalidTemplate, template)
	}

	p := &Pattern{
		Template: template,
		Prefix:   template[:first],
		Suffix:   template[last+1:],
		Length:   len(span),
	}
	if !p.IsBare() {
		p.re = regexp.MustCompile(regexp.QuoteMeta(p.Prefix) + `(\d{` + strconv.Itoa(p.Length) + `})` + regexp.QuoteMeta(p.Suffix))
	}
	return p, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(template string) *Pattern {
	p, err := Compile(template)
	if err != nil {
		panic(err)
	}
	return p
}

// IsBare reports whether the template has no literal prefix or suffix.
func (p *Pattern) IsBare() bool {
	return p.Prefix == "" && p.Suffix == ""
}

// Extract returns the digit run that carries the identifier.
// For bare templates this is the longest digit run of at least Length digits,
// the first one on a tie, so a date or version number before the roll number is skipped.
// Without a placeholder it is the first digit run.
func (p *Pattern) Extract(filename string) (string, bool) {
	name := stripExtension(filename)

	if p.re != nil {
		m := p.re.FindStringSubmatch(name)
		if m == nil {
			return "", false
		}
		return m[1], true
	}

	if p.Length == 0 {
		run := digitRun.FindString(name)
		return run, run != ""
	}

	best := ""
	for _, run := range digitRun.FindAllString(name, -1) {
		if len(run) >= p.Length && len(run) > len(best) {
			best = run
		}
	}
	return best, best != ""
}

// Identifier returns the numeric identifier embedded in filename.
func (p *Pattern) Identifier(filename string) (int, bool) {
	run, ok := p.Extract(filename)
	if !ok {
		return 0, false
	}
	if p.Length > 0 && len(run) > p.Length {
		run = run[len(run)-p.Length:]
	}
	id, err := strconv.Atoi(run)
	if err != nil {
		// digit runs longer than an int
		return 0, false
	}
	return id, true
}

// Width returns the number of digits used when printing identifiers.
func (p *Pattern) Width() int {
	return p.Length
}

// String returns the template.
func (p *Pattern) String() string {
	return p.Template
}

func stripExtension(filename string) string {
	ext := filepath.Ext(filename)
	if ext == "" || ext == filename {
		return filename
	}
	// "name.2024" is not an extension
	if _, err := strconv.Atoi(ext[1:]); err == nil {
		return filename
	}
	return strings.TrimSuffix(filename, ext)
}
