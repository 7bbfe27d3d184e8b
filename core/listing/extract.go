package listing

import (
	"regexp"
	"strings"

	"roll-checker/core/reconcile"
	"roll-checker/core/utils"
)

// Strategy names an extraction strategy. Declaration order is tie-break priority.
type Strategy string

const (
	StrategyTooltip  Strategy = "tooltip"
	StrategyLabel    Strategy = "label"
	StrategyRowText  Strategy = "row_text"
	StrategyEmbedded Strategy = "embedded"
)

const (
	minRowNameLen = 4
	maxRowNameLen = 199
	maxNameLen    = 300
)

var (
	documentName = regexp.MustCompile(`(?i)\.(pdf|docx?|xlsx?|pptx?|txt|zip|rar|jpe?g|png|gif)$`)
	embeddedName = regexp.MustCompile(`(?i)"([^"\\/<>]+\.(?:pdf|docx?|xlsx?|pptx?|txt|zip|rar|jpe?g|png|gif))"`)
)

// Candidate is one name reported by one strategy.
type Candidate struct {
	Name     string   `json:"name"`
	Size     int64    `json:"size"`
	Strategy Strategy `json:"strategy"`
}

// Candidates runs every strategy over the snapshot and returns all candidates,
// in strategy priority order, without deduplication.
func Candidates(s *Snapshot) []Candidate {
	if s == nil {
		return nil
	}

	var out []Candidate
	out = append(out, fromTooltips(s)...)
	out = append(out, fromLabels(s)...)
	out = append(out, fromRows(s)...)
	out = append(out, fromEmbedded(s)...)
	return out
}

// Extract returns the deduplicated file list of a snapshot, keeping only names ending
// in extension (case-insensitive). An empty extension keeps every name.
func Extract(s *Snapshot, extension string) []reconcile.FileEntry {
	ext := NormalizeExtension(extension)
	seen := make(map[string]struct{})
	entries := make([]reconcile.FileEntry, 0)

	for _, c := range Candidates(s) {
		key := strings.ToLower(c.Name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if ext != "" && !strings.HasSuffix(key, ext) {
			continue
		}
		entries = append(entries, reconcile.FileEntry{Name: c.Name, SizeBytes: c.Size})
	}
	return entries
}

// NormalizeExtension lower-cases an extension and ensures a leading dot.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

func fromTooltips(s *Snapshot) []Candidate {
	var out []Candidate
	for _, el := range s.Elements {
		tip, ok := el.Attr(TooltipAttr)
		if !ok {
			continue
		}
		name := strings.TrimSpace(tip)
		if !isDocumentName(name, maxNameLen) {
			continue
		}
		out = append(out, Candidate{Name: name, Strategy: StrategyTooltip})
	}
	return out
}

func fromLabels(s *Snapshot) []Candidate {
	var out []Candidate
	for _, el := range s.Elements {
		label, ok := el.Attr(LabelAttr)
		if !ok {
			continue
		}
		name, rest, _ := strings.Cut(label, ",")
		name = strings.TrimSpace(name)
		if !isDocumentName(name, maxNameLen) {
			continue
		}

		size := rowSize(s.rowText(el.Row))
		if size == 0 && el.Row < 0 {
			size = utils.ParseSize(rest)
		}
		out = append(out, Candidate{Name: name, Size: size, Strategy: StrategyLabel})
	}
	return out
}

func fromRows(s *Snapshot) []Candidate {
	var out []Candidate
	for _, row := range s.Rows {
		size := rowSize(row)
		for _, line := range strings.Split(row, "\n") {
			line = strings.TrimSpace(line)
			if len(line) < minRowNameLen || len(line) > maxRowNameLen {
				continue
			}
			if !documentName.MatchString(line) {
				continue
			}
			out = append(out, Candidate{Name: line, Size: size, Strategy: StrategyRowText})
		}
	}
	return out
}

func fromEmbedded(s *Snapshot) []Candidate {
	var out []Candidate
	for _, m := range embeddedName.FindAllStringSubmatch(s.Raw, -1) {
		name := strings.TrimSpace(m[1])
		if strings.HasPrefix(strings.ToLower(name), "http") || strings.Contains(name, "application/") {
			continue
		}
		if !isDocumentName(name, maxNameLen) {
			continue
		}
		out = append(out, Candidate{Name: name, Strategy: StrategyEmbedded})
	}
	return out
}

// rowSize returns the first size token found on a row line that is not itself a file name.
func rowSize(row string) int64 {
	for _, line := range strings.Split(row, "\n") {
		if documentName.MatchString(strings.TrimSpace(line)) {
			continue
		}
		if size := utils.ParseSize(line); size > 0 {
			return size
		}
	}
	return 0
}

func isDocumentName(name string, maxLen int) bool {
	if name == "" || len(name) > maxLen {
		return false
	}
	if strings.ContainsAny(name, "/\\") {
		return false
	}
	return documentName.MatchString(name)
}
