package listing

import (
	"strings"
	"testing"

	"roll-checker/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const folderPage = `<!DOCTYPE html>
<html><head><style>.x{}</style></head>
<body>
<div role="grid">
  <div data-id="a1" role="row">
    <div data-tooltip="18842826001.pdf">18842826001.pdf</div>
    <span>1.5 MB</span>
  </div>
  <div data-id="a2">
    <div aria-label="18842826002.pdf, PDF, 320 KB">x</div>
    <span>320 KB</span>
  </div>
  <div data-id="a3">
    <span>18842826003.pdf</span>
    <span>2 MB</span>
  </div>
  <div data-id="a4">
    <span>notes.docx</span>
    <span>12 KB</span>
  </div>
</div>
<div data-json="[&quot;18842826005.pdf&quot;]"></div>
<script>var files = ["18842826004.pdf", "https://example.com/18842826009.pdf"];</script>
</body></html>`

func parseFixture(t *testing.T) *Snapshot {
	t.Helper()
	snap, err := ParseHTML(strings.NewReader(folderPage))
	require.NoError(t, err)
	return snap
}

func TestParseHTML(t *testing.T) {
	snap := parseFixture(t)

	require.Len(t, snap.Rows, 4)
	assert.Equal(t, "18842826001.pdf\n1.5 MB", snap.Rows[0])
	assert.Equal(t, "x\n320 KB", snap.Rows[1])

	require.Len(t, snap.Elements, 2)
	assert.Equal(t, 0, snap.Elements[0].Row)
	assert.Equal(t, 1, snap.Elements[1].Row)

	tip, ok := snap.Elements[0].Attr(TooltipAttr)
	assert.True(t, ok)
	assert.Equal(t, "18842826001.pdf", tip)

	assert.Contains(t, snap.Raw, `"18842826005.pdf"`)
	assert.False(t, snap.Empty())
}

func TestParseHTML_Malformed(t *testing.T) {
	snap, err := ParseHTML(strings.NewReader(`<div data-id="1"><span>a.pdf<div`))
	require.NoError(t, err)
	assert.NotNil(t, snap)
}

func TestExtract_AllStrategies(t *testing.T) {
	entries := Extract(parseFixture(t), "pdf")

	assert.Equal(t, []reconcile.FileEntry{
		{Name: "18842826001.pdf", SizeBytes: 0},
		{Name: "18842826002.pdf", SizeBytes: 320 * 1024},
		{Name: "18842826003.pdf", SizeBytes: 2 * 1024 * 1024},
		{Name: "18842826005.pdf", SizeBytes: 0},
		{Name: "18842826004.pdf", SizeBytes: 0},
	}, entries)
}

func TestExtract_NoExtensionKeepsEverything(t *testing.T) {
	entries := Extract(parseFixture(t), "")

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	assert.Contains(t, names, "notes.docx")
	assert.Len(t, entries, 6)
}

func TestCandidates_StrategyPerName(t *testing.T) {
	var tooltip, label, row int
	for _, c := range Candidates(parseFixture(t)) {
		switch c.Strategy {
		case StrategyTooltip:
			tooltip++
		case StrategyLabel:
			label++
		case StrategyRowText:
			row++
		}
	}

	assert.Equal(t, 1, tooltip)
	assert.Equal(t, 1, label)
	// the tooltip cell text, the plain row and the docx row
	assert.Equal(t, 3, row)
}

func TestExtract_CaseInsensitiveDedupKeepsFirstStrategy(t *testing.T) {
	snap := &Snapshot{
		Elements: []Element{
			{Attrs: map[string]string{TooltipAttr: "FILE.PDF"}, Row: -1},
		},
		Rows: []string{"file.pdf\n2 MB"},
	}

	entries := Extract(snap, ".PDF")
	assert.Equal(t, []reconcile.FileEntry{{Name: "FILE.PDF", SizeBytes: 0}}, entries)
}

func TestExtract_LabelWithoutRowUsesLabelSize(t *testing.T) {
	snap := &Snapshot{
		Elements: []Element{
			{Attrs: map[string]string{LabelAttr: "scan.pdf, 1 MB"}, Row: -1},
		},
	}

	entries := Extract(snap, "pdf")
	assert.Equal(t, []reconcile.FileEntry{{Name: "scan.pdf", SizeBytes: 1024 * 1024}}, entries)
}

func TestExtract_RejectsUnlikelyNames(t *testing.T) {
	snap := &Snapshot{
		Elements: []Element{
			{Attrs: map[string]string{TooltipAttr: "folder/inner.pdf"}, Row: -1},
			{Attrs: map[string]string{TooltipAttr: "Open in new window"}, Row: -1},
		},
		Rows: []string{"abc\n" + strings.Repeat("a", 200) + ".pdf"},
		Raw:  `"application/x.pdf" "http-link.pdf"`,
	}

	assert.Empty(t, Extract(snap, ""))
}

func TestExtract_EmptySnapshot(t *testing.T) {
	tests := []struct {
		name string
		snap *Snapshot
	}{
		{"nil", nil},
		{"zero", &Snapshot{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := Extract(tt.snap, "pdf")
			assert.NotNil(t, entries)
			assert.Empty(t, entries)
			assert.True(t, tt.snap.Empty())
		})
	}
}

func TestNormalizeExtension(t *testing.T) {
	tests := map[string]string{
		"":      "",
		"pdf":   ".pdf",
		".PDF":  ".pdf",
		" Pdf ": ".pdf",
	}

	for in, want := range tests {
		assert.Equal(t, want, NormalizeExtension(in), in)
	}
}
