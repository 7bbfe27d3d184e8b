package listing

// Default attribute names used by the strategies.
const (
	TooltipAttr = "data-tooltip"
	LabelAttr   = "aria-label"
	RowAttr     = "data-id"
)

// Element is an attributed node captured from the page.
type Element struct {
	// Attrs holds the node's attributes.
	Attrs map[string]string `json:"attrs"`
	// Text is the node's text content.
	Text string `json:"text,omitempty"`
	// Row is the index of the enclosing row in Snapshot.Rows, or -1.
	Row int `json:"row"`
}

// Attr returns the value of an attribute.
func (e Element) Attr(name string) (string, bool) {
	v, ok := e.Attrs[name]
	return v, ok
}

// Snapshot is a static capture of a remote listing page.
type Snapshot struct {
	// Elements are the nodes that carry a tooltip or label attribute.
	Elements []Element `json:"elements"`
	// Rows are the text contents of row-like containers, one line per text node.
	Rows []string `json:"rows"`
	// Raw is the decoded page markup, including inline script data.
	Raw string `json:"raw,omitempty"`
}

// rowText returns the text of row i, or "" when out of range.
func (s *Snapshot) rowText(i int) string {
	if i < 0 || i >= len(s.Rows) {
		return ""
	}
	return s.Rows[i]
}

// Empty reports whether the snapshot carries no content at all.
func (s *Snapshot) Empty() bool {
	return s == nil || (len(s.Elements) == 0 && len(s.Rows) == 0 && s.Raw == "")
}
