package listing

import (
	"fmt"
	stdhtml "html"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseHTML builds a Snapshot from captured page markup.
// Row-like containers are elements carrying a data-id attribute or role="row";
// nested row-like elements belong to their outermost row.
func ParseHTML(r io.Reader) (*Snapshot, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read markup: %w", err)
	}

	doc, err := html.Parse(strings.NewReader(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse markup: %w", err)
	}

	snap := &Snapshot{
		Elements: []Element{},
		Rows:     []string{},
		Raw:      stdhtml.UnescapeString(string(raw)),
	}
	walk(doc, -1, snap)
	return snap, nil
}

func walk(n *html.Node, row int, snap *Snapshot) {
	if n.Type == html.ElementNode {
		if isSkipped(n) {
			return
		}

		if row < 0 && isRow(n) {
			row = len(snap.Rows)
			snap.Rows = append(snap.Rows, strings.Join(textLines(n), "\n"))
		}

		if hasAttr(n, TooltipAttr) || hasAttr(n, LabelAttr) {
			attrs := make(map[string]string, len(n.Attr))
			for _, a := range n.Attr {
				attrs[a.Key] = a.Val
			}
			snap.Elements = append(snap.Elements, Element{
				Attrs: attrs,
				Text:  strings.Join(textLines(n), " "),
				Row:   row,
			})
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, row, snap)
	}
}

func isRow(n *html.Node) bool {
	if hasAttr(n, RowAttr) {
		return true
	}
	for _, a := range n.Attr {
		if a.Key == "role" && a.Val == "row" {
			return true
		}
	}
	return false
}

func isSkipped(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Noscript, atom.Template:
		return true
	}
	return false
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

// textLines returns the trimmed, non-empty text nodes under n in document order.
func textLines(n *html.Node) []string {
	var lines []string
	var collect func(*html.Node)
	collect = func(c *html.Node) {
		if c.Type == html.ElementNode && isSkipped(c) {
			return
		}
		if c.Type == html.TextNode {
			if s := strings.TrimSpace(c.Data); s != "" {
				lines = append(lines, s)
			}
			return
		}
		for ch := c.FirstChild; ch != nil; ch = ch.NextSibling {
			collect(ch)
		}
	}
	collect(n)
	return lines
}
