package prismic

import "strings"

// RichTextBlock is one block of a rich-text field. Only the plain text is
// used by this service; spans and block types are ignored.
type RichTextBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// AsText flattens rich-text blocks into plain text, one line per non-empty
// block. An empty slice yields "".
func AsText(blocks []RichTextBlock) string {
	lines := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b.Text == "" {
			continue
		}
		lines = append(lines, b.Text)
	}
	return strings.Join(lines, "\n")
}
