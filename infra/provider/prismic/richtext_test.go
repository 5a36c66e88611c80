package prismic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsText(t *testing.T) {
	blocks := []RichTextBlock{
		{Type: "heading1", Text: "Vapor75"},
		{Type: "paragraph", Text: ""},
		{Type: "paragraph", Text: "Great switches"},
	}
	assert.Equal(t, "Vapor75\nGreat switches", AsText(blocks))
}

func TestAsTextEmpty(t *testing.T) {
	assert.Equal(t, "", AsText(nil))
	assert.Equal(t, "", AsText([]RichTextBlock{{Type: "paragraph", Text: ""}}))
}
