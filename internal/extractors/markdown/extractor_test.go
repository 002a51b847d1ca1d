package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
)

func TestSupportedExtensions(t *testing.T) {
	assert.Equal(t, []string{".md", ".markdown"}, New().SupportedExtensions())
}

func TestExtract_StripsFormatting(t *testing.T) {
	input := `# Introduction

This is **bold** and *italic* text with a [link](https://example.com).

- First point
- Second point

> A quoted remark.

` + "```go\nfunc main() {}\n```" + `

1. Numbered item
`

	text, err := New().Extract([]byte(input))
	require.NoError(t, err)

	assert.Contains(t, text, "Introduction")
	assert.Contains(t, text, "This is bold and italic text with a link.")
	assert.Contains(t, text, "First point")
	assert.Contains(t, text, "A quoted remark.")
	assert.Contains(t, text, "Numbered item")
	assert.NotContains(t, text, "#")
	assert.NotContains(t, text, "**")
	assert.NotContains(t, text, "```")
	assert.NotContains(t, text, "func main")
	assert.NotContains(t, text, "https://example.com")
}

func TestExtract_RejectsBinary(t *testing.T) {
	_, err := New().Extract([]byte{0xff, 0xfe, 0x00, 0x80})
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}
