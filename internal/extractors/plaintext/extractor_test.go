package plaintext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
)

func TestSupportedExtensions(t *testing.T) {
	exts := New().SupportedExtensions()
	assert.Contains(t, exts, ".txt")
	assert.Contains(t, exts, "")
}

func TestExtract(t *testing.T) {
	text, err := New().Extract([]byte("  An essay about rivers.\n"))
	require.NoError(t, err)
	assert.Equal(t, "An essay about rivers.", text)
}

func TestExtract_RejectsBinary(t *testing.T) {
	_, err := New().Extract([]byte{0xff, 0xfe, 0x00, 0x80})
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}
