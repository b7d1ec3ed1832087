package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilename(t *testing.T) {
	assert.Equal(t, "quote-Q-1042.pdf", Filename("Q-1042"))
	assert.Equal(t, "quote-document.pdf", Filename(""))
	assert.Equal(t, "quote-document.pdf", Filename("-"))
}
