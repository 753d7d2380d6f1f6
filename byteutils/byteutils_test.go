package byteutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreviousWordStart(t *testing.T) {
	bs := []byte("(a+bc)*[d]")
	assert.Equal(t, 3, PreviousWordStart(bs, 5))
	assert.Equal(t, 3, PreviousWordStart(bs, 6))
	assert.Equal(t, 1, PreviousWordStart(bs, 3))
	assert.Equal(t, 0, PreviousWordStart(bs, 0))
	assert.Equal(t, 8, PreviousWordStart(bs, 100))
}

func TestNextWordEnd(t *testing.T) {
	bs := []byte("(a+bc)*[d]")
	assert.Equal(t, 2, NextWordEnd(bs, 0))
	assert.Equal(t, 5, NextWordEnd(bs, 2))
	assert.Equal(t, 9, NextWordEnd(bs, 5))
	assert.Equal(t, 10, NextWordEnd(bs, 9))
}
