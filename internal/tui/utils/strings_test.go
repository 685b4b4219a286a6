package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "claude", TruncateString("claude", 10))
	assert.Equal(t, "claude-3…", TruncateString("claude-3-opus", 9))
	assert.Equal(t, "", TruncateString("anything", 0))
	assert.Equal(t, "", TruncateString("anything", -4))
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "one", FirstLine("one\ntwo"))
	assert.Equal(t, "single", FirstLine("single"))
}
