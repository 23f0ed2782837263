package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRespectsVerbosity(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, 0)

	logger.V(1).Info("hidden detail")
	logger.Info("maze generated", "width", 11)
	logger.Error(errors.New("disk full"), "save failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden detail")
	assert.Contains(t, out, "maze generated")
	assert.Contains(t, out, "disk full")
	assert.Contains(t, out, "mazegen")
}

func TestNewVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, 1)
	t.Cleanup(func() { New(&bytes.Buffer{}, 0) })

	logger.V(1).Info("detail shown")
	assert.Contains(t, buf.String(), "detail shown")
}
