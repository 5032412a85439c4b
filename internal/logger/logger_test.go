package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withCapturedOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	SetOutput(buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbose(false)
	})
	return buf
}

func TestDebug_Silent(t *testing.T) {
	buf := withCapturedOutput(t)
	SetVerbose(false)

	Debug("hidden %d", 1)

	assert.Empty(t, buf.String())
}

func TestDebug_Verbose(t *testing.T) {
	buf := withCapturedOutput(t)
	SetVerbose(true)

	Debug("query %q", "bbc")

	assert.Equal(t, "[DEBUG] query \"bbc\"\n", buf.String())
}

func TestInfoAndWarn(t *testing.T) {
	buf := withCapturedOutput(t)
	SetVerbose(true)

	Info("decoded %d records", 3)
	Warn("request failed: %v", assert.AnError)

	out := buf.String()
	assert.Contains(t, out, "[INFO] decoded 3 records")
	assert.Contains(t, out, "[WARN] request failed:")
}

func TestSection(t *testing.T) {
	buf := withCapturedOutput(t)
	SetVerbose(true)

	Section("Repository Search")

	assert.Contains(t, buf.String(), "=== Repository Search ===")
}

func TestIsVerbose(t *testing.T) {
	withCapturedOutput(t)

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}
