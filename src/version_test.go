package microqr

import (
	"bytes"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionString(t *testing.T) {
	assert.Equal(t, "microqr - Version !UNKNOWN! (revision UNKNOWN-UNKNOWNDIRTY, built at UNKNOWN)", versionString(nil))

	var bi = &debug.BuildInfo{ //nolint:exhaustruct
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123abc"},
			{Key: "vcs.time", Value: "2024-03-09T14:05:07Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	var saved = MICROQR_VERSION
	t.Cleanup(func() { MICROQR_VERSION = saved })
	MICROQR_VERSION = "1.0.0"

	assert.Equal(t, "microqr - Version 1.0.0 (revision 0123abc-DIRTY, built at 2024-03-09T14:05:07Z)", versionString(bi))

	bi.Settings[2].Value = "false"
	assert.Equal(t, "microqr - Version 1.0.0 (revision 0123abc, built at 2024-03-09T14:05:07Z)", versionString(bi))
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	printVersion(&buf, false)
	assert.Contains(t, buf.String(), "microqr - Version ")
	assert.NotContains(t, buf.String(), "BuildInfo")

	buf.Reset()
	printVersion(&buf, true)
	assert.Contains(t, buf.String(), "BuildInfo")
}
