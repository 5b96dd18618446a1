package microqr

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout runs command with os.Stdout redirected and returns what
// it wrote.
func captureStdout(t *testing.T, command func()) string {
	t.Helper()

	var oldStdout = os.Stdout
	defer func() {
		os.Stdout = oldStdout
	}()

	var r, w, pipeErr = os.Pipe()
	require.NoError(t, pipeErr)
	os.Stdout = w

	var done = make(chan []byte)
	go func() {
		var outputBytes, _ = io.ReadAll(r)
		done <- outputBytes
	}()

	command()

	w.Close() //nolint:gosec

	os.Stdout = oldStdout

	return string(<-done)
}

func assertOutputContains(t *testing.T, command func(), expectedOutputContains string) {
	t.Helper()

	assert.Contains(t, captureStdout(t, command), expectedOutputContains)
}
