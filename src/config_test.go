package microqr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseConfig(t *testing.T) {
	var c, err = ParseConfig([]byte(`
format: svg
module_size: 4
quiet_zone: 1
overflow: strict
output: m1-%H%M%S.svg
listen_port: 9000
announce: true
dns_sd_name: Label printer
debug: 2
`))
	require.NoError(t, err)

	assert.Equal(t, FormatSVG, c.Format)
	assert.Equal(t, 4, c.ModuleSize)
	assert.Equal(t, 1, c.QuietZone)
	assert.Equal(t, OverflowStrict, c.Overflow)
	assert.Equal(t, "m1-%H%M%S.svg", c.Output)
	assert.Equal(t, 9000, c.ListenPort)
	assert.True(t, c.Announce)
	assert.Equal(t, "Label printer", c.DNSSDName)
	assert.Equal(t, DebugStages, c.Debug)
	assert.Empty(t, c.Source)
}

func TestParseConfigDefaults(t *testing.T) {
	var c, err = ParseConfig([]byte("quiet_zone: 0\n"))
	require.NoError(t, err)

	var want = DefaultConfig()
	want.QuietZone = 0
	assert.Equal(t, want, c)

	c, err = ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}

func TestParseConfigInvalid(t *testing.T) {
	var cases = map[string]string{
		"format":      "format: jpeg\n",
		"module size": "module_size: 0\n",
		"quiet zone":  "quiet_zone: -1\n",
		"overflow":    "overflow: wrap\n",
		"port":        "listen_port: 70000\n",
		"debug":       "debug: 4\n",
		"syntax":      "format: [text\n",
		"type":        "module_size: big\n",
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			var c, err = ParseConfig([]byte(input))
			require.Error(t, err)
			assert.Nil(t, c)
		})
	}
}

func TestOverflowPolicyYAML(t *testing.T) {
	var out, err = yaml.Marshal(DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, string(out), "overflow: truncate\n")

	var c, parseErr = ParseConfig(out)
	require.NoError(t, parseErr)
	assert.Equal(t, DefaultConfig(), c)
}

func TestLoadConfig(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "microqr.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: half\n"), 0o600))

	var c, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, FormatHalf, c.Format)
	assert.Equal(t, path, c.Source)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(path, []byte("debug: 9\n"), 0o600))
	_, err = LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestFindConfig(t *testing.T) {
	var home = t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Chdir(t.TempDir())

	if _, err := os.Stat("/etc/microqr/microqr.yaml"); err == nil {
		t.Skip("system configuration present")
	}

	var c, err = FindConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)

	// The user's file is found when there is none in the working directory.
	var userDir = filepath.Join(home, ".config", "microqr")
	require.NoError(t, os.MkdirAll(userDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "microqr.yaml"), []byte("quiet_zone: 3\n"), 0o600))

	c, err = FindConfig()
	require.NoError(t, err)
	assert.Equal(t, 3, c.QuietZone)

	// The working directory comes first.
	require.NoError(t, os.WriteFile("microqr.yaml", []byte("quiet_zone: 1\n"), 0o600))

	c, err = FindConfig()
	require.NoError(t, err)
	assert.Equal(t, 1, c.QuietZone)
	assert.Equal(t, "microqr.yaml", c.Source)

	// A broken file is reported, not skipped.
	require.NoError(t, os.WriteFile("microqr.yaml", []byte("format: gif\n"), 0o600))

	_, err = FindConfig()
	assert.Error(t, err)
}
