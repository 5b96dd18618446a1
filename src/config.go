package microqr

/*------------------------------------------------------------------
 *
 * Purpose:	Read configuration information from a file.
 *
 * Description:	Everything here can also be given on the command line,
 *		which wins over the file.  The file is YAML, e.g.
 *
 *			format: png
 *			module_size: 8
 *			quiet_zone: 2
 *			overflow: strict
 *			output: m1-%Y%m%d-%H%M%S.png
 *			listen_port: 8011
 *			announce: true
 *			dns_sd_name: Workshop label printer
 *			debug: 2
 *
 *---------------------------------------------------------------*/

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultModuleSize = 10
	DefaultQuietZone  = 2
	DefaultListenPort = 8011
)

// Config holds the options shared by the command line tool and the
// symbol service.
type Config struct {
	Format     Format         `yaml:"format"`
	ModuleSize int            `yaml:"module_size"`
	QuietZone  int            `yaml:"quiet_zone"`
	Overflow   OverflowPolicy `yaml:"overflow"`
	Output     string         `yaml:"output"` // strftime pattern; empty for stdout.
	ListenPort int            `yaml:"listen_port"`
	Announce   bool           `yaml:"announce"` // DNS-SD, serve mode only.
	DNSSDName  string         `yaml:"dns_sd_name"`
	Debug      int            `yaml:"debug"`

	// File the configuration was read from, if any.
	Source string `yaml:"-"`
}

// DefaultConfig returns the settings used when there is no file.
func DefaultConfig() *Config {
	return &Config{ //nolint:exhaustruct
		Format:     FormatText,
		ModuleSize: DefaultModuleSize,
		QuietZone:  DefaultQuietZone,
		Overflow:   OverflowTruncate,
		ListenPort: DefaultListenPort,
		Debug:      DebugDefault,
	}
}

func (p OverflowPolicy) MarshalYAML() (any, error) {
	return p.String(), nil
}

func (p *OverflowPolicy) UnmarshalYAML(node *yaml.Node) error {
	var policy, err = ParseOverflowPolicy(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*p = policy
	return nil
}

// Validate reports the first setting that is out of range.
func (c *Config) Validate() error {
	if _, err := ParseFormat(string(c.Format)); err != nil {
		return err
	}
	if c.ModuleSize < 1 {
		return fmt.Errorf("module_size must be at least 1, not %d", c.ModuleSize)
	}
	if c.QuietZone < 0 {
		return fmt.Errorf("quiet_zone can't be negative (%d)", c.QuietZone)
	}
	if c.Overflow != OverflowTruncate && c.Overflow != OverflowStrict {
		return fmt.Errorf("unknown overflow policy %v", c.Overflow)
	}
	if c.ListenPort < 0 || c.ListenPort > 65535 {
		return fmt.Errorf("listen_port %d is out of range", c.ListenPort)
	}
	if c.Debug < DebugQuiet || c.Debug > DebugDump {
		return fmt.Errorf("debug must be %d to %d, not %d", DebugQuiet, DebugDump, c.Debug)
	}
	return nil
}

// ParseConfig reads YAML over the defaults and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	var c = DefaultConfig()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

// LoadConfig reads the named configuration file.
func LoadConfig(path string) (*Config, error) {
	var data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var c, parseErr = ParseConfig(data)
	if parseErr != nil {
		return nil, fmt.Errorf("%s: %w", path, parseErr)
	}
	c.Source = path
	return c, nil
}

/*------------------------------------------------------------------
 *
 * Function:	FindConfig
 *
 * Purpose:	Look for a configuration file in the usual places.
 *
 * Returns:	The first file found, parsed.  Defaults if there is none.
 *		A file that exists but can't be read or parsed is an
 *		error, we don't quietly skip to the next location.
 *
 *------------------------------------------------------------------*/

func FindConfig() (*Config, error) {
	for _, location := range configSearchLocations() {
		var c, err = LoadConfig(location)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return DefaultConfig(), nil
}

// If search order is changed, update the help text too.
func configSearchLocations() []string {
	var locations = []string{"microqr.yaml"} // Current working directory

	if dir, err := os.UserConfigDir(); err == nil {
		locations = append(locations, filepath.Join(dir, "microqr", "microqr.yaml"))
	}

	return append(locations, "/etc/microqr/microqr.yaml")
}
