package microqr

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lestrrat-go/strftime"
)

// OutputName expands a strftime pattern such as "m1-%Y%m%d-%H%M%S.png"
// for time t.  A pattern without conversions is returned as is.
func OutputName(pattern string, t time.Time) (string, error) {
	var name, err = strftime.Format(pattern, t)
	if err != nil {
		return "", fmt.Errorf("output pattern %q: %w", pattern, err)
	}
	return name, nil
}

// WriteSymbol renders m as configured.  With no output pattern it goes
// to stdout; otherwise it is written to the file the pattern expands to
// at time t.  Returns the file name, or "" for stdout.
func WriteSymbol(stdout io.Writer, m *Matrix, cfg *Config, t time.Time) (string, error) {
	if cfg.Output == "" {
		return "", Render(stdout, m, cfg)
	}

	var name, err = OutputName(cfg.Output, t)
	if err != nil {
		return "", err
	}

	var f, createErr = os.Create(name)
	if createErr != nil {
		return "", fmt.Errorf("creating output: %w", createErr)
	}

	if err := Render(f, m, cfg); err != nil {
		f.Close()
		return "", fmt.Errorf("writing %s: %w", name, err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", name, err)
	}

	return name, nil
}
