package microqr

import (
	"os"

	"github.com/charmbracelet/log"
)

// Debug levels, as accepted by SetDebugLevel.
//
//	0	Only errors.
//	1	Default.  Warnings, such as bits dropped during placement.
//	2	One line summary of each encoding stage.
//	3	Dump the bits and codewords going in and out.
const (
	DebugQuiet = iota
	DebugDefault
	DebugStages
	DebugDump
)

var logger = log.NewWithOptions(os.Stderr, log.Options{ //nolint:exhaustruct
	Prefix: "microqr",
	Level:  log.InfoLevel,
})

var debugLevel = DebugDefault

// SetLogger replaces the package logger.  The debug level set by
// SetDebugLevel still decides what gets logged at debug level.
func SetLogger(l *log.Logger) {
	if l == nil {
		return
	}
	logger = l
	applyDebugLevel()
}

// Logger returns the package logger.
func Logger() *log.Logger {
	return logger
}

// SetDebugLevel controls how chatty the encoder is.  Out of range values
// are clamped.
func SetDebugLevel(n int) {
	debugLevel = max(DebugQuiet, min(n, DebugDump))
	applyDebugLevel()
}

// DebugLevel returns the current debug level.
func DebugLevel() int {
	return debugLevel
}

func applyDebugLevel() {
	switch debugLevel {
	case DebugQuiet:
		logger.SetLevel(log.ErrorLevel)
	case DebugDefault:
		logger.SetLevel(log.InfoLevel)
	default:
		logger.SetLevel(log.DebugLevel)
	}
}
