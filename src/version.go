package microqr

import (
	"fmt"
	"io"
	"runtime/debug"
	"strconv"
)

// Set at build time via `-ldflags "-X 'github.com/doismellburning/microqr/src.MICROQR_VERSION=X'"`
var MICROQR_VERSION string

func buildSetting(bi *debug.BuildInfo, key string, defaultValue string) string {
	if bi == nil {
		return defaultValue
	}

	for _, bs := range bi.Settings {
		if bs.Key == key {
			return bs.Value
		}
	}

	return defaultValue
}

// versionString describes the build: version, VCS revision and time.
func versionString(bi *debug.BuildInfo) string {
	var buildTime = buildSetting(bi, "vcs.time", "UNKNOWN")

	var (
		commit          = buildSetting(bi, "vcs.revision", "UNKNOWN")
		dirtyStr        = buildSetting(bi, "vcs.modified", "INVALID")
		dirty, dirtyErr = strconv.ParseBool(dirtyStr)
	)

	if dirty {
		commit += "-DIRTY"
	} else if dirtyErr != nil {
		commit += "-UNKNOWNDIRTY"
	}

	var version = MICROQR_VERSION
	if version == "" {
		version = "!UNKNOWN!"
	}

	return fmt.Sprintf("microqr - Version %s (revision %s, built at %s)", version, commit, buildTime)
}

func printVersion(w io.Writer, verbose bool) {
	var buildInfo, _ = debug.ReadBuildInfo()

	fmt.Fprintln(w, versionString(buildInfo))

	if verbose {
		fmt.Fprintf(w, "\nBuildInfo: %+v\n", buildInfo)
	}
}
