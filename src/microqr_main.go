package microqr

/*------------------------------------------------------------------
 *
 * Purpose:   	Command line utility for making M1 symbols.
 *
 * Usage:	microqr  [ options ]  [ digits ... ]
 *
 *		Each digit string on the command line becomes one
 *		symbol.  With none, digit strings are read from stdin,
 *		one per line.
 *
 *		With -l, run the symbol service instead.
 *
 *---------------------------------------------------------------*/

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"
)

// MicroQRMain runs the command line tool with args (args[0] is the program
// name) and returns the process exit status.
func MicroQRMain(args []string) int {
	var progname = "microqr"
	if len(args) > 0 {
		progname = args[0]
		args = args[1:]
	}

	var flags = pflag.NewFlagSet(progname, pflag.ContinueOnError)

	var configFile = flags.StringP("config", "c", "", "Configuration file name.  Default is to search for microqr.yaml.")
	var format = flags.StringP("format", "f", string(FormatText), "Output format: text, half, png or svg.")
	var moduleSize = flags.IntP("module-size", "m", DefaultModuleSize, "Pixels per module for png and svg.")
	var quietZone = flags.IntP("quiet-zone", "q", DefaultQuietZone, "Light border around the symbol, in modules.")
	var output = flags.StringP("output", "o", "", "Write to files named by this strftime pattern, e.g. m1-%Y%m%d-%H%M%S.png, rather than stdout.")
	var strict = flags.BoolP("strict", "s", false, "Fail rather than drop bits that don't fit in the symbol.")
	var debug = flags.CountP("debug", "d", "Increase debug output.  Repeat for more.")
	var listen = flags.BoolP("listen", "l", false, "Run the symbol service rather than encoding arguments.")
	var port = flags.IntP("port", "p", DefaultListenPort, "TCP port for the symbol service.")
	var announce = flags.BoolP("announce", "a", false, "Announce the symbol service with DNS-SD.")
	var dnsSDName = flags.StringP("dns-sd-name", "n", "", "DNS-SD service name.  Default is based on the host name.")
	var version = flags.BoolP("version", "v", false, "Print version and exit.  With -d, include build details.")
	var help = flags.BoolP("help", "h", false, "Display help text.")

	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - Encode digits as Micro QR M1 symbols.\n", progname)
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [digits ...]\n", progname)
		flags.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Each symbol holds 1 to 7 digits.  Only 4 fit completely, longer\n")
		fmt.Fprintf(os.Stderr, "input loses bits at the end of the data region unless -s is used.\n")
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Configuration is read from the first of these that exists:\n")
		for _, location := range configSearchLocations() {
			fmt.Fprintf(os.Stderr, "    %s\n", location)
		}
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Example:  %s 1234\n", progname)
		fmt.Fprintf(os.Stderr, "Example:  %s -f png -m 8 -o 'm1-%%H%%M%%S.png' 42\n", progname)
		fmt.Fprintf(os.Stderr, "Example:  %s -l -a -p 8011\n", progname)
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		logger.Error(err.Error())
		return 1
	}

	if *help {
		flags.Usage()
		return 0
	}

	if *version {
		printVersion(os.Stdout, *debug > 0)
		return 0
	}

	var cfg *Config
	var cfgErr error
	if *configFile != "" {
		cfg, cfgErr = LoadConfig(*configFile)
	} else {
		cfg, cfgErr = FindConfig()
	}
	if cfgErr != nil {
		logger.Error(cfgErr.Error())
		return 1
	}

	// Command line wins over the file.

	if flags.Changed("format") {
		cfg.Format = Format(*format)
	}
	if flags.Changed("module-size") {
		cfg.ModuleSize = *moduleSize
	}
	if flags.Changed("quiet-zone") {
		cfg.QuietZone = *quietZone
	}
	if flags.Changed("output") {
		cfg.Output = *output
	}
	if *strict {
		cfg.Overflow = OverflowStrict
	}
	if *debug > 0 {
		cfg.Debug = min(DebugDefault+*debug, DebugDump)
	}
	if flags.Changed("port") {
		cfg.ListenPort = *port
	}
	if *announce {
		cfg.Announce = true
	}
	if flags.Changed("dns-sd-name") {
		cfg.DNSSDName = *dnsSDName
	}

	if err := cfg.Validate(); err != nil {
		logger.Error(err.Error())
		return 1
	}

	SetDebugLevel(cfg.Debug)
	if cfg.Source != "" {
		logger.Debug("configuration", "file", cfg.Source)
	}

	if *listen {
		return serveMain(cfg)
	}

	var inputs = flags.Args()
	if len(inputs) == 0 {
		var err error
		inputs, err = readLines(os.Stdin)
		if err != nil {
			logger.Error("reading stdin", "err", err)
			return 1
		}
	}

	return encodeMain(cfg, inputs)
}

func encodeMain(cfg *Config, inputs []string) int {
	var encoder = &Encoder{Overflow: cfg.Overflow} //nolint:exhaustruct
	var status = 0
	var written = 0

	for _, data := range inputs {
		var m, err = encoder.Encode(data)
		if err != nil {
			logger.Error(err.Error())
			status = 1
			continue
		}

		if written > 0 && cfg.Output == "" && cfg.Format != FormatPNG {
			fmt.Fprintln(os.Stdout)
		}

		var name, writeErr = WriteSymbol(os.Stdout, &m, cfg, time.Now())
		if writeErr != nil {
			logger.Error(writeErr.Error())
			status = 1
			continue
		}
		written++
		if name != "" {
			logger.Info("wrote symbol", "data", data, "file", name)
		}
	}

	return status
}

func serveMain(cfg *Config) int {
	var server, err = NewServer(cfg)
	if err != nil {
		logger.Error(err.Error())
		return 1
	}

	var ctx, stop = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var listener, listenErr = server.Listen(ctx)
	if listenErr != nil {
		logger.Error(listenErr.Error())
		return 1
	}

	if cfg.Announce {
		if err := AnnounceService(ctx, cfg.DNSSDName, cfg.ListenPort); err != nil {
			// The service still works, it just can't be discovered.
			logger.Error(err.Error())
		}
	}

	if err := server.Serve(ctx, listener); err != nil {
		logger.Error(err.Error())
		return 1
	}

	logger.Info("shut down")
	return 0
}

// readLines returns the non-blank lines of r, trimmed.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	var scanner = bufio.NewScanner(r)
	for scanner.Scan() {
		var line = strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
