package microqr

/*------------------------------------------------------------------
 *
 * Purpose:	Announce the symbol service using DNS-SD
 *
 * Description:	Lets label printing front ends on the local network find
 *		the service without being told an address and port.
 *
 *		This uses the pure-Go github.com/brutella/dnssd package for
 *		mDNS/DNS-SD service announcement without requiring any
 *		system daemon.
 *
 *------------------------------------------------------------------*/

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/brutella/dnssd"
)

const DNSSDServiceType = "_microqr._tcp"

// defaultServiceName is "Micro QR on <hostname>", or just "Micro QR" if
// the hostname can't be obtained.
func defaultServiceName() string {
	var hostname, hostnameErr = os.Hostname()
	if hostnameErr != nil || hostname == "" {
		return "Micro QR"
	}

	// on some systems, an FQDN is returned; remove domain part
	hostname, _, _ = strings.Cut(hostname, ".")

	return "Micro QR on " + hostname
}

// AnnounceService publishes the service on port until ctx is done.
// An empty name is replaced by a default built from the hostname.
func AnnounceService(ctx context.Context, name string, port int) error {
	if name == "" {
		name = defaultServiceName()
	}

	var cfg = dnssd.Config{ //nolint:exhaustruct
		Name: name,
		Type: DNSSDServiceType,
		Port: port,
	}

	var sv, svErr = dnssd.NewService(cfg)
	if svErr != nil {
		return fmt.Errorf("DNS-SD: creating service: %w", svErr)
	}

	var rp, rpErr = dnssd.NewResponder()
	if rpErr != nil {
		return fmt.Errorf("DNS-SD: creating responder: %w", rpErr)
	}

	if _, err := rp.Add(sv); err != nil {
		return fmt.Errorf("DNS-SD: adding service: %w", err)
	}

	logger.Info("DNS-SD: announcing", "type", DNSSDServiceType, "port", port, "name", name)

	go func() {
		var respondErr = rp.Respond(ctx)
		if respondErr != nil && ctx.Err() == nil {
			logger.Error("DNS-SD: responder failed", "err", respondErr)
		}
	}()

	return nil
}
