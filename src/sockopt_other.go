//go:build !unix

package microqr

import "syscall"

// SO_REUSEADDR has a different meaning on Windows, leave it alone.
func reuseAddr(_, _ string, _ syscall.RawConn) error {
	return nil
}
