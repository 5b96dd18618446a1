//go:build unix

package microqr

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// reuseAddr sets SO_REUSEADDR on the listening socket.  Without it, if
// the service is killed and started again quickly, the port is
// unavailable for a while.
func reuseAddr(_, _ string, c syscall.RawConn) error {
	var sockErr error
	var err = c.Control(func(fd uintptr) {
		sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
	})
	if err != nil {
		return err
	}
	return sockErr
}
