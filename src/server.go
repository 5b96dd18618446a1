package microqr

/*------------------------------------------------------------------
 *
 * Purpose:	Provide symbols to client applications over TCP.
 *
 * Description:	A very simple line oriented protocol.  The client sends
 *		one digit string per line.  For each one the server
 *		replies with the rendered symbol followed by an empty
 *		line, or with a single line
 *
 *			ERR <reason>
 *
 *		if it could not be encoded.  Empty lines are ignored.
 *		The connection stays open until the client closes it,
 *		so many symbols can be requested one after another.
 *
 *		Any number of clients can be attached at the same time.
 *
 *---------------------------------------------------------------*/

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// maxRequestLine bounds a request.  Real requests are at most 7 digits.
const maxRequestLine = 256

// Server answers symbol requests.  Create one with NewServer.
type Server struct {
	Port       int
	Format     Format
	ModuleSize int // SVG only.
	Quiet      int
	Encoder    *Encoder
	Logger     *log.Logger
}

// NewServer returns a Server set up from cfg.  Only the text based
// formats make sense on a line oriented connection.
func NewServer(cfg *Config) (*Server, error) {
	if cfg.Format != FormatText && cfg.Format != FormatHalf && cfg.Format != FormatSVG {
		return nil, fmt.Errorf("format %q can't be served, use %s, %s or %s", cfg.Format, FormatText, FormatHalf, FormatSVG)
	}

	var s = &Server{
		Port:       cfg.ListenPort,
		Format:     cfg.Format,
		ModuleSize: cfg.ModuleSize,
		Quiet:      cfg.QuietZone,
		Encoder:    &Encoder{Overflow: cfg.Overflow}, //nolint:exhaustruct
		Logger:     logger,
	}
	return s, nil
}

// Listen opens the TCP port.
func (s *Server) Listen(ctx context.Context) (net.Listener, error) {
	var lc = net.ListenConfig{Control: reuseAddr} //nolint:exhaustruct

	var listener, err = lc.Listen(ctx, "tcp", fmt.Sprintf(":%d", s.Port))
	if err != nil {
		return nil, fmt.Errorf("listening on port %d: %w", s.Port, err)
	}
	return listener, nil
}

// ListenAndServe opens the port and serves clients until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	var listener, err = s.Listen(ctx)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listener)
}

/*-------------------------------------------------------------------
 *
 * Name:        Serve
 *
 * Purpose:     Wait for connection requests from client applications.
 *
 * Inputs:	ctx		- Cancelling it closes the listener and every
 *				  client connection.
 *
 *		listener	- Where to accept connections.  Serve closes it.
 *
 * Returns:	nil after ctx is cancelled, otherwise the accept error.
 *		Doesn't return until all client connections are done.
 *
 *--------------------------------------------------------------------*/

func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	var stop = context.AfterFunc(ctx, func() { listener.Close() })
	defer stop()

	var wg sync.WaitGroup
	defer wg.Wait()

	s.Logger.Info("ready to accept clients", "addr", listener.Addr().String())

	for {
		var conn, acceptErr = listener.Accept()
		if acceptErr != nil {
			if ctx.Err() != nil {
				return nil
			}
			listener.Close()
			return fmt.Errorf("accept: %w", acceptErr)
		}

		s.Logger.Info("attached to client", "remote", conn.RemoteAddr().String())

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer conn.Close()

			var closeOnCancel = context.AfterFunc(ctx, func() { conn.Close() })
			defer closeOnCancel()

			var err = s.ServeConn(conn)
			if err != nil && ctx.Err() == nil {
				s.Logger.Warn("client connection failed", "remote", conn.RemoteAddr().String(), "err", err)
			}
			s.Logger.Info("client detached", "remote", conn.RemoteAddr().String())
		}()
	}
}

// ServeConn answers requests from one client until it closes the
// connection.  Closing is not an error.
func (s *Server) ServeConn(rw io.ReadWriter) error {
	var scanner = bufio.NewScanner(rw)
	scanner.Buffer(make([]byte, 0, 64), maxRequestLine)

	var w = bufio.NewWriter(rw)

	for scanner.Scan() {
		var request = strings.TrimSpace(scanner.Text())
		if request == "" {
			continue
		}

		if err := s.answer(w, request); err != nil {
			return err
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	var err = scanner.Err()
	if errors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}

func (s *Server) answer(w io.Writer, request string) error {
	var m, err = s.Encoder.Encode(request)
	if err != nil {
		s.Logger.Debug("request refused", "request", request, "err", err)
		var _, writeErr = fmt.Fprintf(w, "ERR %s\n", err)
		return writeErr
	}

	var renderErr error
	switch s.Format {
	case FormatHalf:
		renderErr = RenderHalfBlocks(w, &m, s.Quiet)
	case FormatSVG:
		renderErr = RenderSVG(w, &m, s.ModuleSize*(Size+2*s.Quiet), s.Quiet)
	default:
		renderErr = RenderText(w, &m, s.Quiet)
	}
	if renderErr != nil {
		return renderErr
	}

	var _, writeErr = io.WriteString(w, "\n")
	return writeErr
}
