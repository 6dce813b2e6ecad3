package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wirebind/rawsock"
	"github.com/wirebind/rawsock/socket"
	"github.com/wirebind/rawsock/sys"
)

func main() {
	var (
		listenAddr  = flag.String("listen", "", "Serve an echo loop on host:port or unix:PATH")
		connectAddr = flag.String("connect", "", "Connect to host:port or unix:PATH")
		payload     = flag.String("send", "hello", "Payload for one-shot client mode")
		backlog     = flag.Int("backlog", 16, "Listen backlog")
		verbose     = flag.Bool("v", false, "Enable debug logging")
		interactive = flag.Bool("i", false, "Interactive chat mode (requires -connect and a terminal)")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		sys.SetLogger(logger.Named("sys"))
		socket.SetLogger(logger.Named("socket"))
	}

	switch {
	case *listenAddr != "":
		if err := serve(*listenAddr, *backlog); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case *connectAddr != "" && *interactive:
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*connectAddr); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case *connectAddr != "":
		if err := send(*connectAddr, *payload); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "Usage: sockrun -listen host:port|unix:PATH")
		fmt.Fprintln(os.Stderr, "       sockrun -connect host:port|unix:PATH [-send payload]")
		fmt.Fprintln(os.Stderr, "       sockrun -connect host:port|unix:PATH -i  (interactive chat)")
		os.Exit(1)
	}
}

// parseTarget turns "unix:PATH" or "a.b.c.d:port" into a bind target.
func parseTarget(addr string) (rawsock.BindTarget, error) {
	if path, ok := strings.CutPrefix(addr, "unix:"); ok {
		return rawsock.UnixTarget{Path: path}, nil
	}

	host, portStr, ok := strings.Cut(addr, ":")
	if !ok {
		return nil, fmt.Errorf("address %q: want host:port or unix:PATH", addr)
	}
	ip, err := rawsock.ParseInet4(host)
	if err != nil {
		return nil, fmt.Errorf("address %q: %w", addr, err)
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("address %q: bad port: %w", addr, err)
	}
	return rawsock.Inet4Target{Addr: ip, Port: uint16(port)}, nil
}

func dial(addr string) (*socket.Socket, error) {
	target, err := parseTarget(addr)
	if err != nil {
		return nil, err
	}

	s, err := socket.New(target.Family(), rawsock.Stream)
	if err != nil {
		return nil, fmt.Errorf("socket: %w", err)
	}
	if err := s.Connect(target); err != nil {
		s.Close()
		return nil, fmt.Errorf("connect: %w", err)
	}
	return s, nil
}

// serve runs a sequential echo loop: accept one peer, echo until it hangs
// up, accept the next.
func serve(addr string, backlog int) error {
	target, err := parseTarget(addr)
	if err != nil {
		return err
	}

	s, err := socket.New(target.Family(), rawsock.Stream)
	if err != nil {
		return fmt.Errorf("socket: %w", err)
	}
	defer s.Close()

	if err := s.Bind(target); err != nil {
		return fmt.Errorf("bind: %w", err)
	}
	if err := s.Listen(backlog); err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	fmt.Printf("Listening on %s\n", addr)

	for {
		peer, from, err := accept(s, target.Family())
		if err != nil {
			// Each failed accept consumed one pending connection; report
			// and keep serving.
			fmt.Fprintf(os.Stderr, "accept: %v\n", err)
			continue
		}
		fmt.Printf("Peer connected: %s\n", from)
		if err := echo(peer); err != nil {
			fmt.Fprintf(os.Stderr, "peer: %v\n", err)
		}
		peer.Close()
	}
}

// accept dispatches to the family-specific accept call and renders the peer
// address.
func accept(s *socket.Socket, family rawsock.Family) (*socket.Socket, string, error) {
	switch family {
	case rawsock.FamilyUnix:
		peer, from, err := s.AcceptUnix()
		if err != nil {
			return nil, "", err
		}
		name := from.Path
		if name == "" {
			name = "unnamed"
		}
		return peer, name, nil
	default:
		peer, from, err := s.AcceptInet4()
		if err != nil {
			return nil, "", err
		}
		return peer, formatInet4(from), nil
	}
}

func formatInet4(t rawsock.Inet4Target) string {
	return fmt.Sprintf("%d.%d.%d.%d:%d",
		byte(t.Addr>>24), byte(t.Addr>>16), byte(t.Addr>>8), byte(t.Addr), t.Port)
}

func echo(peer *socket.Socket) error {
	buf := make([]byte, 4096)
	for {
		n, err := peer.Read(buf)
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		for off := 0; off < n; {
			w, err := peer.Write(buf[off:n])
			if err != nil {
				return err
			}
			off += w
		}
	}
}

// send connects, writes the payload once, and prints whatever comes back.
func send(addr, payload string) error {
	s, err := dial(addr)
	if err != nil {
		return err
	}
	defer s.Close()

	data := []byte(payload)
	for off := 0; off < len(data); {
		n, err := s.Write(data[off:])
		if err != nil {
			return fmt.Errorf("write: %w", err)
		}
		off += n
	}

	buf := make([]byte, 4096)
	n, err := s.Read(buf)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	fmt.Printf("%s\n", buf[:n])
	return nil
}
