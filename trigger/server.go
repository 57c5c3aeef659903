package trigger

import (
	"errors"
	"log"
	"net"
	"net/http"

	"github.com/coder/websocket"
)

// Server is the loopback WebSocket trigger endpoint: an external tool
// fires the two activation operations by sending the command name as a
// text message to ws://<addr>/trigger. Replies are human-readable and
// observational only.
type Server struct {
	bus  *Bus
	srv  *http.Server
	addr net.Addr
}

// StartServer listens on addr and serves the trigger endpoint in the
// background. The caller should keep addr on a loopback interface; this
// is a developer control surface, not a public API.
func StartServer(bus *Bus, addr string) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	s := &Server{bus: bus, addr: ln.Addr()}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /trigger", s.handleTrigger)
	s.srv = &http.Server{Handler: mux}

	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[trigger] server stopped: %v", err)
		}
	}()

	log.Printf("[trigger] listening on ws://%s/trigger", s.addr)
	return s, nil
}

// Addr reports the bound listen address.
func (s *Server) Addr() string { return s.addr.String() }

// Close stops the listener. Open connections are dropped.
func (s *Server) Close() error { return s.srv.Close() }

func (s *Server) handleTrigger(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Printf("[trigger] accept failed: %v", err)
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()
	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			return // client gone; routine per connection, nothing to clean up
		}
		if typ != websocket.MessageText {
			continue
		}

		cmd, ok := Parse(string(data))
		if !ok {
			_ = conn.Write(ctx, websocket.MessageText, []byte("unknown command (try: activate, disable)"))
			continue
		}
		log.Printf("[trigger] socket: %s", cmd)
		s.bus.Post(cmd)
		_ = conn.Write(ctx, websocket.MessageText, []byte("ok: "+cmd.String()))
	}
}
