package spectate

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/reef-arcade/parameter"
	"github.com/lixenwraith/reef-arcade/status"
)

type message struct {
	typ  websocket.MessageType
	data []byte
}

type client struct {
	id     string
	format string
	send   chan message
}

// Hub fans frames out to subscribers; a slow subscriber loses frames, never stalls the publisher
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	done    chan struct{}
	once    sync.Once

	defaultFormat string
	metrics       *status.Registry
	log           *slog.Logger
}

type HubOption func(*Hub)

func WithFormat(format string) HubOption { return func(h *Hub) { h.defaultFormat = format } }

func WithMetrics(r *status.Registry) HubOption { return func(h *Hub) { h.metrics = r } }

func WithLogger(l *slog.Logger) HubOption { return func(h *Hub) { h.log = l } }

func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		clients:       make(map[*client]struct{}),
		done:          make(chan struct{}),
		defaultFormat: FormatMsgpack,
	}
	for _, o := range opts {
		o(h)
	}
	if h.metrics == nil {
		h.metrics = status.NewRegistry()
	}
	if h.log == nil {
		h.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return h
}

// Close ends every subscriber stream; later subscribers are closed on arrival
func (h *Hub) Close() {
	h.once.Do(func() { close(h.done) })
}

// Clients returns the current subscriber count
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish encodes f once per format in use and queues it on every subscriber
func (h *Hub) Publish(f Frame) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.clients) == 0 {
		return
	}

	encoded := make(map[string]message, 2)
	for c := range h.clients {
		msg, ok := encoded[c.format]
		if !ok {
			data, typ, err := Encode(c.format, &f)
			if err != nil {
				h.log.Error("frame encode failed", "format", c.format, "error", err)
				continue
			}
			msg = message{typ: typ, data: data}
			encoded[c.format] = msg
		}
		select {
		case c.send <- msg:
		default:
			h.metrics.Inc(status.SpectateDropped)
		}
	}
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	h.metrics.Gauges.Get(status.SpectateClients).Set(float64(n))
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	n := len(h.clients)
	h.mu.Unlock()
	h.metrics.Gauges.Get(status.SpectateClients).Set(float64(n))
}

// ServeHTTP upgrades to a websocket and streams frames until either side leaves
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = h.defaultFormat
	}
	if !ValidFormat(format) {
		http.Error(w, ErrUnknownFormat.Error(), http.StatusBadRequest)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		h.log.ErrorContext(r.Context(), "websocket accept failed", "error", err)
		return
	}
	defer conn.CloseNow()

	c := &client{id: uuid.NewString(), format: format, send: make(chan message, parameter.SpectateClientBuffer)}
	h.add(c)
	defer h.remove(c)
	h.log.InfoContext(r.Context(), "spectator joined", "client", c.id, "format", format)

	// Viewers never send; CloseRead drains control frames and cancels on disconnect
	ctx := conn.CloseRead(r.Context())
	err = h.writeLoop(ctx, conn, c)
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		err = nil
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		h.log.WarnContext(r.Context(), "spectator dropped", "client", c.id, "error", err)
		return
	}
	conn.Close(websocket.StatusNormalClosure, "")
	h.log.InfoContext(r.Context(), "spectator left", "client", c.id)
}

func (h *Hub) writeLoop(ctx context.Context, conn *websocket.Conn, c *client) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-h.done:
			return nil
		case msg := <-c.send:
			wctx, cancel := context.WithTimeout(ctx, parameter.SpectateWriteTimeout)
			err := conn.Write(wctx, msg.typ, msg.data)
			cancel()
			if err != nil {
				return err
			}
		}
	}
}

// Serve runs an HTTP server for handler until ctx is cancelled, then shuts it down
func Serve(ctx context.Context, addr string, handler http.Handler, log *slog.Logger) error {
	srv := &http.Server{Addr: addr, Handler: handler}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.InfoContext(gctx, "spectate listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), parameter.SpectateWriteTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
