package live

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Zachkp/cyberfolio/internal/clock"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 8 << 10
)

// Handler upgrades requests to websocket sessions.
type Handler struct {
	// Options builds the session options for a request.
	Options   func(r *http.Request) Options
	QueueSize int
	Upgrader  websocket.Upgrader
}

// NewHandler creates a Handler with a same-origin upgrader.
func NewHandler(options func(r *http.Request) Options, queueSize int) *Handler {
	if queueSize < 1 {
		queueSize = 64
	}
	return &Handler{
		Options:   options,
		QueueSize: queueSize,
		Upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("live: upgrade failed: %v", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)

	opts := h.Options(r)
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	loop := clock.NewLoop(h.QueueSize)
	out := make(chan Patch, h.QueueSize)

	session := NewSession(opts, loop, func(p Patch) {
		select {
		case out <- p:
		case <-ctx.Done():
		}
	})

	go loop.Run()
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case p := <-out:
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(p); err != nil {
					logger.Printf("live: write failed: %v", err)
					return
				}
			}
		}
	}()

	loop.Post(session.Mount)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Printf("live: read failed: %v", err)
			}
			break
		}
		if ctx.Err() != nil {
			break
		}
		var ev Event
		if err := json.Unmarshal(data, &ev); err != nil {
			logger.Printf("live: malformed event: %v", err)
			continue
		}
		if !loop.Post(func() { session.Handle(ev) }) {
			break
		}
	}

	// Unmount on the loop so it cannot race a timer callback, then close
	// the loop, which stops anything Unmount did not.
	cancel()
	unmounted := make(chan struct{})
	if loop.Post(func() {
		session.Unmount()
		close(unmounted)
	}) {
		select {
		case <-unmounted:
		case <-loop.Done():
		}
	}
	loop.Close()
	<-writerDone
}
