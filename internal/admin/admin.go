// Package admin exposes a read-only websocket mirror of the dispatch
// loop's connection gauge and recent subscriber removals (lag-evictions
// and peer-closed removals), for operator dashboards. It has no bearing on the gRPC dispatch core's correctness:
// it is fed a copy of the same events the core already produces.
package admin

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"geyserfanout/internal/logging"
)

const (
	pingInterval  = 10 * time.Second
	pongWait      = 2 * pingInterval
	evictionRing  = 32
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// Eviction is one entry in the recent-evictions ring shown to operators.
type Eviction struct {
	ID        uint64    `json:"id"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

// frame is the JSON payload pushed to every connected dashboard on a
// table-size change.
type frame struct {
	ConnectionsTotal int        `json:"connections_total"`
	RecentEvictions  []Eviction `json:"recent_evictions"`
}

// Feed fans a stream of dispatch-loop table-size changes out to any number
// of connected websocket dashboards. It implements dispatch.Reporter.
type Feed struct {
	logger *logging.Logger
	auth   Authenticator

	mu        sync.Mutex
	evictions []Eviction
	lastTotal int
	clients   map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan frame
}

// NewFeed constructs an empty Feed.
func NewFeed(logger *logging.Logger) *Feed {
	if logger == nil {
		logger = logging.NewTestLogger()
	}
	return &Feed{logger: logger, clients: make(map[*client]struct{})}
}

// WithAuth gates the feed behind the given authenticator. A nil
// authenticator leaves the feed open, matching the zero-config default.
func (f *Feed) WithAuth(a Authenticator) *Feed {
	f.auth = a
	return f
}

// Registered implements dispatch.Reporter.
func (f *Feed) Registered(total int) {
	f.broadcast(total)
}

// Removed implements dispatch.Reporter.
func (f *Feed) Removed(total int, id uint64, reason string) {
	f.mu.Lock()
	f.evictions = append(f.evictions, Eviction{ID: id, Reason: reason, Timestamp: time.Now()})
	if len(f.evictions) > evictionRing {
		f.evictions = f.evictions[len(f.evictions)-evictionRing:]
	}
	f.mu.Unlock()
	f.broadcast(total)
}

func (f *Feed) broadcast(total int) {
	f.mu.Lock()
	f.lastTotal = total
	fr := frame{ConnectionsTotal: total, RecentEvictions: append([]Eviction(nil), f.evictions...)}
	clients := make([]*client, 0, len(f.clients))
	for c := range f.clients {
		clients = append(clients, c)
	}
	f.mu.Unlock()

	for _, c := range clients {
		select {
		case c.send <- fr:
		default:
			// Slow dashboard; drop the frame rather than block the
			// dispatch loop's reporter callback.
		}
	}
}

// ServeHTTP upgrades the request to a websocket and streams frames until
// the connection closes.
func (f *Feed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if f.auth != nil {
		if err := f.auth.Authenticate(r); err != nil {
			f.logger.Warn("rejecting admin feed connection", logging.Error(err))
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.logger.Error("admin feed upgrade failed", logging.Error(err))
		return
	}

	c := &client{conn: conn, send: make(chan frame, 8)}
	f.mu.Lock()
	f.clients[c] = struct{}{}
	snapshot := frame{ConnectionsTotal: f.lastTotal, RecentEvictions: append([]Eviction(nil), f.evictions...)}
	f.mu.Unlock()
	// Prime the new connection with the current snapshot.
	c.send <- snapshot

	go f.writeLoop(c)
	f.readLoop(c)
}

func (f *Feed) readLoop(c *client) {
	defer f.disconnect(c)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (f *Feed) writeLoop(c *client) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case fr, ok := <-c.send:
			if !ok {
				return
			}
			payload, err := json.Marshal(fr)
			if err != nil {
				continue
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (f *Feed) disconnect(c *client) {
	f.mu.Lock()
	delete(f.clients, c)
	f.mu.Unlock()
	_ = c.conn.Close()
}
