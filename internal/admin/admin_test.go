package admin

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialFeed(t *testing.T, feed *Feed) *websocket.Conn {
	t.Helper()
	server := httptest.NewServer(feed)
	t.Cleanup(server.Close)
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestFeedPrimesNewConnection(t *testing.T) {
	feed := NewFeed(nil)
	feed.Registered(1)
	conn := dialFeed(t, feed)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	var fr frame
	if err := json.Unmarshal(payload, &fr); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if fr.ConnectionsTotal != 1 {
		t.Fatalf("expected primed connections_total 1, got %d", fr.ConnectionsTotal)
	}
}

func TestFeedBroadcastsEviction(t *testing.T) {
	feed := NewFeed(nil)
	conn := dialFeed(t, feed)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err != nil {
		t.Fatalf("priming read: %v", err)
	}

	feed.Removed(0, 5, "lagged")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	var fr frame
	if err := json.Unmarshal(payload, &fr); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(fr.RecentEvictions) != 1 || fr.RecentEvictions[0].ID != 5 || fr.RecentEvictions[0].Reason != "lagged" {
		t.Fatalf("expected one lagged eviction for id 5, got %+v", fr.RecentEvictions)
	}
}
