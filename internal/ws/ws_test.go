package ws

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/events"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return conn
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d clients, got %d", n, hub.ClientCount())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestNotifier_BroadcastsToSubscribers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil)
	go hub.Run(ctx)

	srv := httptest.NewServer(NewMux(NewHandler(hub, nil, nil)))
	defer srv.Close()

	conn := dial(t, srv)
	defer conn.Close()
	waitForClients(t, hub, 1)

	NewNotifier(hub).PreferencesUpdated("theme", "light")

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var evt Event
	if err := json.Unmarshal(msg, &evt); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if evt.Type != EventPreferencesUpdated || evt.Key != "theme" || evt.Value != "light" {
		t.Fatalf("unexpected event %+v", evt)
	}
	if evt.Timestamp == "" {
		t.Fatalf("expected timestamp")
	}
}

func TestHandler_RejectsForeignOrigin(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(NewMux(NewHandler(hub, []string{"http://allowed.test"}, nil)))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/events"
	header := map[string][]string{"Origin": {"http://evil.test"}}
	if _, _, err := websocket.DefaultDialer.Dial(url, header); err == nil {
		t.Fatalf("expected handshake failure for foreign origin")
	}
}

func TestNotifier_NilHubIsNoop(t *testing.T) {
	var n *Notifier
	n.CacheCleared("")
	NewNotifier(nil).PreferencesReset()
}

func TestHub_BroadcastWithoutRunDoesNotBlock(t *testing.T) {
	hub := NewHub(nil)
	for i := 0; i < 2000; i++ {
		hub.Broadcast([]byte("x"))
	}
}
