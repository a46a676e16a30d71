package websocket_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hotelops/infras/websocket"

	gorilla "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func dial(t *testing.T, server *httptest.Server, department string) *gorilla.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/?department=" + department

	conn, resp, err := gorilla.DefaultDialer.Dial(url, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	assert.NoError(t, err)

	return conn
}

func TestHubBroadcast(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := websocket.NewHub()
	go hub.Run(ctx)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r, "hotel-1", r.URL.Query().Get("department"))
	}))
	defer server.Close()

	housekeeping := dial(t, server, "housekeeping")
	defer housekeeping.Close()

	frontDesk := dial(t, server, "front_desk")
	defer frontDesk.Close()

	// registration happens on the hub goroutine
	time.Sleep(50 * time.Millisecond)

	hub.Broadcast("hotel-2", "housekeeping", []byte(`{"title":"other hotel"}`))
	hub.Broadcast("hotel-1", "housekeeping", []byte(`{"title":"Room 101 Needs Cleaning"}`))
	hub.Broadcast("hotel-1", "front_desk", []byte(`{"title":"Room 101 Out of Order"}`))

	_ = housekeeping.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, message, err := housekeeping.ReadMessage()
	assert.NoError(t, err)
	assert.JSONEq(t, `{"title":"Room 101 Needs Cleaning"}`, string(message))

	_ = frontDesk.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, message, err = frontDesk.ReadMessage()
	assert.NoError(t, err)
	assert.JSONEq(t, `{"title":"Room 101 Out of Order"}`, string(message))
}
