package websocket

//go:generate go run go.uber.org/mock/mockgen -source=./hub.go -destination=./mocks/hub_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	sendBuffer     = 256
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var errHubStopped = errors.New("websocket hub stopped")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

// Hub fans committed events out to the staff consoles connected to this instance.
type Hub interface {
	Run(ctx context.Context)
	Broadcast(hotelID, department string, payload []byte)
	Serve(w http.ResponseWriter, r *http.Request, hotelID, department string) error
}

type envelope struct {
	hotelID    string
	department string
	payload    []byte
}

type client struct {
	hub        *hubImpl
	conn       *websocket.Conn
	send       chan []byte
	hotelID    string
	department string
}

// wants reports whether the client subscribed to the hotel and, when it picked one, the department.
func (c *client) wants(msg envelope) bool {
	if c.hotelID != msg.hotelID {
		return false
	}

	return c.department == "" || msg.department == "" || c.department == msg.department
}

type hubImpl struct {
	clients    map[*client]struct{}
	broadcast  chan envelope
	register   chan *client
	unregister chan *client
	done       chan struct{}
	mu         sync.Mutex
}

func NewHub() Hub {
	return &hubImpl{
		clients:    make(map[*client]struct{}),
		broadcast:  make(chan envelope, sendBuffer),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
	}
}

// Run dispatches until ctx is cancelled, then closes every connection.
func (h *hubImpl) Run(ctx context.Context) {
	log.Info().Msg("websocket hub started")

	for {
		select {
		case <-ctx.Done():
			close(h.done)

			h.mu.Lock()
			for c := range h.clients {
				close(c.send)
				delete(h.clients, c)
			}
			h.mu.Unlock()

			log.Info().Msg("websocket hub stopped")

			return
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = struct{}{}
			h.mu.Unlock()

			log.Info().Str("hotel_id", c.hotelID).Str("department", c.department).Msg("websocket client connected")
		case c := <-h.unregister:
			h.remove(c)
		case msg := <-h.broadcast:
			h.mu.Lock()
			for c := range h.clients {
				if !c.wants(msg) {
					continue
				}

				select {
				case c.send <- msg.payload:
				default:
					// slow consumer
					close(c.send)
					delete(h.clients, c)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *hubImpl) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)

		log.Info().Str("hotel_id", c.hotelID).Msg("websocket client disconnected")
	}
}

// Broadcast queues payload for every client of hotelID. An empty department reaches all departments.
func (h *hubImpl) Broadcast(hotelID, department string, payload []byte) {
	select {
	case h.broadcast <- envelope{hotelID: hotelID, department: department, payload: payload}:
	default:
		log.Warn().Str("hotel_id", hotelID).Msg("websocket broadcast queue full, dropping event")
	}
}

// Serve upgrades the request and streams the hotel's events until the peer goes away.
func (h *hubImpl) Serve(w http.ResponseWriter, r *http.Request, hotelID, department string) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("failed to upgrade websocket: %w", err)
	}

	c := &client{
		hub:        h,
		conn:       conn,
		send:       make(chan []byte, sendBuffer),
		hotelID:    hotelID,
		department: department,
	}
	select {
	case h.register <- c:
	case <-h.done:
		_ = conn.Close()

		return errHubStopped
	}

	go c.writePump()
	go c.readPump()

	return nil
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})

				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump only keeps the connection alive; consoles never send commands over the socket.
func (c *client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}

		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().Err(err).Str("hotel_id", c.hotelID).Msg("websocket closed unexpectedly")
			}

			return
		}
	}
}
