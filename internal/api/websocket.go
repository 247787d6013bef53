package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WebSocket upgrader configuration
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // single-user local app, any origin may connect
	},
}

// Hub tracks live dashboard connections and fans summaries out to them.
type Hub struct {
	mu      sync.Mutex
	clients map[*wsClient]bool
	logger  *zap.Logger
}

type wsClient struct {
	conn *websocket.Conn
	send chan []byte
	hub  *Hub
}

func newHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[*wsClient]bool),
		logger:  logger,
	}
}

// handleWebSocket upgrades the connection and starts the pumps.
func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Warn("failed to upgrade connection", zap.Error(err))
		return
	}

	client := &wsClient{
		conn: conn,
		send: make(chan []byte, 16),
		hub:  s.hub,
	}
	s.hub.register(client)

	go client.writePump()
	go client.readPump()

	// New subscribers get the current state right away.
	if data, err := json.Marshal(wsMessage{Type: "summary", Summary: s.buildTodaySummary(time.Now())}); err == nil {
		client.trySend(data)
	}
}

type wsMessage struct {
	Type    string               `json:"type"`
	Summary TodaySummaryResponse `json:"summary"`
}

// BroadcastSummary pushes the refreshed today-summary to every connected
// client. Slow clients are skipped rather than blocked on.
func (h *Hub) BroadcastSummary(summary TodaySummaryResponse) {
	data, err := json.Marshal(wsMessage{Type: "summary", Summary: summary})
	if err != nil {
		h.logger.Error("failed to marshal summary", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		client.trySend(data)
	}
}

func (h *Hub) register(c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = true
}

func (h *Hub) unregister(c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c] {
		delete(h.clients, c)
		close(c.send)
	}
}

func (c *wsClient) trySend(data []byte) {
	select {
	case c.send <- data:
	default:
		c.hub.logger.Warn("websocket buffer full, dropping message")
	}
}

// readPump drains client frames; the feed is one-directional but reads keep
// pong handling alive and detect closes.
func (c *wsClient) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(1024)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("websocket error", zap.Error(err))
			}
			break
		}
	}
}

// writePump pumps messages from the hub to the connection.
func (c *wsClient) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
