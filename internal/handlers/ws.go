package handlers

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/synergy-dev/synergysphere/internal/utils"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// sendBuffer bounds the per-connection event queue; a consumer that
	// falls this far behind is dropped.
	sendBuffer = 8
)

// client is one subscribed connection. All writes to the conn, events and
// pings alike, go through writePump: gorilla/websocket supports exactly one
// concurrent writer.
type client struct {
	conn *websocket.Conn
	send chan map[string]interface{}
	done chan struct{}
	once sync.Once
}

// close is idempotent; it releases writePump and unblocks the read loop.
func (c *client) close() {
	c.once.Do(func() {
		close(c.done)
		c.conn.Close()
	})
}

// writePump is the connection's only writer. It drains queued events, keeps
// the ping schedule, and exits when the connection is torn down.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	defer c.close()

	for {
		select {
		case payload := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}

			if err := c.conn.WriteJSON(payload); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}

			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}

// Hub tracks the live connections subscribed to each project's task board.
type Hub struct {
	mu      sync.RWMutex
	clients map[uint]map[*client]bool
	origins []string
}

func NewHub(allowedOrigins []string) *Hub {
	return &Hub{
		clients: make(map[uint]map[*client]bool),
		origins: allowedOrigins,
	}
}

// Broadcast queues the event for every subscriber of the project. Delivery
// happens on each connection's writePump; subscribers with a full queue are
// dropped rather than blocking the request goroutine.
func (h *Hub) Broadcast(projectID uint, event string) {
	payload := map[string]interface{}{
		"type":       event,
		"project_id": projectID,
	}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients[projectID]))

	for c := range h.clients[projectID] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		select {
		case c.send <- payload:
		case <-c.done:
		default:
			log.Printf("Dropping slow websocket client for project %d", projectID)
			c.close()
		}
	}
}

func (h *Hub) register(projectID uint, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[projectID] == nil {
		h.clients[projectID] = make(map[*client]bool)
	}

	h.clients[projectID][c] = true
}

func (h *Hub) remove(projectID uint, c *client) {
	h.mu.Lock()

	if clients, exists := h.clients[projectID]; exists {
		delete(clients, c)

		if len(clients) == 0 {
			delete(h.clients, projectID)
		}
	}

	h.mu.Unlock()
	c.close()
}

func (h *Hub) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")

	for _, allowed := range h.origins {
		if origin == allowed {
			return true
		}
	}

	return false
}

// WebSocket upgrades the connection and subscribes it to the project's task
// events until the client disconnects.
func (h *Handler) WebSocket(ctx *gin.Context) {
	projectID, err := utils.ParseIDParam(ctx, "project_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.svc.Project(projectID); err != nil {
		respondError(ctx, err)
		return
	}

	upgrader := websocket.Upgrader{CheckOrigin: h.hub.checkOrigin}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)

	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	c := &client{
		conn: conn,
		send: make(chan map[string]interface{}, sendBuffer),
		done: make(chan struct{}),
	}

	h.hub.register(projectID, c)
	defer h.hub.remove(projectID, c)

	go c.writePump()

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			break
		}

		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error for project %d: %v", projectID, err)
			}
			break
		}
	}
}
