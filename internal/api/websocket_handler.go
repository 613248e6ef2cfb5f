package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/munigo/civic-portal-api/internal/api/dto"
	"github.com/munigo/civic-portal-api/internal/service/pubsub"
	"github.com/munigo/civic-portal-api/internal/tenancy"
	"github.com/munigo/civic-portal-api/pkg/logger"
)

const (
	websocketReadBufferSize        = 1024
	websocketWriteBufferSize       = 1024
	websocketSendChannelBufferSize = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  websocketReadBufferSize,
	WriteBufferSize: websocketWriteBufferSize,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Client struct {
	conn   *websocket.Conn
	cityID string
	send   chan []byte
}

// WebSocketHandler streams tenancy incidents to admin dashboards. Each
// client watches the city bound to its request; the hub keeps one redis
// subscription per watched city.
type WebSocketHandler struct {
	clients     map[*Client]bool
	register    chan *Client
	unregister  chan *Client
	mutex       sync.RWMutex
	logger      *logger.Logger
	pubsub      *pubsub.RedisPubSub
	ctx         context.Context
	cancel      context.CancelFunc
	cityClients map[string]int // Count of clients per city
}

func NewWebSocketHandler(logger *logger.Logger, pubsub *pubsub.RedisPubSub) *WebSocketHandler {
	ctx, cancel := context.WithCancel(context.Background())
	return &WebSocketHandler{
		clients:     make(map[*Client]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		logger:      logger,
		pubsub:      pubsub,
		ctx:         ctx,
		cancel:      cancel,
		cityClients: make(map[string]int),
	}
}

func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	// The tenant middleware runs before this handler; the stream follows
	// the effective city, which for admins honors their session override.
	cityID := tenancy.CityID(c.Request.Context())
	if cityID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"code":  tenancy.CodeCityRequired,
			"error": "A city binding is required for the incident stream",
		})
		return
	}

	// Upgrade HTTP connection to WebSocket
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	// Create and register new client
	client := &Client{
		conn:   conn,
		cityID: cityID,
		send:   make(chan []byte, websocketSendChannelBufferSize),
	}
	h.register <- client

	go h.writePump(client)
	go h.readPump(client)
}

func (h *WebSocketHandler) Start() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.cityClients[client.cityID]++

			// Subscribe to the city's channel if this is the first client
			if h.cityClients[client.cityID] == 1 {
				if err := h.pubsub.Subscribe(h.ctx, client.cityID, h.handlePubSubMessage); err != nil {
					h.logger.Errorf("Failed to subscribe to city %s: %v", client.cityID, err)
				}
			}
			h.mutex.Unlock()

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)

				// Decrement city client count
				h.cityClients[client.cityID]--

				// Unsubscribe if no more clients for this city
				if h.cityClients[client.cityID] == 0 {
					h.pubsub.Unsubscribe(client.cityID)
					delete(h.cityClients, client.cityID)
				}
			}
			h.mutex.Unlock()

		case <-h.ctx.Done():
			return
		}
	}
}

func (h *WebSocketHandler) Stop() {
	h.cancel()
	h.pubsub.Close()
}

// handlePubSubMessage handles incidents received from Redis pub/sub
func (h *WebSocketHandler) handlePubSubMessage(incident *dto.IncidentResponse) {
	message, err := json.Marshal(incident)
	if err != nil {
		h.logger.Errorf("Error marshaling incident: %v", err)
		return
	}

	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for client := range h.clients {
		if client.cityID == incident.CityID {
			select {
			case client.send <- message:
			default: // If the channel is full, close the channel and remove the client
				close(client.send)
				delete(h.clients, client)
				h.cityClients[client.cityID]--

				// Unsubscribe if no more clients for this city
				if h.cityClients[client.cityID] == 0 {
					h.pubsub.Unsubscribe(client.cityID)
					delete(h.cityClients, client.cityID)
				}
			}
		}
	}
}

func (h *WebSocketHandler) writePump(client *Client) {
	defer func() {
		client.conn.Close()
	}()

	for message := range client.send {
		w, err := client.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)

		if err := w.Close(); err != nil {
			return
		}
	}

	// Channel was closed, send close message
	client.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (h *WebSocketHandler) readPump(client *Client) {
	defer func() {
		h.unregister <- client
		client.conn.Close()
	}()

	for {
		messageType, message, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warnf("Unexpected close error for client watching %s: %v", client.cityID, err)
			} else {
				h.logger.Warnf("Read error for client watching %s: %v", client.cityID, err)
			}
			break
		}

		// Handle any actual messages from client (though we don't expect any)
		if messageType == websocket.TextMessage || messageType == websocket.BinaryMessage {
			h.logger.Infof("Received message from client watching %s: %s", client.cityID, string(message))
		}
	}
}
