// Package server exposes tracking sessions over WebSocket. Clients issue
// play/add/undo/reset/search commands and receive the full session view
// after every successful mutation.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/winstonung/cr-cycle-server-go/internal/catalog"
	"github.com/winstonung/cr-cycle-server-go/internal/config"
	"github.com/winstonung/cr-cycle-server-go/internal/session"
	"go.uber.org/zap"
)

const clientSendBuffer = 256

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client is one connected WebSocket peer, attached to at most one session.
type Client struct {
	conn      *websocket.Conn
	send      chan []byte
	sessionID string
}

// clientRequest pairs a parsed command with the client that sent it.
type clientRequest struct {
	client *Client
	req    Request
}

// Hub routes messages between connected clients and their sessions. The
// clients map is touched only from Run, so registration, command handling
// and display refreshes all serialize on the hub goroutine.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	requests   chan clientRequest

	sessions *session.Manager
	catalog  *catalog.Catalog
	logger   *zap.Logger
}

// NewHub creates a hub over the given session manager and catalog.
func NewHub(sessions *session.Manager, cat *catalog.Catalog, logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		requests:   make(chan clientRequest),
		sessions:   sessions,
		catalog:    cat,
		logger:     logger,
	}
}

// Run processes client registration and commands until the process exits.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.logger.Debug("client registered")

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Debug("client unregistered",
					zap.String("session_id", client.sessionID),
				)
			}

		case cr := <-h.requests:
			h.handleRequest(cr.client, cr.req)
		}
	}
}

// broadcastSessionState pushes the current view to every client attached
// to the session. This is the display-refresh step that follows each
// successful mutation.
func (h *Hub) broadcastSessionState(s *session.Session) {
	payload, err := json.Marshal(Response{
		Type: ResponseSessionState,
		Data: s.View(),
	})
	if err != nil {
		h.logger.Error("failed to marshal session state", zap.Error(err))
		return
	}

	for client := range h.clients {
		if client.sessionID != s.ID {
			continue
		}
		select {
		case client.send <- payload:
		default:
			// Slow client; drop this refresh rather than block the hub.
		}
	}
}

func (c *Client) readPump(h *Hub) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var req Request
		if err := json.Unmarshal(message, &req); err != nil {
			h.logger.Warn("dropping malformed message", zap.Error(err))
			c.sendResponse(h, Response{Type: ResponseError, Error: "malformed message"})
			continue
		}

		h.requests <- clientRequest{client: c, req: req}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

func (c *Client) sendResponse(h *Hub, resp Response) {
	payload, err := json.Marshal(resp)
	if err != nil {
		h.logger.Error("failed to marshal response", zap.Error(err))
		return
	}
	select {
	case c.send <- payload:
	default:
	}
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &Client{
		conn: conn,
		send: make(chan []byte, clientSendBuffer),
	}

	h.register <- client

	go client.writePump()
	go client.readPump(h)
}

// StartWebSocketServer runs the WebSocket listener. Blocks until the
// listener fails.
func StartWebSocketServer(cfg config.WebSocketConfig, sessions *session.Manager, cat *catalog.Catalog, logger *zap.Logger) error {
	hub := NewHub(sessions, cat, logger)
	go hub.Run()

	mux := http.NewServeMux()
	mux.HandleFunc(cfg.Path, hub.serveWS)

	logger.Info("starting WebSocket server",
		zap.String("address", cfg.Address),
		zap.String("path", cfg.Path),
	)
	return http.ListenAndServe(cfg.Address, mux)
}
