package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gorilla/websocket"

	"founditBack/internal/models"
)

const (
	wsWriteDeadline = 5 * time.Second
	wsReadDeadline  = 120 * time.Second
	wsPingInterval  = 15 * time.Second
)

// WebSocketManager fans decided claims out to connected admin dashboards.
type WebSocketManager struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan models.ClaimEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan models.ClaimEvent),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Broadcast queues a claim event for delivery to every connected dashboard.
// Safe to call from any goroutine.
func (ws *WebSocketManager) Broadcast(event models.ClaimEvent) {
	ws.broadcast <- event
}

func (ws *WebSocketManager) Run() {
	for {
		select {
		case conn := <-ws.register:
			ws.clients[conn] = true
		case conn := <-ws.unregister:
			if _, ok := ws.clients[conn]; ok {
				conn.Close()
				delete(ws.clients, conn)
			}
		case event := <-ws.broadcast:
			for conn := range ws.clients {
				conn.SetWriteDeadline(time.Now().Add(wsWriteDeadline))
				if err := conn.WriteJSON(event); err != nil {
					conn.Close()
					delete(ws.clients, conn)
				}
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// claimFeed upgrades an admin connection onto the claim event stream. The
// token travels as a query parameter since websocket clients cannot set an
// Authorization header from the browser.
func (app *application) claimFeed(w http.ResponseWriter, r *http.Request) {
	tokenStr := r.URL.Query().Get("token")
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSigningKey(), nil
	})
	if err != nil || !token.Valid || claims.Role != models.RoleAdmin {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.errorLog.Printf("websocket upgrade error: %v", err)
		return
	}
	app.wsManager.register <- conn

	go app.readClaimFeed(conn)
}

// readClaimFeed drains control frames so pongs extend the read deadline, and
// unregisters the connection when the peer goes away.
func (app *application) readClaimFeed(conn *websocket.Conn) {
	defer func() {
		app.wsManager.unregister <- conn
	}()

	conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
	})

	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()
	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteDeadline))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
