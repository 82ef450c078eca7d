package ws

import (
	"context"
	"net/http"
	"strconv"
	"sync"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/middlewares"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/pkg/logger"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/pkg/resp"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/services"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// TrackingHub fans tracking updates out to the websocket clients watching
// an order (one room per order id).
type TrackingHub struct {
	clients    map[uint]map[*websocket.Conn]bool // orderID -> set of clients
	broadcast  chan BroadcastMessage
	register   chan Subscription
	unregister chan Subscription
	done       chan struct{}
	mu         sync.Mutex
	service    *services.TrackingService
	log        *logger.Logger
}

type Subscription struct {
	Conn    *websocket.Conn
	OrderID uint
	UserID  uint
}

type BroadcastMessage struct {
	OrderID uint
	View    services.LiveTracking
}

func NewTrackingHub(log *logger.Logger) *TrackingHub {
	if log == nil {
		log = logger.Nop()
	}
	return &TrackingHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan BroadcastMessage, 64),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		done:       make(chan struct{}),
		log:        log.WithComponent("ws"),
	}
}

// SetService wires the tracking service after construction; the service
// itself needs the hub as its notifier.
func (h *TrackingHub) SetService(s *services.TrackingService) { h.service = s }

// NotifyTracking never blocks the caller; a full queue drops the update and
// clients catch up on the next one.
func (h *TrackingHub) NotifyTracking(orderID uint, view services.LiveTracking) {
	select {
	case h.broadcast <- BroadcastMessage{OrderID: orderID, View: view}:
	default:
		h.log.Warn("tracking broadcast queue full, dropping update", "order_id", orderID)
	}
}

// Run owns the room map until ctx is cancelled.
func (h *TrackingHub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for _, room := range h.clients {
				for conn := range room {
					conn.Close()
				}
			}
			h.clients = make(map[uint]map[*websocket.Conn]bool)
			h.mu.Unlock()
			return

		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.OrderID] == nil {
				h.clients[sub.OrderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.OrderID][sub.Conn] = true
			h.mu.Unlock()
			middlewares.TrackLiveClient(1)

		case sub := <-h.unregister:
			h.mu.Lock()
			h.remove(sub.OrderID, sub.Conn)
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.OrderID] {
				if err := conn.WriteJSON(msg.View); err != nil {
					h.log.Warn("ws write error", "order_id", msg.OrderID, "error", err)
					h.remove(msg.OrderID, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// remove expects h.mu held.
func (h *TrackingHub) remove(orderID uint, conn *websocket.Conn) {
	room := h.clients[orderID]
	if _, ok := room[conn]; !ok {
		return
	}
	delete(room, conn)
	if len(room) == 0 {
		delete(h.clients, orderID)
	}
	conn.Close()
	middlewares.TrackLiveClient(-1)
}

// Subscribers reports how many clients watch an order.
func (h *TrackingHub) Subscribers(orderID uint) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[orderID])
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket serves GET /api/order-tracking/ws/:orderId.
func (h *TrackingHub) HandleWebSocket(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid order id")
		return
	}
	orderID := uint(id)
	who := services.Requester{ID: utils.CurrentUserID(c), Role: utils.CurrentRole(c)}

	view, ok, err := h.service.LiveOne(c.Request.Context(), who, orderID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !ok {
		resp.NotFound(c, "Order not found")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("ws upgrade error", "error", err)
		return
	}

	// first frame goes out before the hub may write to this conn
	if view != nil {
		if err := conn.WriteJSON(view); err != nil {
			conn.Close()
			return
		}
	}

	sub := Subscription{Conn: conn, OrderID: orderID, UserID: who.ID}
	if !h.send(h.register, sub) {
		conn.Close()
		return
	}
	go h.listen(sub)
}

// send hands sub to Run, or reports false once the hub has stopped.
func (h *TrackingHub) send(ch chan Subscription, sub Subscription) bool {
	select {
	case ch <- sub:
		return true
	case <-h.done:
		return false
	}
}

// listen only watches for the client going away; clients never send data.
func (h *TrackingHub) listen(sub Subscription) {
	defer h.send(h.unregister, sub)

	sub.Conn.SetReadLimit(512)
	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
