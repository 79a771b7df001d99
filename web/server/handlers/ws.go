package handlers

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/mediasniff/mediasniff/pkg/media"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type feedEvent struct {
	TabID int        `json:"tab"`
	Item  media.Item `json:"item"`
}

// feedHub fans captured items out to every connected feed client.
type feedHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func newFeedHub() *feedHub {
	return &feedHub{clients: make(map[*websocket.Conn]bool)}
}

func (h *feedHub) add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
}

func (h *feedHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

// notify pushes a newly captured item to all clients. Clients that fail a
// write are dropped.
func (h *feedHub) notify(tabID int, item media.Item) {
	event := feedEvent{TabID: tabID, Item: item}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteJSON(event); err != nil {
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

// feedHandler upgrades to a websocket and streams capture events. When the
// client names its tab, connecting doubles as the ready signal for that
// tab's helper.
func (a *API) feedHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	if tab := c.Query("tab"); tab != "" {
		if tabID, err := strconv.Atoi(tab); err == nil {
			a.orch.Readiness().MarkReady(tabID)
		}
	}

	a.feed.add(conn)

	// reads are discarded; the loop exists to detect disconnects
	go func() {
		defer a.feed.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
