package live

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browsers hit this straight from the club frontend.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub fans live score updates out to websocket subscribers, one room per
// match. Slow subscribers are dropped rather than blocking the scorer.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*subscriber]bool
}

type subscriber struct {
	conn *websocket.Conn
	send chan []byte
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*subscriber]bool)}
}

// Broadcast sends one update to every subscriber of the match.
func (h *Hub) Broadcast(matchID string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.rooms[matchID] {
		select {
		case sub.send <- payload:
		default:
			// Subscriber is not keeping up; the write pump will close it
			// when its channel drains or the connection errors.
			log.Debug().Str("match_id", matchID).Msg("dropping update for slow subscriber")
		}
	}
}

// Subscribers reports the current audience of a match.
func (h *Hub) Subscribers(matchID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[matchID])
}

// ServeWS upgrades the request and attaches the connection to the match's
// room until the client goes away.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, matchID string) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	sub := &subscriber{conn: conn, send: make(chan []byte, sendBufferSize)}
	h.add(matchID, sub)

	go sub.writePump()
	go func() {
		defer h.remove(matchID, sub)
		sub.readPump()
	}()
	return nil
}

func (h *Hub) add(matchID string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[matchID]
	if !ok {
		room = make(map[*subscriber]bool)
		h.rooms[matchID] = room
	}
	room[sub] = true
}

func (h *Hub) remove(matchID string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[matchID]
	if !ok {
		return
	}
	if room[sub] {
		delete(room, sub)
		close(sub.send)
	}
	if len(room) == 0 {
		delete(h.rooms, matchID)
	}
}

// readPump discards inbound messages; the stream is one-way. It exists to
// process control frames and detect disconnects.
func (s *subscriber) readPump() {
	defer s.conn.Close()
	s.conn.SetReadLimit(512)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *subscriber) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()
	for {
		select {
		case payload, ok := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
