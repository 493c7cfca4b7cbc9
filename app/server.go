package app

import (
	"net"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"helios/hal"
)

// streamServer mirrors rendered frames to websocket clients and accepts
// scene-selection control messages. It never touches render state directly:
// requested scene changes are parked in an atomic slot the render step drains
// at frame boundaries.
type streamServer struct {
	log hal.Logger

	upgrader websocket.Upgrader
	ln       net.Listener
	srv      *http.Server

	mu      sync.RWMutex
	clients map[*websocket.Conn]*sync.Mutex

	// pendingScene holds a requested 1-based scene index, 0 when none.
	pendingScene atomic.Int32
}

// frameHeader precedes each binary RGBA frame on the wire.
type frameHeader struct {
	Type   string `json:"type"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Scene  int    `json:"scene"`
	Tick   uint64 `json:"tick"`
}

// controlMessage is what clients may send back.
type controlMessage struct {
	Scene int `json:"scene"`
}

func newStreamServer(log hal.Logger) *streamServer {
	return &streamServer{
		log: log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: map[*websocket.Conn]*sync.Mutex{},
	}
}

// start serves /ws on addr in a background goroutine. The listener is bound
// synchronously so a failing address is reported right away and stop always
// has something to close.
func (s *streamServer) start(addr string) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		s.log.WriteLineString("stream: " + err.Error())
		return
	}
	s.ln = ln

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	s.srv = &http.Server{Handler: mux}
	s.log.WriteLineString("stream: listening on " + ln.Addr().String())
	go func() {
		if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.log.WriteLineString("stream: " + err.Error())
		}
	}()
}

// addr returns the bound listen address, empty when not listening.
func (s *streamServer) addr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// stop closes the listener and every connected client.
func (s *streamServer) stop() {
	if s.srv != nil {
		_ = s.srv.Close()
	}
	s.mu.Lock()
	for c := range s.clients {
		c.Close()
	}
	s.clients = map[*websocket.Conn]*sync.Mutex{}
	s.mu.Unlock()
}

func (s *streamServer) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WriteLineString("stream: upgrade: " + err.Error())
		return
	}
	defer conn.Close()

	connMu := &sync.Mutex{}
	s.mu.Lock()
	s.clients[conn] = connMu
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
	}()

	for {
		var msg controlMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if msg.Scene != 0 {
			s.pendingScene.Store(int32(msg.Scene))
		}
	}
}

// takePendingScene drains the requested scene index, 0 when none.
func (s *streamServer) takePendingScene() int {
	return int(s.pendingScene.Swap(0))
}

// broadcast sends a header plus the raw RGBA frame to every client, dropping
// clients that error out.
func (s *streamServer) broadcast(hdr frameHeader, pix []byte) {
	s.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(s.clients))
	locks := make([]*sync.Mutex, 0, len(s.clients))
	for c, l := range s.clients {
		conns = append(conns, c)
		locks = append(locks, l)
	}
	s.mu.RUnlock()

	for i, c := range conns {
		locks[i].Lock()
		err := c.WriteJSON(hdr)
		if err == nil {
			err = c.WriteMessage(websocket.BinaryMessage, pix)
		}
		locks[i].Unlock()
		if err != nil {
			s.mu.Lock()
			delete(s.clients, c)
			s.mu.Unlock()
			c.Close()
		}
	}
}
