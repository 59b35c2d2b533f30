package server

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/alyson-g/text-retrieval-engine/internal/ingest"
)

// progressUpgrader mirrors pkg/server/handlers/websocket.go's
// permissive-origin upgrader: restricting origins is a concern for a
// reverse proxy in front of this server, not this handler.
var progressUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ProgressHub fans ingest.Stats ticks out to every connected websocket
// client, repurposing the teacher's change-stream connection-manager
// pattern for build-progress streaming instead of document mutations.
type ProgressHub struct {
	mu    sync.Mutex
	conns map[string]*websocket.Conn
}

// NewProgressHub creates an empty hub.
func NewProgressHub() *ProgressHub {
	return &ProgressHub{conns: make(map[string]*websocket.Conn)}
}

// progressMessage is the JSON frame sent to each connected client.
type progressMessage struct {
	Type               string `json:"type"` // "progress" or "done"
	DocumentsProcessed int    `json:"documentsProcessed"`
	WordsProcessed     int    `json:"wordsProcessed"`
}

// Broadcast sends one progress tick to every connected client,
// dropping (and removing) any connection that errors.
func (h *ProgressHub) Broadcast(stats ingest.Stats) {
	h.broadcast(progressMessage{
		Type:               "progress",
		DocumentsProcessed: stats.DocumentsProcessed,
		WordsProcessed:     stats.WordsProcessed,
	})
}

// Done signals every connected client that the build finished.
func (h *ProgressHub) Done(stats ingest.Stats) {
	h.broadcast(progressMessage{
		Type:               "done",
		DocumentsProcessed: stats.DocumentsProcessed,
		WordsProcessed:     stats.WordsProcessed,
	})
}

func (h *ProgressHub) broadcast(msg progressMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conn := range h.conns {
		if err := conn.WriteJSON(msg); err != nil {
			conn.Close()
			delete(h.conns, id)
		}
	}
}

// HandleWebSocket upgrades the request and registers the connection
// until the client disconnects.
func (h *ProgressHub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := progressUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	id := fmt.Sprintf("progress-%d", time.Now().UnixNano())
	h.mu.Lock()
	h.conns[id] = conn
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.conns, id)
		h.mu.Unlock()
		conn.Close()
	}()

	// Drain and discard any client messages; this is a server->client
	// broadcast channel only. Exit when the client closes the socket.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// ServeProgressOnly starts a standalone HTTP server exposing just
// GET /ingest/progress, for cmd/indexer's "-serve-progress" mode where
// no query Scorer exists yet to build a full Server around. It
// returns immediately; call Shutdown on the returned *http.Server to
// stop it.
func ServeProgressOnly(addr string, hub *ProgressHub) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ingest/progress", hub.HandleWebSocket)

	srv := &http.Server{Addr: addr, Handler: mux}
	go srv.ListenAndServe()
	return srv
}
