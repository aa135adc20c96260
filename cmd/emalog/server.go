package main

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

var upgrader = websocket.Upgrader{} // use default options

// server pushes every record to all connected websockets and replays
// the latest record to newcomers.
type server struct {
	log zerolog.Logger

	datalock sync.Mutex
	latest   *Record
	history  []Record

	clientslock   sync.Mutex
	clientStreams []*websocket.Conn
}

func newServer(history []Record, log zerolog.Logger) *server {
	return &server{log: log, history: history}
}

// run serves the live page until the daemon exits.
func (srv *server) run(host string) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", srv.pageHandler)
	mux.HandleFunc("/stream", srv.streamHandler)
	mux.HandleFunc("/history", srv.historyHandler)
	srv.log.Info().Str("host", host).Msg("serving live page")
	if err := http.ListenAndServe(host, mux); err != nil {
		srv.log.Error().Err(err).Msg("http server stopped")
	}
}

// broadcast caches the record and fans it out. Dead sockets are
// dropped on write failure.
func (srv *server) broadcast(rec Record) {
	srv.datalock.Lock()
	srv.latest = &rec
	srv.history = append(srv.history, rec)
	srv.datalock.Unlock()

	data, err := json.Marshal(rec)
	if err != nil {
		srv.log.Error().Err(err).Msg("failed to marshal record")
		return
	}

	srv.clientslock.Lock()
	defer srv.clientslock.Unlock()
	dead := []int{}
	for i, cs := range srv.clientStreams {
		if err := cs.WriteMessage(websocket.TextMessage, data); err != nil {
			dead = append(dead, i)
		}
	}
	for i := len(dead) - 1; i > -1; i-- {
		idx := dead[i]
		srv.clientStreams[idx].Close()
		srv.clientStreams = append(srv.clientStreams[:idx], srv.clientStreams[idx+1:]...)
	}
}

func (srv *server) streamHandler(w http.ResponseWriter, r *http.Request) {
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		srv.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	srv.datalock.Lock()
	latest := srv.latest
	srv.datalock.Unlock()
	if latest != nil {
		c.WriteJSON(latest)
	}

	srv.clientslock.Lock()
	srv.clientStreams = append(srv.clientStreams, c)
	srv.clientslock.Unlock()

	// Drain the client side; we only push.
	go func() {
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (srv *server) pageHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(page))
}

func (srv *server) historyHandler(w http.ResponseWriter, r *http.Request) {
	srv.datalock.Lock()
	defer srv.datalock.Unlock()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(srv.history)
}
