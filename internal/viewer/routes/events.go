// internal/viewer/routes/events.go

package routes

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 16384,
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || origin == "http://"+r.Host || origin == "https://"+r.Host
	},
}

const wsWriteWait = 5 * time.Second

func registerEventRoutes(mux *http.ServeMux, d Deps) {
	if d.Hub == nil {
		return
	}

	// GET /api/events/recent lets a fresh page replay the last few events.
	handleGet(mux, "/api/events/recent", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, d.Hub.Recent())
	})

	// GET /api/events streams IDE events as JSON text frames. The socket is
	// one-way; anything the browser sends is read and dropped.
	mux.HandleFunc("/api/events", func(w http.ResponseWriter, r *http.Request) {
		conn, err := wsUpgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Debugf("events: websocket upgrade: %v", err)
			return
		}
		defer conn.Close()

		ch, cancel := d.Hub.Subscribe()
		defer cancel()

		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ping := time.NewTicker(25 * time.Second)
		defer ping.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case <-closed:
				return
			case <-ping.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
					return
				}
			case e, ok := <-ch:
				if !ok {
					return
				}
				_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
				if err := conn.WriteJSON(e); err != nil {
					return
				}
			}
		}
	})
}
