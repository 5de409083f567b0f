package main

import (
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
)

// webServer creates the http server: viewer page and wasm bundle from the
// ./static folder, websocket frame streaming at /ws.
func webServer(addr string, cfg *sessionConfig) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(cfg))
	mux.Handle("/", http.FileServer(http.Dir("./static")))

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// websocketHandler upgrades the connection and runs a streaming session on it
// until the viewer disconnects.
func websocketHandler(cfg *sessionConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}

		log.Printf("viewer connected: %s", r.RemoteAddr)
		sess := newSession(c, cfg)
		if err := sess.run(r.Context()); err != nil {
			log.Printf("session %s ended: %v", r.RemoteAddr, err)
		}
		c.Close(websocket.StatusNormalClosure, "")
	}
}
