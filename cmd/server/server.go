// Command server hosts the living Mandelbrot explorer. It serves the viewer
// page from ./static and streams rendered frames to browsers over a
// websocket, applying viewer commands between frames.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/mandelflow/mandelflow"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	addr := flag.String("addr", ":8080", "http listen address")
	fps := flag.Int("fps", 30, "target frames per second")
	workers := flag.Int("workers", runtime.NumCPU(), "render worker goroutines per session")
	view := flag.String("view", "home", "starting landmark view")
	flag.Parse()

	startView, ok := mandelflow.LandmarkView(*view)
	if !ok {
		return fmt.Errorf("unknown view %q (have %v)", *view, mandelflow.LandmarkNames())
	}
	if *fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", *fps)
	}
	if *workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", *workers)
	}

	// Each websocket connection gets a private scene and renderer, so one
	// viewer's zooming never disturbs another's.
	srv := webServer(*addr, &sessionConfig{
		startView: startView,
		fps:       *fps,
		workers:   *workers,
	})

	log.Printf("listening on http://localhost%s", *addr)
	return srv.ListenAndServe()
}
