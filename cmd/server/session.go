package main

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"log"
	"time"

	"github.com/coder/websocket"

	"github.com/mandelflow/mandelflow"
)

type sessionConfig struct {
	startView mandelflow.View
	fps       int
	workers   int
}

// command is one control message from the viewer page.
type command struct {
	Op string  `json:"op"` // zoomin, zoomout, reset, flow, rays, resize
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	W  int     `json:"w"`
	H  int     `json:"h"`
}

// session streams frames for a single viewport. The scene is touched only
// from the render loop goroutine; commands arrive over a channel and are
// applied between frames.
type session struct {
	conn     *websocket.Conn
	scene    *mandelflow.Scene
	loop     *mandelflow.Loop
	commands chan command

	buf []byte // reused frame message buffer
}

var _ mandelflow.Presenter = (*session)(nil)

func newSession(conn *websocket.Conn, cfg *sessionConfig) *session {
	// The raster stays at this size until the page reports its viewport.
	scene := mandelflow.NewScene(960, 540)
	scene.View = cfg.startView

	s := &session{
		conn:     conn,
		scene:    scene,
		commands: make(chan command, 32),
	}
	s.loop = &mandelflow.Loop{
		Scene:     scene,
		Renderer:  &mandelflow.Renderer{Workers: cfg.workers},
		Presenter: s,
		Interval:  time.Second / time.Duration(cfg.fps),
		Apply:     s.applyPending,
	}
	return s
}

func (s *session) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		defer cancel()
		if err := s.readCommands(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("read commands: %v", err)
		}
	}()

	return s.loop.Run(ctx)
}

// readCommands decodes control messages until the connection closes.
func (s *session) readCommands(ctx context.Context) error {
	for {
		_, data, err := s.conn.Read(ctx)
		if err != nil {
			return err
		}

		var cmd command
		if err := json.Unmarshal(data, &cmd); err != nil {
			return fmt.Errorf("bad command %q: %w", data, err)
		}

		select {
		case s.commands <- cmd:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// applyPending drains queued commands. Runs on the render goroutine, so the
// scene is never mutated mid-frame.
func (s *session) applyPending() {
	for {
		select {
		case cmd := <-s.commands:
			s.apply(cmd)
		default:
			return
		}
	}
}

func (s *session) apply(cmd command) {
	switch cmd.Op {
	case "zoomin":
		s.scene.ZoomIn(cmd.X, cmd.Y)
	case "zoomout":
		s.scene.ZoomOut()
	case "reset":
		s.scene.Reset()
	case "flow":
		s.scene.ToggleFlow()
	case "rays":
		s.scene.ToggleRays()
	case "resize":
		if cmd.W > 0 && cmd.H > 0 {
			s.scene.Resize(cmd.W, cmd.H)
		}
	default:
		log.Printf("unknown op %q", cmd.Op)
	}
}

// Present sends one binary message per frame: little-endian uint32 width and
// height, then the RGBA bytes.
func (s *session) Present(ctx context.Context, img *image.RGBA) error {
	w := img.Rect.Dx()
	h := img.Rect.Dy()

	need := 8 + len(img.Pix)
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]
	binary.LittleEndian.PutUint32(s.buf[0:4], uint32(w))
	binary.LittleEndian.PutUint32(s.buf[4:8], uint32(h))
	copy(s.buf[8:], img.Pix)

	return s.conn.Write(ctx, websocket.MessageBinary, s.buf)
}
