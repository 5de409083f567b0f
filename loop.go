package mandelflow

import (
	"context"
	"fmt"
	"time"
)

// Loop drives a Scene/Renderer pair at a fixed rate and hands every frame to
// a Presenter. It is the render-loop driver for hosts without their own frame
// callback; browser builds hook requestAnimationFrame instead and call
// RenderFrame directly.
type Loop struct {
	Scene     *Scene
	Renderer  *Renderer
	Presenter Presenter

	// Interval between frames. Zero means 30 frames per second.
	Interval time.Duration

	// Apply, if set, is called once before each frame on the loop goroutine
	// so queued interaction commands can mutate the scene without racing a
	// render pass.
	Apply func()

	// Now reports elapsed seconds. Defaults to wall clock since Run started.
	Now func() float64
}

// Run renders frames until ctx is done and returns ctx's error. Frames are
// never cancelled mid-render; a slow frame simply delays the next tick.
func (l *Loop) Run(ctx context.Context) error {
	interval := l.Interval
	if interval <= 0 {
		interval = time.Second / 30
	}

	now := l.Now
	if now == nil {
		start := time.Now()
		now = func() float64 { return time.Since(start).Seconds() }
	}

	tick := time.NewTicker(interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
			if l.Apply != nil {
				l.Apply()
			}
			img := l.Renderer.RenderFrame(l.Scene, now())
			if err := l.Presenter.Present(ctx, img); err != nil {
				return fmt.Errorf("present frame: %w", err)
			}
		}
	}
}
