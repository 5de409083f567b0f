package mandelflow

import (
	"context"
	"image"
)

// Presenter is the presentation boundary. It receives one fully populated
// frame per tick and displays it.
type Presenter interface {
	Present(ctx context.Context, img *image.RGBA) error
}

// Controls is the surface offered to interaction collaborators (pointer,
// buttons, viewport sizing). Implemented by *Scene.
type Controls interface {
	ZoomIn(px, py float64)
	ZoomOut()
	Reset()
	Resize(w, h int)
	ToggleFlow()
	ToggleRays()
}
