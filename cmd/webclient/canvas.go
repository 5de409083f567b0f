//go:build js && wasm

package main

import (
	"context"
	"image"
	"syscall/js"

	"github.com/mandelflow/mandelflow"
)

// canvasSurface presents frames on a 2d canvas element.
type canvasSurface struct {
	canvas js.Value
	ctx2d  js.Value
}

var _ mandelflow.Presenter = (*canvasSurface)(nil)

func newCanvas(id string, w, h int) *canvasSurface {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", id)
	canvas.Set("width", w)
	canvas.Set("height", h)

	ctx2d := canvas.Call("getContext", "2d")
	ctx2d.Set("fillStyle", "#000")
	ctx2d.Call("fillRect", 0, 0, w, h)

	return &canvasSurface{canvas: canvas, ctx2d: ctx2d}
}

// Present copies the frame onto the canvas in one putImageData call.
func (c *canvasSurface) Present(_ context.Context, img *image.RGBA) error {
	width := img.Rect.Dx()
	height := img.Rect.Dy()

	// ImageData wants a Uint8ClampedArray of width*height*4 RGBA bytes.
	jsData := js.Global().Get("Uint8ClampedArray").New(len(img.Pix))
	js.CopyBytesToJS(jsData, img.Pix)

	imageData := js.Global().Get("ImageData").New(jsData, width, height)
	c.ctx2d.Call("putImageData", imageData, 0, 0)
	return nil
}

func (c *canvasSurface) resize(w, h int) {
	c.canvas.Set("width", w)
	c.canvas.Set("height", h)
}
