//go:build js && wasm

// webclient is the in-browser build of the explorer. The whole render loop
// runs locally as WASM: requestAnimationFrame schedules one synchronous frame
// per display refresh and the result is painted into a canvas.
package main

import (
	"context"
	"log"
	"syscall/js"

	"github.com/mandelflow/mandelflow"
)

func main() {
	ctx := context.Background()
	w, h := viewportSize()

	scene := mandelflow.NewScene(w, h)
	renderer := &mandelflow.Renderer{Workers: 1} // wasm runs on one thread

	canvas := newCanvas("view", w, h)
	bindControls(scene, canvas)

	// requestAnimationFrame delivers a millisecond timestamp; the core wants
	// elapsed seconds. Event handlers run on the same JS event loop as this
	// callback, so scene mutations never overlap a frame.
	var onFrame js.Func
	onFrame = js.FuncOf(func(this js.Value, args []js.Value) any {
		elapsed := args[0].Float() / 1000
		img := renderer.RenderFrame(scene, elapsed)
		if err := canvas.Present(ctx, img); err != nil {
			log.Printf("present frame: %v", err)
		}
		js.Global().Call("requestAnimationFrame", onFrame)
		return nil
	})
	js.Global().Call("requestAnimationFrame", onFrame)

	// Keep the WASM program alive; everything happens in JS callbacks.
	select {}
}

func viewportSize() (int, int) {
	win := js.Global().Get("window")
	return win.Get("innerWidth").Int(), win.Get("innerHeight").Int()
}
