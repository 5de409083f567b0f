//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/mandelflow/mandelflow"
)

// bindControls wires the page's pointer, button and resize collaborators to
// the scene: left click zooms in on the clicked point, right click zooms out,
// buttons reset the view and toggle the two effects.
func bindControls(scene *mandelflow.Scene, canvas *canvasSurface) {
	canvas.canvas.Call("addEventListener", "click", js.FuncOf(func(this js.Value, args []js.Value) any {
		e := args[0]
		scene.ZoomIn(e.Get("offsetX").Float(), e.Get("offsetY").Float())
		return nil
	}))

	canvas.canvas.Call("addEventListener", "contextmenu", js.FuncOf(func(this js.Value, args []js.Value) any {
		args[0].Call("preventDefault")
		scene.ZoomOut()
		return nil
	}))

	onClick("reset", scene.Reset)
	onClick("flow", scene.ToggleFlow)
	onClick("rays", scene.ToggleRays)

	js.Global().Get("window").Call("addEventListener", "resize", js.FuncOf(func(js.Value, []js.Value) any {
		w, h := viewportSize()
		scene.Resize(w, h)
		canvas.resize(w, h)
		return nil
	}))
}

func onClick(id string, fn func()) {
	elem := js.Global().Get("document").Call("getElementById", id)
	elem.Call("addEventListener", "click", js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	}))
}
