package mandelflow

// Effects holds the two animated effect toggles. Flow perturbs the iteration
// itself and pulses the set interior; Rays modulate brightness by the escaped
// orbit's angle.
type Effects struct {
	Flow bool
	Rays bool
}

// Scene is the mutable state of one viewport: the complex-plane window, the
// effect toggles and the raster dimensions. Interaction collaborators mutate
// it only between frames, never during a render pass.
type Scene struct {
	View View
	FX   Effects
	W, H int
}

var _ Controls = (*Scene)(nil)

func NewScene(w, h int) *Scene {
	return &Scene{View: Home, W: w, H: h}
}

// ZoomIn recenters the view on the clicked pixel and narrows the window.
func (s *Scene) ZoomIn(px, py float64) {
	re, im := s.View.MapToComplex(px, py, s.W, s.H)
	s.View.CenterX = re
	s.View.CenterY = im
	s.View.Scale /= ZoomFactor
}

func (s *Scene) ZoomOut() {
	s.View.Scale *= ZoomFactor
}

// Reset restores the initial framing of the full set.
func (s *Scene) Reset() {
	s.View = Home
}

// Resize updates the raster dimensions only. Center and scale are kept, so
// the visible window's aspect changes with the viewport shape.
func (s *Scene) Resize(w, h int) {
	s.W = w
	s.H = h
}

func (s *Scene) ToggleFlow() {
	s.FX.Flow = !s.FX.Flow
}

func (s *Scene) ToggleRays() {
	s.FX.Rays = !s.FX.Rays
}
