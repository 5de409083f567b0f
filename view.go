package mandelflow

// View is the visible window into the complex plane. Scale is the width of
// the window in complex units.
type View struct {
	CenterX float64
	CenterY float64
	Scale   float64
}

// ZoomFactor is the per-step zoom ratio applied by ZoomIn and ZoomOut.
const ZoomFactor = 2.5

// Home frames the whole Mandelbrot set.
var Home = View{CenterX: -0.5, CenterY: 0, Scale: 3.5}

// MapToComplex converts a raster coordinate to its complex-plane coordinate
// under v, for a raster of w×h pixels. The vertical axis is corrected for the
// raster's aspect ratio, so the window follows the shape of the viewport.
func (v View) MapToComplex(px, py float64, w, h int) (re, im float64) {
	fw := float64(w)
	fh := float64(h)
	re = v.CenterX + (px-fw/2)*v.Scale/fw
	verticalScale := v.Scale / (fw / fh)
	im = v.CenterY + (py-fh/2)*verticalScale/fw
	return re, im
}
