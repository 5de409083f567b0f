package mandelflow

import (
	"image"
	"runtime"
	"sync"
)

// Renderer recomputes every pixel of the raster each frame. It owns its frame
// buffer and reallocates it whenever the scene's dimensions change.
type Renderer struct {
	// Workers is the number of row bands rendered concurrently. Zero means
	// runtime.NumCPU. Per-pixel work is pure, so the output is byte-identical
	// for any worker count.
	Workers int

	img *image.RGBA
}

// RenderFrame renders the scene at the given elapsed time (seconds) and
// returns the frame buffer, fully overwritten and with alpha 255 everywhere.
// The buffer is owned by the Renderer and valid until the next call.
func (r *Renderer) RenderFrame(s *Scene, elapsed float64) *image.RGBA {
	w, h := s.W, s.H
	if r.img == nil || r.img.Rect.Dx() != w || r.img.Rect.Dy() != h {
		r.img = image.NewRGBA(image.Rect(0, 0, w, h))
	}

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > h {
		workers = h
	}
	if workers < 1 {
		workers = 1
	}

	view, fx := s.View, s.FX
	var wg sync.WaitGroup
	for _, band := range splitRows(h, workers) {
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			r.renderRows(view, fx, elapsed, y0, y1)
		}(band.y0, band.y1)
	}
	wg.Wait()

	return r.img
}

func (r *Renderer) renderRows(view View, fx Effects, elapsed float64, y0, y1 int) {
	w := r.img.Rect.Dx()
	h := r.img.Rect.Dy()
	fw := float64(w)
	fh := float64(h)

	for y := y0; y < y1; y++ {
		row := r.img.Pix[y*r.img.Stride:]
		for x := 0; x < w; x++ {
			cr, ci := view.MapToComplex(float64(x), float64(y), w, h)

			// Diagonal traveling-wave phase across the frame. Coloring uses
			// the global elapsed time, only the evaluator sees the offset.
			timeOffset := elapsed + (float64(x)/fw+float64(y)/fh)*2
			res := Evaluate(cr, ci, timeOffset, fx.Flow)
			cR, cG, cB := Colorize(res, elapsed, fx)

			o := x * 4
			row[o+0] = cR
			row[o+1] = cG
			row[o+2] = cB
			row[o+3] = 0xff
		}
	}
}

type rowBand struct {
	y0, y1 int
}

// splitRows partitions h rows into at most n contiguous bands. Bands at the
// bottom are smaller if h is not divisible.
func splitRows(h, n int) []rowBand {
	if n <= 0 {
		panic("band count must be positive")
	}

	per := h / n
	if h%n != 0 {
		per++
	}

	var bands []rowBand
	for y := 0; y < h; y += per {
		y1 := y + per
		if y1 > h {
			y1 = h
		}
		bands = append(bands, rowBand{y0: y, y1: y1})
	}

	return bands
}
