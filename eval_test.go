package mandelflow

import (
	"math"
	"testing"
)

func TestEvaluateImmediateEscape(t *testing.T) {
	// |c| > 2 escapes on the very first iteration: z₁ = c.
	tests := []struct {
		name   string
		cr, ci float64
	}{
		{"real axis", 3, 0},
		{"imaginary axis", 0, 2.5},
		{"quadrant II", -2.1, 1},
		{"diagonal", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Evaluate(tt.cr, tt.ci, 0, false)
			if !res.Escaped {
				t.Fatalf("Evaluate(%v, %v) did not escape", tt.cr, tt.ci)
			}
			if res.Iterations != 1 {
				t.Errorf("Iterations = %d, want 1", res.Iterations)
			}
			if want := math.Hypot(tt.cr, tt.ci); math.Abs(res.Magnitude-want) > 1e-12 {
				t.Errorf("Magnitude = %v, want %v", res.Magnitude, want)
			}
			if want := math.Atan2(tt.ci, tt.cr); res.Angle != want {
				t.Errorf("Angle = %v, want %v", res.Angle, want)
			}
		})
	}
}

func TestEvaluateOriginNeverEscapes(t *testing.T) {
	res := Evaluate(0, 0, 0, false)

	if res.Escaped {
		t.Fatal("origin escaped")
	}
	if res.Iterations != MaxIterations {
		t.Errorf("Iterations = %d, want %d", res.Iterations, MaxIterations)
	}
	if res.Smooth != float64(MaxIterations) {
		t.Errorf("Smooth = %v, want %v", res.Smooth, float64(MaxIterations))
	}
}

func TestEvaluateFlowDisabledIgnoresTime(t *testing.T) {
	points := []struct{ cr, ci float64 }{
		{-0.5, 0.5},
		{0.3, 0.5},
		{-1.75, 0.01},
		{0, 0},
	}
	times := []float64{0, 1.5, 42, 1e4}

	for _, p := range points {
		base := Evaluate(p.cr, p.ci, times[0], false)
		for _, tm := range times[1:] {
			if got := Evaluate(p.cr, p.ci, tm, false); got != base {
				t.Errorf("Evaluate(%v, %v, t=%v, flow=off) = %+v, want %+v",
					p.cr, p.ci, tm, got, base)
			}
		}
	}
}

func TestEvaluateFlowEnabledPerturbs(t *testing.T) {
	// sin(16*0.1) ≈ 1, so the perturbation is near its maximum.
	a := Evaluate(0.3, 0.5, 0, true)
	b := Evaluate(0.3, 0.5, 16, true)

	if a == b {
		t.Errorf("flow perturbation had no effect: %+v", a)
	}
}

func TestEvaluateNoDegenerateValues(t *testing.T) {
	// Sweep the interesting part of the plane at several animation times and
	// make sure the smoothing never produces NaN or Inf.
	times := []float64{0, 0.7, 16, 333}
	for _, flow := range []bool{false, true} {
		for _, tm := range times {
			for cr := -2.5; cr <= 1.5; cr += 0.125 {
				for ci := 0.0; ci <= 1.5; ci += 0.125 {
					res := Evaluate(cr, ci, tm, flow)

					if math.IsNaN(res.Smooth) || math.IsInf(res.Smooth, 0) {
						t.Fatalf("Smooth = %v at c=(%v, %v), t=%v, flow=%v",
							res.Smooth, cr, ci, tm, flow)
					}
					if res.Iterations < 0 || res.Iterations > MaxIterations {
						t.Fatalf("Iterations = %d at c=(%v, %v)", res.Iterations, cr, ci)
					}
					if math.Abs(res.Angle) > math.Pi {
						t.Fatalf("Angle = %v out of range at c=(%v, %v)", res.Angle, cr, ci)
					}
					if res.Escaped && res.Magnitude <= 2 {
						t.Fatalf("escaped with magnitude %v at c=(%v, %v)", res.Magnitude, cr, ci)
					}
				}
			}
		}
	}
}
