package mandelflow

import (
	"math"
	"testing"
)

func TestHSVToRGBReferenceVectors(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		wantR   uint8
		wantG   uint8
		wantB   uint8
	}{
		{"white", 0, 0, 1, 255, 255, 255},
		{"green", 120.0 / 360, 1, 1, 0, 255, 0},
		{"red", 0, 1, 1, 255, 0, 0},
		{"black", 0, 0, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := hsvToRGB(tt.h, tt.s, tt.v)
			gotR := channelByte(r * 255)
			gotG := channelByte(g * 255)
			gotB := channelByte(b * 255)
			if gotR != tt.wantR || gotG != tt.wantG || gotB != tt.wantB {
				t.Errorf("hsvToRGB(%v, %v, %v) = (%d, %d, %d), want (%d, %d, %d)",
					tt.h, tt.s, tt.v, gotR, gotG, gotB, tt.wantR, tt.wantG, tt.wantB)
			}
		})
	}
}

func TestColorizeInterior(t *testing.T) {
	inside := Evaluate(0, 0, 0, false)
	if inside.Escaped {
		t.Fatal("origin escaped")
	}

	t.Run("flow off is pure black", func(t *testing.T) {
		r, g, b := Colorize(inside, 5.5, Effects{})
		if r != 0 || g != 0 || b != 0 {
			t.Errorf("interior color = (%d, %d, %d), want black", r, g, b)
		}
	})

	t.Run("flow on pulses purple", func(t *testing.T) {
		// At t=0 the pulse is sin(0)*0.1+0.1 = 0.1.
		r, g, b := Colorize(inside, 0, Effects{Flow: true})
		if r != 4 || g != 1 || b != 5 {
			t.Errorf("interior pulse = (%d, %d, %d), want (4, 1, 5)", r, g, b)
		}
	})
}

func TestColorizeClampsOverdrivenValue(t *testing.T) {
	// Angle and smooth value chosen so both effect terms peak at t=0:
	// sin(angle*10) = 1 and sin(smooth/MaxIterations*20) = 1. The HSV value
	// then exceeds 1 and the red channel (sector 0) saturates.
	res := Result{
		Escaped: true,
		Smooth:  3 * math.Pi,
		Angle:   math.Pi / 20,
	}

	r, _, _ := Colorize(res, 0, Effects{Flow: true, Rays: true})
	if r != 255 {
		t.Errorf("overdriven red channel = %d, want 255", r)
	}
}

func TestColorizeHueAnimatesWithTime(t *testing.T) {
	// c must lie outside the set: 0.3+0.65i sits above the main cardioid.
	res := Evaluate(0.3, 0.65, 0, false)
	if !res.Escaped {
		t.Fatal("test point did not escape")
	}

	r1, g1, b1 := Colorize(res, 0, Effects{})
	r2, g2, b2 := Colorize(res, 7, Effects{})
	if r1 == r2 && g1 == g2 && b1 == b2 {
		t.Errorf("color did not change with time: (%d, %d, %d)", r1, g1, b1)
	}
}

func TestChannelByte(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-3.2, 0},
		{0, 0},
		{4.9, 4},
		{254.999, 254},
		{255, 255},
		{340.7, 255},
	}

	for _, tt := range tests {
		if got := channelByte(tt.in); got != tt.want {
			t.Errorf("channelByte(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
