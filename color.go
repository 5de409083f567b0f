package mandelflow

import "math"

// Strengths of the two animated effects.
const (
	rayIntensity  = 0.6
	flowIntensity = 0.8
)

// Colorize maps an evaluation result and the global elapsed time (seconds) to
// an 8-bit RGB color.
//
// Saturation and value are deliberately left unclamped before the HSV
// conversion: combined ray+flow terms can push them outside [0,1], and the
// reference visuals depend on that. Only the final byte conversion clamps.
func Colorize(res Result, t float64, fx Effects) (r, g, b uint8) {
	if !res.Escaped {
		// Interior: near-black, with a faint purple pulse when flow is on.
		var pulse float64
		if fx.Flow {
			pulse = math.Sin(t*2)*0.1 + 0.1
		}
		return channelByte(40 * pulse), channelByte(10 * pulse), channelByte(50 * pulse)
	}

	norm := res.Smooth / MaxIterations

	var ray float64
	if fx.Rays {
		s := math.Abs(math.Sin(res.Angle*10 + t*3))
		ray = s * s * s * rayIntensity
	}

	var flow float64
	if fx.Flow {
		flow = math.Sin(norm*20+t*2) * 0.15 * flowIntensity
	}

	hue := math.Mod(norm*360+t*15, 360)
	sat := 0.8 + flow
	val := 0.7 + ray + flow*0.3

	fr, fg, fb := hsvToRGB(hue/360, sat, val)
	return channelByte(fr * 255), channelByte(fg * 255), channelByte(fb * 255)
}

// hsvToRGB is the standard six-sector HSV conversion with h in [0,1). It does
// not clamp s or v: out-of-range inputs produce out-of-range channels.
func hsvToRGB(h, s, v float64) (r, g, b float64) {
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	switch i % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

func channelByte(x float64) uint8 {
	n := math.Floor(x)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}
