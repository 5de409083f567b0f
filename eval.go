package mandelflow

import "math"

// MaxIterations bounds the escape-time loop.
const MaxIterations = 120

// Result is the outcome of evaluating a single complex point.
type Result struct {
	Iterations int
	Smooth     float64
	Escaped    bool
	Zr, Zi     float64 // final orbit point
	Magnitude  float64
	Angle      float64 // atan2(Zi, Zr), radians
}

// Evaluate iterates z ← z²+c from z=0 and reports how the orbit behaved.
// With flow enabled, a small time-derived term feeds the previous z back into
// each step, so the set's shape breathes as timeOffset advances. With flow
// disabled the result depends on (cr, ci) only.
func Evaluate(cr, ci, timeOffset float64, flow bool) Result {
	var timeInfluence float64
	if flow {
		timeInfluence = math.Sin(timeOffset*0.1) * 0.02
	}

	var zr, zi float64
	iter := 0
	for zr*zr+zi*zi <= 4 && iter < MaxIterations {
		nzr := zr*zr - zi*zi + cr + timeInfluence*zr
		nzi := 2*zr*zi + ci + timeInfluence*zi
		zr, zi = nzr, nzi
		iter++
	}

	mag := math.Sqrt(zr*zr + zi*zi)
	res := Result{
		Iterations: iter,
		Smooth:     float64(iter),
		Zr:         zr,
		Zi:         zi,
		Magnitude:  mag,
		Angle:      math.Atan2(zi, zr),
	}
	if zr*zr+zi*zi > 4 {
		res.Escaped = true
		// log(log|z|) is undefined for |z| ≤ 1; keep the raw count then.
		if mag > 1 {
			res.Smooth = float64(iter) + 1 - math.Log(math.Log(mag))/math.Log(2)
		}
	}
	return res
}
