package mandelflow

import "sort"

// Classic landmarks in the Mandelbrot set, framed as view presets.
var (
	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = View{CenterX: -0.75, CenterY: 0.10, Scale: 0.10}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = View{CenterX: -1.80, CenterY: -0.06, Scale: 0.10}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = View{CenterX: -0.74275, CenterY: 0.13175, Scale: 0.0015}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = View{CenterX: -0.7465, CenterY: 0.0965, Scale: 0.003}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = View{CenterX: -0.7375, CenterY: 0.1825, Scale: 0.005}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = View{CenterX: -1.73825, CenterY: -0.02275, Scale: 0.0015}
)

// landmarks maps the names accepted by the -view/--view flags.
var landmarks = map[string]View{
	"home":       Home,
	"seahorse":   SeahorseValley,
	"elephant":   ElephantValley,
	"minibrot":   SpiralMinibrot,
	"triple":     TripleSpiral,
	"dragon":     ValleyOfTheDragon,
	"minispiral": MinibrotInMiniSpiral,
}

// LandmarkView returns the named view preset.
func LandmarkView(name string) (View, bool) {
	v, ok := landmarks[name]
	return v, ok
}

// LandmarkNames lists the accepted preset names, sorted.
func LandmarkNames() []string {
	names := make([]string, 0, len(landmarks))
	for name := range landmarks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
