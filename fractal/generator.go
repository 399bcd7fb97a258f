package fractal

import "math"

// Generator produces random settings for exploring the family of two-map
// systems. The bounds keep the scale below one and the runs interactive.
type Generator struct {
	MinAngle      float64
	MaxAngle      float64
	MaxShift      float64
	MinScale      float64
	MaxScale      float64
	MinIterations int
	MaxIterations int
}

func NewGenerator() Generator {
	return Generator{
		MinAngle:      0,
		MaxAngle:      2 * math.Pi,
		MaxShift:      1,
		MinScale:      0.5,
		MaxScale:      0.9,
		MinIterations: 10000,
		MaxIterations: 50000,
	}
}

// Generate draws a new set of settings. The order of draws is fixed so the
// same random state always yields the same settings.
func (g Generator) Generate(random RandomSource) Settings {
	settings := Settings{
		Angle1: random.NextFloatInRange(g.MinAngle, g.MaxAngle),
		Angle2: random.NextFloatInRange(g.MinAngle, g.MaxAngle),
		ShiftX: random.NextFloatInRange(-g.MaxShift, g.MaxShift),
		ShiftY: random.NextFloatInRange(-g.MaxShift, g.MaxShift),
		Scale:  random.NextFloatInRange(g.MinScale, g.MaxScale),
	}

	iterations := random.NextFloatInRange(float64(g.MinIterations), float64(g.MaxIterations+1))
	settings.IterationsCount = min(int(math.Floor(iterations)), g.MaxIterations)
	return settings
}
