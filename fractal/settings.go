package fractal

import (
	"fmt"
	"math"
)

const defaultIterationsCount = 20000

// Settings describes a single run of the two-map iterated function system.
// Angles are in radians, shifts are fractions of the reference size.
type Settings struct {
	Angle1          float64
	Angle2          float64
	ShiftX          float64
	ShiftY          float64
	Scale           float64
	IterationsCount int
}

// DefaultSettings returns the Harter-Heighway dragon.
func DefaultSettings() Settings {
	return Settings{
		Angle1:          math.Pi / 4,
		Angle2:          3 * math.Pi / 4,
		ShiftX:          1,
		ShiftY:          0,
		Scale:           1 / math.Sqrt2,
		IterationsCount: defaultIterationsCount,
	}
}

func (s Settings) String() string {
	output := "{Settings "
	output += fmt.Sprintf("Angle1: %f ", s.Angle1)
	output += fmt.Sprintf("Angle2: %f ", s.Angle2)
	output += fmt.Sprintf("ShiftX: %f ", s.ShiftX)
	output += fmt.Sprintf("ShiftY: %f ", s.ShiftY)
	output += fmt.Sprintf("Scale: %f ", s.Scale)
	output += fmt.Sprintf("IterationsCount: %d}", s.IterationsCount)
	return output
}

// Verify checks the settings without changing them. A scale of one or more
// is accepted: the points diverge and end up clipped by the canvas.
func (s Settings) Verify() error {
	if s.IterationsCount < 0 {
		return &ConfigurationError{
			Field:  "IterationsCount",
			Reason: fmt.Sprintf("must not be negative, got %d", s.IterationsCount),
		}
	}
	return nil
}
