package fractal

import (
	"fmt"
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

const (
	// the dragon spans roughly 2.1 reference sizes across the shorter side
	referenceDivisor = 2.1
	shiftFactor      = 0.8
)

// Point is a position in the origin-centered space the maps act on.
type Point = vec.Vec2

// TransformPair holds the two maps of the system. T0 rotates by Angle1 and
// scales; T1 rotates by Angle2, scales and then translates by the shift.
type TransformPair struct {
	rotations [2]matrix.Matrix
	scale     float64
	shift     vec.Vec2
}

// BuildTransforms precomputes both maps for a canvas of the given size.
func BuildTransforms(settings Settings, size image.Point) (TransformPair, error) {
	if size.X <= 0 || size.Y <= 0 {
		return TransformPair{}, &ConfigurationError{
			Field:  "canvas size",
			Reason: fmt.Sprintf("must have a positive area, got %dx%d", size.X, size.Y),
		}
	}

	reference := float64(min(size.X, size.Y)) / referenceDivisor
	return TransformPair{
		rotations: [2]matrix.Matrix{
			rotation(settings.Angle1),
			rotation(settings.Angle2),
		},
		scale: settings.Scale,
		shift: vec.Vec2{
			X: settings.ShiftX * reference * shiftFactor,
			Y: settings.ShiftY * reference * shiftFactor,
		},
	}, nil
}

func rotation(angle float64) matrix.Matrix {
	sin, cos := math.Sincos(angle)
	return matrix.Matrix{cos, sin, -sin, cos, 0, 0}
}

// Apply maps p with T0 when choice is 0 and with T1 otherwise.
func (tp TransformPair) Apply(p Point, choice int) Point {
	i := 0
	if choice != 0 {
		i = 1
	}
	m := tp.rotations[i]
	q := vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y,
		Y: m[1]*p.X + m[3]*p.Y,
	}.Mul(tp.scale)
	if i == 1 {
		q = q.Add(tp.shift)
	}
	return q
}

// Choose draws the map for the next step, each with probability one half.
func (tp TransformPair) Choose(random RandomSource) int {
	return random.NextBit()
}
