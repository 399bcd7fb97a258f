package fractal_test

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FractalPainter/fractal"
)

func TestApplyIdentityRotation(t *testing.T) {
	settings := fractal.Settings{Angle1: 0, Angle2: 1, Scale: 0.5}
	tp, err := fractal.BuildTransforms(settings, image.Pt(800, 600))
	require.NoError(t, err)

	for _, p := range []fractal.Point{{X: 3, Y: -7}, {X: -1.25, Y: 2.5}, {X: 0, Y: 0}, {X: 1e6, Y: 3}} {
		got := tp.Apply(p, 0)
		assert.Equal(t, 0.5*p.X, got.X)
		assert.Equal(t, 0.5*p.Y, got.Y)
	}
}

func TestApplyQuarterTurn(t *testing.T) {
	settings := fractal.Settings{Angle1: math.Pi / 2, Angle2: math.Pi / 2, Scale: 1}
	tp, err := fractal.BuildTransforms(settings, image.Pt(100, 100))
	require.NoError(t, err)

	got := tp.Apply(fractal.Point{X: 1, Y: 0}, 0)
	assert.InDelta(t, 0, got.X, 1e-12)
	assert.InDelta(t, 1, got.Y, 1e-12)
}

// TestApplyShift: T1 adds the shift scaled by 0.8 of min(w, h)/2.1.
func TestApplyShift(t *testing.T) {
	settings := fractal.Settings{Angle1: 0, Angle2: 0, ShiftX: 1, ShiftY: -0.5, Scale: 0.5}
	tp, err := fractal.BuildTransforms(settings, image.Pt(420, 210))
	require.NoError(t, err)

	got := tp.Apply(fractal.Point{}, 1)
	assert.InDelta(t, 80, got.X, 1e-9)
	assert.InDelta(t, -40, got.Y, 1e-9)

	got = tp.Apply(fractal.Point{X: 10, Y: 20}, 1)
	assert.InDelta(t, 85, got.X, 1e-9)
	assert.InDelta(t, -30, got.Y, 1e-9)

	untranslated := tp.Apply(fractal.Point{}, 0)
	assert.Equal(t, fractal.Point{}, untranslated)
}

func TestBuildRejectsEmptySize(t *testing.T) {
	for _, size := range []image.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}, {X: -1, Y: 5}} {
		_, err := fractal.BuildTransforms(fractal.DefaultSettings(), size)
		var ce *fractal.ConfigurationError
		require.ErrorAs(t, err, &ce, "size %v", size)
	}
}

func TestChooseUsesRandomSource(t *testing.T) {
	tp, err := fractal.BuildTransforms(fractal.DefaultSettings(), image.Pt(10, 10))
	require.NoError(t, err)

	a, b := fractal.NewRandom(9), fractal.NewRandom(9)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.NextBit(), tp.Choose(b))
	}
}
