// Package fractal renders two-map iterated function systems such as the
// Harter-Heighway dragon by plotting the orbit of a point onto a canvas.
package fractal

import (
	"context"
	"fmt"
	"image"
	"image/color"
)

const DefaultRefreshInterval = 100

// Canvas is the drawing surface a run writes into. Its size must not change
// during a run. Plots outside the surface are clipped by the canvas.
type Canvas interface {
	Size() (width int, height int)
	Fill(c color.Color) error
	PlotPoint(x float64, y float64, c color.Color) error
	Flush() error
}

// RefreshHook lets the host present partial progress. It is called
// synchronously on the painting goroutine.
type RefreshHook func()

// Painter runs the iteration loop. A Painter keeps no state between runs.
type Painter struct {
	Palette         Palette
	Random          RandomSource
	Refresh         RefreshHook
	RefreshInterval int
}

func NewPainter(palette Palette, random RandomSource, refresh RefreshHook) *Painter {
	return &Painter{
		Palette:         palette,
		Random:          random,
		Refresh:         refresh,
		RefreshInterval: DefaultRefreshInterval,
	}
}

// Paint renders settings onto canvas with the given palette, random source and
// refresh hook.
func Paint(ctx context.Context, settings Settings, canvas Canvas, palette Palette, random RandomSource, refresh RefreshHook) error {
	return NewPainter(palette, random, refresh).Paint(ctx, settings, canvas)
}

// Paint builds the transforms for the canvas size and renders settings.
func (p *Painter) Paint(ctx context.Context, settings Settings, canvas Canvas) error {
	if err := settings.Verify(); err != nil {
		return err
	}
	width, height := canvas.Size()
	transforms, err := BuildTransforms(settings, image.Point{X: width, Y: height})
	if err != nil {
		return err
	}
	return p.PaintTransforms(ctx, settings, transforms, canvas)
}

// PaintTransforms renders settings.IterationsCount points using prebuilt
// transforms. Cancellation of ctx is checked after every refresh; a cancelled
// run returns ctx.Err() and leaves the points drawn so far on the canvas.
func (p *Painter) PaintTransforms(ctx context.Context, settings Settings, transforms TransformPair, canvas Canvas) error {
	if err := settings.Verify(); err != nil {
		return err
	}
	if p.Random == nil {
		return &ConfigurationError{Field: "random source", Reason: "must not be nil"}
	}
	width, height := canvas.Size()
	if width <= 0 || height <= 0 {
		return &ConfigurationError{
			Field:  "canvas size",
			Reason: fmt.Sprintf("must have a positive area, got %dx%d", width, height),
		}
	}
	interval := p.RefreshInterval
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	if err := canvas.Fill(p.Palette.Background); err != nil {
		return err
	}

	/*
	 * The origin of the abstract space sits a third of the way across and half
	 * way down the canvas. The dragon grows to the right of its starting point,
	 * so this keeps it inside the visible area for the usual parameters.
	 */
	originX := float64(width) / 3
	originY := float64(height) / 2

	var point Point
	for i := 0; i < settings.IterationsCount; i++ {
		err := canvas.PlotPoint(originX+point.X, originY+point.Y, p.Palette.Foreground)
		if err != nil {
			return err
		}

		point = transforms.Apply(point, transforms.Choose(p.Random))

		if i%interval == 0 {
			if err := p.refresh(canvas); err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
		}
	}

	return p.refresh(canvas)
}

func (p *Painter) refresh(canvas Canvas) error {
	if err := canvas.Flush(); err != nil {
		return err
	}
	if p.Refresh != nil {
		p.Refresh()
	}
	return nil
}
