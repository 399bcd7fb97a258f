package canvas

import (
	"fmt"
	"image/color"
)

// Plot is one point handed to a Recorder, before any clipping.
type Plot struct {
	Color color.Color
	X     float64
	Y     float64
}

func (p *Plot) String() string {
	output := "{Plot "
	output += fmt.Sprintf("Color: %v ", p.Color)
	output += fmt.Sprintf("X: %f ", p.X)
	output += fmt.Sprintf("Y: %f}", p.Y)
	return output
}

// Recorder is a canvas that keeps every call made to it instead of drawing.
type Recorder struct {
	Width   int
	Height  int
	Fills   []color.Color
	Flushes int
	Plots   []Plot
}

func NewRecorder(width int, height int) *Recorder {
	return &Recorder{
		Width:  width,
		Height: height,
	}
}

func (r *Recorder) Size() (int, int) {
	return r.Width, r.Height
}

func (r *Recorder) Fill(c color.Color) error {
	r.Fills = append(r.Fills, c)
	return nil
}

func (r *Recorder) PlotPoint(x float64, y float64, c color.Color) error {
	r.Plots = append(r.Plots, Plot{Color: c, X: x, Y: y})
	return nil
}

func (r *Recorder) Flush() error {
	r.Flushes++
	return nil
}
