package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"FractalPainter/fractal"
)

// Drawing is a scoped handle on the image of a Holder. It implements
// fractal.Canvas. Callers release it with a deferred call to Release.
type Drawing struct {
	holder   *Holder
	image    *image.RGBA
	released bool
}

func (d *Drawing) check(op string) error {
	if d.released {
		return &fractal.ResourceError{Op: op, Err: fractal.ErrCanvasClosed}
	}
	if d.holder.isClosed() {
		return &fractal.ResourceError{Op: op, Err: fractal.ErrCanvasClosed}
	}
	return nil
}

func (d *Drawing) Size() (int, int) {
	size := d.image.Rect.Size()
	return size.X, size.Y
}

func (d *Drawing) Fill(c color.Color) error {
	if err := d.check("fill"); err != nil {
		return err
	}
	draw.Draw(d.image, d.image.Rect, image.NewUniform(c), image.Point{}, draw.Src)
	return nil
}

// PlotPoint sets the pixel containing (x, y). Points outside the image,
// including NaN and infinite coordinates, are dropped.
func (d *Drawing) PlotPoint(x float64, y float64, c color.Color) error {
	if err := d.check("plot point"); err != nil {
		return err
	}
	width, height := d.Size()
	if !(x >= 0 && x < float64(width) && y >= 0 && y < float64(height)) {
		return nil
	}
	d.image.Set(int(math.Floor(x)), int(math.Floor(y)), c)
	return nil
}

// Flush presents the image through the holder.
func (d *Drawing) Flush() error {
	if err := d.check("flush"); err != nil {
		return err
	}
	d.holder.UpdateUI()
	return nil
}

// Release returns the handle to the holder. It is safe to call more than once.
func (d *Drawing) Release() {
	if d.released {
		return
	}
	d.released = true
	d.holder.release(d)
}
