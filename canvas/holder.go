// Package canvas provides an in-memory raster surface for the fractal painter.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"FractalPainter/fractal"

	"github.com/BrugadaSyndrome/bslogger"
)

type ImageSettings struct {
	Width  int
	Height int
}

func (is *ImageSettings) String() string {
	return fmt.Sprintf("{ImageSettings Width: %d Height: %d}", is.Width, is.Height)
}

// Verify fills in the default image size.
func (is *ImageSettings) Verify() error {
	if is.Width <= 0 {
		is.Width = 800
	}
	if is.Height <= 0 {
		is.Height = 600
	}
	return nil
}

// Holder owns the image being drawn and hands out at most one drawing handle
// at a time.
type Holder struct {
	closed  bool
	drawing *Drawing
	image   *image.RGBA
	logger  bslogger.Logger
	mutex   sync.Mutex
	updates int

	// OnUpdate presents the image. It is called from UpdateUI.
	OnUpdate func(img *image.RGBA)
}

func NewHolder(settings ImageSettings) (*Holder, error) {
	h := &Holder{
		logger: bslogger.NewLogger("Holder", bslogger.Normal, nil),
	}
	if err := h.Recreate(settings); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Holder) Size() image.Point {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.image.Rect.Size()
}

func (h *Holder) Image() *image.RGBA {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.image
}

// Updates is the number of times the image has been presented.
func (h *Holder) Updates() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.updates
}

// Recreate replaces the image with a blank one of the requested size.
func (h *Holder) Recreate(settings ImageSettings) error {
	if settings.Width <= 0 || settings.Height <= 0 {
		return &fractal.ConfigurationError{
			Field:  "image size",
			Reason: fmt.Sprintf("must have a positive area, got %dx%d", settings.Width, settings.Height),
		}
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()
	if h.closed {
		return &fractal.ResourceError{Op: "recreate image", Err: fractal.ErrCanvasClosed}
	}
	if h.drawing != nil {
		return &fractal.ResourceError{Op: "recreate image", Err: fractal.ErrDrawingInProgress}
	}

	h.image = image.NewRGBA(image.Rect(0, 0, settings.Width, settings.Height))
	draw.Draw(h.image, h.image.Rect, image.NewUniform(color.Black), image.Point{}, draw.Src)
	h.logger.Debug(fmt.Sprintf("Created image of %dx%d", settings.Width, settings.Height))
	return nil
}

// StartDrawing returns a handle for drawing into the image. The handle must be
// released before another one can be started.
func (h *Holder) StartDrawing() (*Drawing, error) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if h.closed {
		return nil, &fractal.ResourceError{Op: "start drawing", Err: fractal.ErrCanvasClosed}
	}
	if h.drawing != nil {
		return nil, &fractal.ResourceError{Op: "start drawing", Err: fractal.ErrDrawingInProgress}
	}
	h.drawing = &Drawing{holder: h, image: h.image}
	return h.drawing, nil
}

func (h *Holder) release(d *Drawing) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if h.drawing == d {
		h.drawing = nil
	}
}

// UpdateUI presents the current image.
func (h *Holder) UpdateUI() {
	h.mutex.Lock()
	h.updates++
	img := h.image
	present := h.OnUpdate
	h.mutex.Unlock()

	if present != nil {
		present(img)
	}
}

// Close makes the holder and any live drawing handle unusable.
func (h *Holder) Close() error {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if h.closed {
		return &fractal.ResourceError{Op: "close", Err: fractal.ErrCanvasClosed}
	}
	h.closed = true
	if h.drawing != nil {
		h.logger.Warning("Closing holder while a drawing is in progress")
	}
	return nil
}

func (h *Holder) isClosed() bool {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.closed
}
