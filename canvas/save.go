package canvas

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"

	"FractalPainter/fractal"
	"FractalPainter/misc"

	"golang.org/x/image/bmp"
)

// Save writes the image to path. The format follows the extension: .bmp,
// .png, .jpg or .jpeg.
func (h *Holder) Save(path string) error {
	if h.isClosed() {
		return &fractal.ResourceError{Op: "save image", Err: fractal.ErrCanvasClosed}
	}

	var buf bytes.Buffer
	if err := Encode(&buf, h.Image(), filepath.Ext(path)); err != nil {
		return err
	}
	if _, err := misc.WriteFile(path, buf.Bytes()); err != nil {
		return err
	}
	h.logger.Info(fmt.Sprintf("Saved image to %s", path))
	return nil
}

func Encode(buf *bytes.Buffer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case ".bmp":
		return bmp.Encode(buf, img)
	case ".png":
		return png.Encode(buf, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(buf, img, &jpeg.Options{Quality: 95})
	default:
		return fmt.Errorf("unsupported image format %q", ext)
	}
}
