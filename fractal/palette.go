package fractal

import "image/color"

var (
	defaultBackground = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	defaultForeground = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

type Palette struct {
	Background color.RGBA
	Foreground color.RGBA
}

func DefaultPalette() Palette {
	return Palette{
		Background: defaultBackground,
		Foreground: defaultForeground,
	}
}

// Verify replaces unset colors with the defaults.
func (p *Palette) Verify() error {
	if p.Background == (color.RGBA{}) {
		p.Background = defaultBackground
	}
	if p.Foreground == (color.RGBA{}) {
		p.Foreground = defaultForeground
	}
	return nil
}
