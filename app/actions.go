package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"FractalPainter/canvas"
	"FractalPainter/fractal"

	"github.com/BrugadaSyndrome/bslogger"
)

const (
	File Category = iota
	Fractals
	SettingsMenu
)

type Category int

func (c Category) String() string {
	return []string{
		"File", "Fractals", "Settings",
	}[c]
}

// Action is one command the application offers.
type Action struct {
	Category    Category
	Name        string
	Description string
	Perform     func(ctx context.Context) error
}

// Dependencies are shared by the actions built in NewActions.
type Dependencies struct {
	Settings  *Settings
	Holder    *canvas.Holder
	Random    fractal.RandomSource
	Generator fractal.Generator

	EditDragon  Editor[fractal.Settings]
	EditImage   Editor[canvas.ImageSettings]
	EditPalette Editor[fractal.Palette]

	// Refresh is passed to the painter; nil disables it.
	Refresh fractal.RefreshHook

	// SaveFileName is relative to Settings.ImagesDirectory.
	SaveFileName string
}

// NewActions builds the command list once. Editors left nil accept the
// current value unchanged.
func NewActions(deps Dependencies) []Action {
	if deps.EditDragon == nil {
		deps.EditDragon = Accept[fractal.Settings]()
	}
	if deps.EditImage == nil {
		deps.EditImage = Accept[canvas.ImageSettings]()
	}
	if deps.EditPalette == nil {
		deps.EditPalette = Accept[fractal.Palette]()
	}
	if deps.SaveFileName == "" {
		deps.SaveFileName = "image.bmp"
	}

	logger := bslogger.NewLogger("Actions", bslogger.Normal, nil)
	return []Action{
		{
			Category:    File,
			Name:        "save",
			Description: "Save the image to a file",
			Perform: func(ctx context.Context) error {
				path := filepath.Join(deps.Settings.ImagesDirectory, deps.SaveFileName)
				return deps.Holder.Save(path)
			},
		},
		{
			Category:    Fractals,
			Name:        "dragon",
			Description: "Harter-Heighway dragon",
			Perform: func(ctx context.Context) error {
				return paintDragon(ctx, deps, logger)
			},
		},
		{
			Category:    SettingsMenu,
			Name:        "image",
			Description: "Image size",
			Perform: func(ctx context.Context) error {
				edited, ok := deps.EditImage(deps.Settings.Image)
				if !ok {
					logger.Info("Image settings unchanged")
				} else {
					if err := edited.Verify(); err != nil {
						return err
					}
					deps.Settings.Image = edited
				}
				return deps.Holder.Recreate(deps.Settings.Image)
			},
		},
		{
			Category:    SettingsMenu,
			Name:        "palette",
			Description: "Colors used to paint fractals",
			Perform: func(ctx context.Context) error {
				edited, ok := deps.EditPalette(deps.Settings.Palette)
				if !ok {
					logger.Info("Palette unchanged")
					return nil
				}
				if err := edited.Verify(); err != nil {
					return err
				}
				deps.Settings.Palette = edited
				return nil
			},
		},
	}
}

func paintDragon(ctx context.Context, deps Dependencies, logger bslogger.Logger) error {
	var settings fractal.Settings
	if deps.Settings.Dragon != nil {
		settings = *deps.Settings.Dragon
	} else {
		settings = deps.Generator.Generate(deps.Random)
	}

	settings, ok := deps.EditDragon(settings)
	if !ok {
		logger.Info("Dragon cancelled")
		return nil
	}
	logger.Info(fmt.Sprintf("Painting dragon %s", settings.String()))

	drawing, err := deps.Holder.StartDrawing()
	if err != nil {
		return err
	}
	defer drawing.Release()

	startTime := time.Now()
	painter := fractal.NewPainter(deps.Settings.Palette, deps.Random, deps.Refresh)
	if err := painter.Paint(ctx, settings, drawing); err != nil {
		return fmt.Errorf("painting dragon: %w", err)
	}
	logger.Debug(fmt.Sprintf("Painted %d points in %s", settings.IterationsCount, time.Since(startTime)))
	return nil
}
