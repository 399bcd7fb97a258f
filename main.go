package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"os"
	"os/signal"
	"strings"
	"time"

	"FractalPainter/app"
	"FractalPainter/canvas"
	"FractalPainter/fractal"
	"FractalPainter/misc"

	"github.com/BrugadaSyndrome/bslogger"
)

var (
	background, commands, foreground, outFile, saveSettingsFile, settingsFile string
	height, iterations, width                                                 int
	seed                                                                      int64
	canonical                                                                 bool
)

func main() {
	logger := bslogger.NewLogger("Main", bslogger.Normal, nil)
	parseArguments()

	settings, err := app.LoadSettings(settingsFile)
	misc.CheckError(err, logger, misc.Fatal)

	if canonical {
		dragon := fractal.DefaultSettings()
		settings.Dragon = &dragon
	}
	if iterations >= 0 && settings.Dragon != nil {
		dragon := *settings.Dragon
		dragon.IterationsCount = iterations
		settings.Dragon = &dragon
	}

	runSeed := uint64(time.Now().UnixNano())
	if settings.Seed != nil {
		runSeed = *settings.Seed
	}
	if seed >= 0 {
		runSeed = uint64(seed)
	}
	logger.Info(fmt.Sprintf("Using seed %d", runSeed))

	holder, err := canvas.NewHolder(settings.Image)
	misc.CheckError(err, logger, misc.Fatal)
	defer holder.Close()

	refreshes := 0
	deps := app.Dependencies{
		Settings:     &settings,
		Holder:       holder,
		Random:       fractal.NewRandom(runSeed),
		Generator:    fractal.NewGenerator(),
		Refresh:      func() { refreshes++ },
		SaveFileName: outFile,
	}
	if width > 0 || height > 0 {
		image := settings.Image
		if width > 0 {
			image.Width = width
		}
		if height > 0 {
			image.Height = height
		}
		deps.EditImage = app.Replace(image)
	}
	if background != "" || foreground != "" {
		palette, err := parsePalette(settings.Palette)
		misc.CheckError(err, logger, misc.Fatal)
		deps.EditPalette = app.Replace(palette)
	}

	registry, err := app.NewRegistry(app.NewActions(deps))
	misc.CheckError(err, logger, misc.Fatal)
	for _, action := range registry.Actions() {
		logger.Debug(fmt.Sprintf("[%s] %s - %s", action.Category, action.Name, action.Description))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = registry.Run(ctx, strings.Split(commands, ",")...)
	if misc.CheckError(err, logger, misc.Error) {
		os.Exit(1)
	}
	logger.Info(fmt.Sprintf("Done after %d refreshes", refreshes))

	if saveSettingsFile != "" {
		misc.CheckError(settings.Save(saveSettingsFile), logger, misc.Error)
	}
}

func parseArguments() {
	flag.StringVar(&settingsFile, "settings", "", "Json file with application settings")
	flag.StringVar(&saveSettingsFile, "saveSettings", "", "Json file to write the final settings to")
	flag.StringVar(&commands, "commands", "image,palette,dragon,save", "Comma separated list of commands to run")
	flag.StringVar(&outFile, "out", "image.bmp", "Name of the saved image inside the images directory")
	flag.Int64Var(&seed, "seed", -1, "Seed for the random source, negative uses the settings file or the clock")
	flag.IntVar(&width, "width", 0, "Width of the image")
	flag.IntVar(&height, "height", 0, "Height of the image")
	flag.IntVar(&iterations, "iterations", -1, "Number of points to plot for a fixed dragon")
	flag.BoolVar(&canonical, "canonical", false, "Paint the Harter-Heighway dragon instead of random settings")
	flag.StringVar(&background, "background", "", "Background color as #rrggbb")
	flag.StringVar(&foreground, "foreground", "", "Foreground color as #rrggbb")

	flag.Parse()
}

func parsePalette(current fractal.Palette) (fractal.Palette, error) {
	palette := current
	if background != "" {
		c, err := parseColor(background)
		if err != nil {
			return palette, err
		}
		palette.Background = c
	}
	if foreground != "" {
		c, err := parseColor(foreground)
		if err != nil {
			return palette, err
		}
		palette.Foreground = c
	}
	return palette, nil
}

func parseColor(value string) (color.RGBA, error) {
	c := color.RGBA{A: 255}
	_, err := fmt.Sscanf(value, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", value, err)
	}
	return c, nil
}
