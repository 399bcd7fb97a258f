package app

import (
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FractalPainter/canvas"
	"FractalPainter/fractal"
)

func newTestDeps(t *testing.T) (Dependencies, *Settings) {
	t.Helper()
	settings := DefaultSettings()
	settings.ImagesDirectory = t.TempDir()
	settings.Image = canvas.ImageSettings{Width: 120, Height: 90}

	holder, err := canvas.NewHolder(settings.Image)
	require.NoError(t, err)

	generator := fractal.NewGenerator()
	generator.MinIterations, generator.MaxIterations = 500, 500

	return Dependencies{
		Settings:  &settings,
		Holder:    holder,
		Random:    fractal.NewRandom(42),
		Generator: generator,
	}, &settings
}

func TestRegistry(t *testing.T) {
	deps, _ := newTestDeps(t)
	registry, err := NewRegistry(NewActions(deps))
	require.NoError(t, err)

	var names []string
	for _, action := range registry.Actions() {
		names = append(names, action.Name)
	}
	assert.Equal(t, []string{"save", "dragon", "image", "palette"}, names)

	action, ok := registry.Get("dragon")
	require.True(t, ok)
	assert.Equal(t, Fractals, action.Category)
	assert.Equal(t, "Fractals", action.Category.String())

	require.Error(t, registry.Run(context.Background(), "koch"))

	_, err = NewRegistry(append(NewActions(deps), Action{Name: "save"}))
	require.Error(t, err)
}

func TestDragonPaintsAndSaves(t *testing.T) {
	deps, settings := newTestDeps(t)
	refreshes := 0
	deps.Refresh = func() { refreshes++ }
	deps.SaveFileName = "dragon.png"

	registry, err := NewRegistry(NewActions(deps))
	require.NoError(t, err)
	require.NoError(t, registry.Run(context.Background(), "dragon", "save"))

	assert.Equal(t, 6, refreshes, "500 iterations refresh five times plus the final one")
	img := deps.Holder.Image()
	assert.Equal(t, settings.Palette.Foreground, img.RGBAAt(120/3, 45))

	_, err = os.Stat(filepath.Join(settings.ImagesDirectory, "dragon.png"))
	require.NoError(t, err)

	d, err := deps.Holder.StartDrawing()
	require.NoError(t, err, "dragon released its drawing")
	d.Release()
}

func TestDragonUsesEditedSettings(t *testing.T) {
	deps, _ := newTestDeps(t)
	var seen fractal.Settings
	deps.EditDragon = func(current fractal.Settings) (fractal.Settings, bool) {
		seen = current
		current.IterationsCount = 0
		return current, true
	}
	fixed := fractal.DefaultSettings()
	deps.Settings.Dragon = &fixed

	recorded := 0
	deps.Refresh = func() { recorded++ }
	registry, err := NewRegistry(NewActions(deps))
	require.NoError(t, err)
	require.NoError(t, registry.Run(context.Background(), "dragon"))

	assert.Equal(t, fixed, seen)
	assert.Equal(t, 1, recorded, "zero iterations only flush once")
}

func TestDragonCancelledEdit(t *testing.T) {
	deps, _ := newTestDeps(t)
	deps.EditDragon = Cancel[fractal.Settings]()
	deps.Refresh = func() { t.Fatal("painter must not run") }

	registry, err := NewRegistry(NewActions(deps))
	require.NoError(t, err)
	require.NoError(t, registry.Run(context.Background(), "dragon"))
}

func TestDragonRejectsNegativeIterations(t *testing.T) {
	deps, _ := newTestDeps(t)
	deps.EditDragon = func(current fractal.Settings) (fractal.Settings, bool) {
		current.IterationsCount = -1
		return current, true
	}
	registry, err := NewRegistry(NewActions(deps))
	require.NoError(t, err)

	err = registry.Run(context.Background(), "dragon")
	var ce *fractal.ConfigurationError
	require.ErrorAs(t, err, &ce)
}

func TestImageAndPaletteActions(t *testing.T) {
	deps, settings := newTestDeps(t)
	deps.EditImage = Replace(canvas.ImageSettings{Width: 64, Height: 48})
	palette := fractal.Palette{Background: color.RGBA{A: 255}, Foreground: color.RGBA{G: 255, A: 255}}
	deps.EditPalette = Replace(palette)

	registry, err := NewRegistry(NewActions(deps))
	require.NoError(t, err)
	require.NoError(t, registry.Run(context.Background(), "image", "palette"))

	assert.Equal(t, image.Pt(64, 48), deps.Holder.Size())
	assert.Equal(t, canvas.ImageSettings{Width: 64, Height: 48}, settings.Image)
	assert.Equal(t, palette, settings.Palette)
}

func TestCancelledEditsKeepSettings(t *testing.T) {
	deps, settings := newTestDeps(t)
	deps.EditImage = Cancel[canvas.ImageSettings]()
	deps.EditPalette = Cancel[fractal.Palette]()
	before := *settings

	registry, err := NewRegistry(NewActions(deps))
	require.NoError(t, err)
	require.NoError(t, registry.Run(context.Background(), "image", "palette"))

	assert.Equal(t, before.Image, settings.Image)
	assert.Equal(t, before.Palette, settings.Palette)
	assert.Equal(t, image.Pt(120, 90), deps.Holder.Size())
}

func TestLoadAndSaveSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"Image": {"Width": 320},
		"Seed": 42,
		"Dragon": {"Angle1": 0, "Angle2": 1.5707963267948966, "Scale": 0.5, "IterationsCount": 1000}
	}`), 0o644))

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, canvas.ImageSettings{Width: 320, Height: 600}, settings.Image)
	assert.Equal(t, "images", settings.ImagesDirectory)
	assert.Equal(t, fractal.DefaultPalette(), settings.Palette)
	require.NotNil(t, settings.Seed)
	assert.Equal(t, uint64(42), *settings.Seed)
	require.NotNil(t, settings.Dragon)
	assert.Equal(t, 1000, settings.Dragon.IterationsCount)

	saved := filepath.Join(dir, "saved.json")
	require.NoError(t, settings.Save(saved))
	reloaded, err := LoadSettings(saved)
	require.NoError(t, err)
	assert.Equal(t, settings.Image, reloaded.Image)
	assert.Equal(t, *settings.Dragon, *reloaded.Dragon)
}

func TestLoadSettingsErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadSettings(filepath.Join(dir, "missing.json"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"Dragon": {"IterationsCount": -5}}`), 0o644))
	_, err = LoadSettings(bad)
	var ce *fractal.ConfigurationError
	require.ErrorAs(t, err, &ce)

	defaults, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, canvas.ImageSettings{Width: 800, Height: 600}, defaults.Image)
}
