package app

import (
	"encoding/json"
	"fmt"

	"FractalPainter/canvas"
	"FractalPainter/fractal"
	"FractalPainter/misc"

	"github.com/BrugadaSyndrome/bslogger"
)

// Settings is the persisted application configuration.
type Settings struct {
	logger bslogger.Logger

	// Dragon fixes the fractal settings; when nil each run generates new ones.
	Dragon          *fractal.Settings
	Image           canvas.ImageSettings
	ImagesDirectory string
	Palette         fractal.Palette
	Seed            *uint64
}

func DefaultSettings() Settings {
	s := Settings{
		logger: bslogger.NewLogger("Settings", bslogger.Normal, nil),
	}
	s.Verify()
	return s
}

// LoadSettings reads settingsFile as JSON and fills in defaults. An empty
// file name yields the defaults.
func LoadSettings(settingsFile string) (Settings, error) {
	s := Settings{
		logger: bslogger.NewLogger("Settings", bslogger.Normal, nil),
	}
	if settingsFile != "" {
		fileBytes, err := misc.ReadFile(settingsFile)
		if err != nil {
			return Settings{}, err
		}
		if err := json.Unmarshal(fileBytes, &s); err != nil {
			return Settings{}, fmt.Errorf("unable to parse %s: %w", settingsFile, err)
		}
	}
	if err := s.Verify(); err != nil {
		return Settings{}, err
	}
	s.logger.Debug(s.String())
	return s, nil
}

func (s *Settings) String() string {
	output := "\nApplication settings\n"
	output += fmt.Sprintf("Images Directory: %s\n", s.ImagesDirectory)
	output += fmt.Sprintf("Image: %s\n", s.Image.String())
	output += fmt.Sprintf("Palette: %v\n", s.Palette)
	if s.Dragon != nil {
		output += fmt.Sprintf("Dragon: %s\n", s.Dragon.String())
	}
	if s.Seed != nil {
		output += fmt.Sprintf("Seed: %d\n", *s.Seed)
	}
	return output
}

func (s *Settings) Verify() error {
	if s.ImagesDirectory == "" {
		s.ImagesDirectory = "images"
	}
	misc.CheckError(s.Image.Verify(), s.logger, misc.Warning)
	misc.CheckError(s.Palette.Verify(), s.logger, misc.Warning)
	if s.Dragon != nil {
		if err := s.Dragon.Verify(); err != nil {
			return err
		}
	}
	return nil
}

// Save writes the settings to settingsFile as indented JSON.
func (s *Settings) Save(settingsFile string) error {
	fileBytes, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	bytesWritten, err := misc.WriteFile(settingsFile, fileBytes)
	if err != nil {
		return err
	}
	if bytesWritten == 0 {
		return fmt.Errorf("nothing written to %s", settingsFile)
	}
	s.logger.Info(fmt.Sprintf("Saved settings to %s", settingsFile))
	return nil
}
