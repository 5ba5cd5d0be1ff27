package config

import (
	"errors"
	"fmt"
	"os"

	css "github.com/mazznoer/csscolorparser"
	"gopkg.in/yaml.v3"
)

const DefaultFilename = "glowquad.yaml"

// Config is shared by every host. Hosts that cannot read files
// (the browser) run with Default().
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	Vsync  bool   `yaml:"vsync"`

	// any CSS colour: "black", "#000", "rgb(0, 0, 0)"...
	ClearColor string `yaml:"clearColor"`

	ClampPointer bool `yaml:"clampPointer"`

	ShowDebug bool `yaml:"showDebug"`
}

func Default() Config {
	return Config{
		Width:      800,
		Height:     600,
		Title:      "glowquad",
		Vsync:      true,
		ClearColor: "#000000",
	}
}

// Load reads path on top of Default(). Keys missing from the file
// keep their default value.
func Load(path string) (Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// LoadOrDefault is Load, except a missing file yields Default().
func LoadOrDefault(path string) (Config, error) {
	c, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return c, err
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if _, err := c.ClearRGBA(); err != nil {
		return err
	}
	return nil
}

// ClearRGBA returns the clear colour as normalized RGBA.
func (c Config) ClearRGBA() ([4]float32, error) {
	clr, err := css.Parse(c.ClearColor)
	if err != nil {
		return [4]float32{}, fmt.Errorf("clear color %q: %w", c.ClearColor, err)
	}

	return [4]float32{
		float32(clr.R),
		float32(clr.G),
		float32(clr.B),
		float32(clr.A),
	}, nil
}
