package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config is the rangeslider.toml file read by the demo binary.
type Config struct {
	Window   WindowConfig   `toml:"window"`
	LogLevel string         `toml:"log_level"`
	Sliders  []SliderConfig `toml:"slider"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	// Let the user resize the window; sliders follow the new width.
	Resizable bool `toml:"resizable"`
}

// SliderConfig describes one range slider. Left and Right are optional; when
// unset the slider selects its whole range.
type SliderConfig struct {
	Name    string   `toml:"name"`
	Minimum float64  `toml:"minimum"`
	Maximum float64  `toml:"maximum"`
	Left    *float64 `toml:"left,omitempty"`
	Right   *float64 `toml:"right,omitempty"`

	TrackHeight    float64 `toml:"track_height"`
	ThumbSize      float64 `toml:"thumb_size"`
	Thumb          string  `toml:"thumb"` // "round" or "box"
	TrackColor     string  `toml:"track_color,omitempty"`
	HighlightColor string  `toml:"highlight_color,omitempty"`
}

// Default is the demo screen: one small and one wide slider.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     640,
			Height:    480,
			Title:     "Range Slider",
			Resizable: true,
		},
		LogLevel: "info",
		Sliders: []SliderConfig{
			{Name: "small", Minimum: 1, Maximum: 5, TrackHeight: 10, ThumbSize: 20, Thumb: "round"},
			{Name: "wide", Minimum: 1, Maximum: 1000, TrackHeight: 10, ThumbSize: 20, Thumb: "round"},
		},
	}
}

// Load reads path on top of Default. Sliders in the file replace the default
// sliders as a whole.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode unmarshals TOML data into cfg and validates the result.
func Decode(data []byte, cfg *Config) error {
	def := cfg.Sliders
	cfg.Sliders = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		cfg.Sliders = def
		return err
	}
	if cfg.Sliders == nil {
		cfg.Sliders = def
	}
	return cfg.Validate()
}

// Encode renders cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

var (
	ErrNoSliders = errors.New("config: at least one slider is required")
	ErrWindow    = errors.New("config: window size must be positive")
)

// Validate fills in per-slider defaults and rejects structural problems.
// Numeric bounds are not checked here: the slider model clamps them.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrWindow, c.Window.Width, c.Window.Height)
	}
	if len(c.Sliders) == 0 {
		return ErrNoSliders
	}
	for i := range c.Sliders {
		s := &c.Sliders[i]
		if s.Name == "" {
			s.Name = "slider" + strconv.Itoa(i+1)
		}
		if s.TrackHeight <= 0 {
			s.TrackHeight = 10
		}
		if s.ThumbSize <= 0 {
			s.ThumbSize = 20
		}
		switch s.Thumb {
		case "":
			s.Thumb = "round"
		case "round", "box":
		default:
			return fmt.Errorf("config: slider %q: unknown thumb %q", s.Name, s.Thumb)
		}
		for _, hex := range []string{s.TrackColor, s.HighlightColor} {
			if hex == "" {
				continue
			}
			if _, err := ParseColor(hex); err != nil {
				return fmt.Errorf("config: slider %q: %w", s.Name, err)
			}
		}
	}
	return nil
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA" into a premultiplied color.RGBA.
func ParseColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("bad color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	r, g, b, a := uint32(v>>24), uint32(v>>16&0xff), uint32(v>>8&0xff), uint32(v&0xff)
	return color.RGBA{
		R: uint8(r * a / 255),
		G: uint8(g * a / 255),
		B: uint8(b * a / 255),
		A: uint8(a),
	}, nil
}
