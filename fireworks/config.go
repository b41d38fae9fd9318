package fireworks

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"

	"github.com/phanxgames/gamesetup"
	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// RocketConfig places one rocket and its launch button.
type RocketConfig struct {
	Color string  `yaml:"color"`
	X     float64 `yaml:"x"`
}

// SoundConfig optionally replaces the synthesized effects with files.
// Paths ending in .wav or .mp3 are accepted.
type SoundConfig struct {
	Launch string `yaml:"launch"`
	Bang   string `yaml:"bang"`
}

// Config is the fireworks scene configuration. Keys absent from a file keep
// the values of DefaultConfig.
type Config struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`

	Rockets []RocketConfig `yaml:"rockets"`
	Ground  float64        `yaml:"ground"`

	// Climb is the range the explosion height above the ground is drawn from.
	ClimbMin float64 `yaml:"climb_min"`
	ClimbMax float64 `yaml:"climb_max"`

	LaunchSeconds  float64 `yaml:"launch_seconds"`
	RestoreSeconds float64 `yaml:"restore_seconds"`
	RestoreDelayMs float64 `yaml:"restore_delay_ms"`
	Easing         string  `yaml:"easing"`

	Particles int   `yaml:"particles"`
	Stars     int   `yaml:"stars"`
	Seed      int64 `yaml:"seed"`

	Muted  bool        `yaml:"muted"`
	Volume float64     `yaml:"volume"`
	Sounds SoundConfig `yaml:"sounds"`
}

// Colors are the rocket colors a config may name.
var Colors = map[string]gamesetup.Color{
	"red":    gamesetup.RGB(255, 0, 0),
	"green":  gamesetup.RGB(0, 255, 0),
	"blue":   gamesetup.RGB(0, 0, 255),
	"yellow": gamesetup.RGB(255, 201, 14),
	"pink":   gamesetup.RGB(255, 0, 255),
}

var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"out-sine":     ease.OutSine,
	"out-expo":     ease.OutExpo,
	"out-circ":     ease.OutCirc,
	"out-back":     ease.OutBack,
}

// DefaultConfig returns the classic five-rocket show.
func DefaultConfig() Config {
	return Config{
		Title:  "Fireworks",
		Width:  600,
		Height: 625,
		Rockets: []RocketConfig{
			{"red", 100},
			{"green", 200},
			{"blue", 300},
			{"pink", 400},
			{"yellow", 500},
		},
		Ground:         520,
		ClimbMin:       300,
		ClimbMax:       400,
		LaunchSeconds:  0.5,
		RestoreSeconds: 0.5,
		RestoreDelayMs: 2000,
		Easing:         "linear",
		Particles:      50,
		Stars:          40,
		Volume:         1,
	}
}

var unknownField = regexp.MustCompile(`field (\S+) not found`)

// LoadConfig reads a YAML config file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	defer f.Close()
	return ParseConfig(f, path)
}

// ParseConfig decodes YAML from r on top of DefaultConfig. source names r in
// errors. A key the schema does not declare yields a *ConfigurationError.
func ParseConfig(r io.Reader, source string) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		var te *yaml.TypeError
		if errors.As(err, &te) {
			for _, msg := range te.Errors {
				if m := unknownField.FindStringSubmatch(msg); m != nil {
					return Config{}, &gamesetup.ConfigurationError{Key: m[1], Source: source}
				}
			}
		}
		return Config{}, fmt.Errorf("parse config %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", source, err)
	}
	return cfg, nil
}

// Validate checks value ranges and names.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	}
	if len(c.Rockets) == 0 {
		return errors.New("no rockets")
	}
	for i, r := range c.Rockets {
		if _, ok := Colors[r.Color]; !ok {
			return fmt.Errorf("rocket %d: unknown color %q (have %v)", i, r.Color, colorNames())
		}
	}
	if c.ClimbMin <= 0 || c.ClimbMax < c.ClimbMin {
		return fmt.Errorf("climb range [%g, %g] is invalid", c.ClimbMin, c.ClimbMax)
	}
	if c.LaunchSeconds <= 0 || c.RestoreSeconds <= 0 {
		return errors.New("launch and restore durations must be positive")
	}
	if c.RestoreDelayMs < 0 {
		return errors.New("restore delay must not be negative")
	}
	if _, ok := easings[c.Easing]; !ok {
		return fmt.Errorf("unknown easing %q", c.Easing)
	}
	if c.Particles < 0 || c.Stars < 0 {
		return errors.New("particle and star counts must not be negative")
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume %g outside [0, 1]", c.Volume)
	}
	return nil
}

// EasingFunc returns the tween function named by Easing.
func (c Config) EasingFunc() ease.TweenFunc {
	if fn, ok := easings[c.Easing]; ok {
		return fn
	}
	return ease.Linear
}

func colorNames() []string {
	names := make([]string, 0, len(Colors))
	for name := range Colors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
