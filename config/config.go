// Package config holds the application configuration: YAML with
// environment variable expansion and validation.
package config

import (
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App    AppConfig    `yaml:"app"`
	Page   PageConfig   `yaml:"page"`
	Font   FontConfig   `yaml:"font"`
	Fields FieldsConfig `yaml:"fields"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Page.Validate(); err != nil {
		return err
	}
	return c.Font.Validate()
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *AppConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds the HTTP server configuration for serve mode.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns the HTTP listen address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// MarginConfig holds the page margins in millimeters.
type MarginConfig struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

// PageConfig holds the target page geometry and export settings.
type PageConfig struct {
	Size        string       `yaml:"size"`
	Orientation string       `yaml:"orientation"`
	Margin      MarginConfig `yaml:"margin"`
	// Scale is the raster resolution multiplier used at export.
	Scale  float64 `yaml:"scale"`
	Title  string  `yaml:"title"`
	Header string  `yaml:"header"`
	Footer string  `yaml:"footer"`
}

// Validate validates the page configuration.
func (c *PageConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Size, validation.Required, validation.In("A4", "A5", "Letter", "letter", "a4", "a5")),
		validation.Field(&c.Orientation, validation.In("", "portrait", "landscape")),
		validation.Field(&c.Scale, validation.Min(0.5), validation.Max(8.0)),
	)
}

// FontConfig holds the font used for measurement and rendering.
type FontConfig struct {
	// Path points at a TTF/OTF file; empty means system font discovery.
	Path   string `yaml:"path"`
	Family string `yaml:"family"`

	WordSize   float64 `yaml:"word_size"`
	ChordSize  float64 `yaml:"chord_size"`
	RhythmSize float64 `yaml:"rhythm_size"`
	NoteSize   float64 `yaml:"note_size"`
}

// Validate validates the font configuration.
func (c *FontConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.WordSize, validation.Min(0.0), validation.Max(72.0)),
		validation.Field(&c.ChordSize, validation.Min(0.0), validation.Max(72.0)),
		validation.Field(&c.RhythmSize, validation.Min(0.0), validation.Max(72.0)),
		validation.Field(&c.NoteSize, validation.Min(0.0), validation.Max(72.0)),
	)
}

// FieldsConfig selects which annotation kinds are active at startup.
type FieldsConfig struct {
	Chord  bool `yaml:"chord"`
	Rhythm bool `yaml:"rhythm"`
	Note   bool `yaml:"note"`
}

// NewDefault returns a Config with sensible default values.
func NewDefault() *Config {
	return &Config{
		App: AppConfig{
			LogLevel: slog.LevelInfo,
			HTTP:     HTTPConfig{Port: 8080},
		},
		Page: PageConfig{
			Size:        "A4",
			Orientation: "portrait",
			Margin:      MarginConfig{Top: 20, Right: 20, Bottom: 20, Left: 20},
			Scale:       2,
			Footer:      "${page} / ${pages}",
		},
		Fields: FieldsConfig{Chord: true},
	}
}
