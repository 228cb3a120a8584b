package draw

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"gopkg.in/yaml.v3"
)

// AppContentReader defines the interface for reading content from the embedded file system.
type AppContentReader interface {
	ReadFile(name string) ([]byte, error)
}

// ConfigPath is where the draw configuration lives inside the embedded assets.
const ConfigPath = "assets/draw_config.yaml"

// UI constants
const (
	FontSize float32 = 16.0 // Labels, entries and the button

	// Dimensions
	EntryWidthMax      = 110
	EntryWidthQuantity = 80
	ButtonWidth        = 220
	ButtonHeight       = 48
	ResultPadding      = 20
	BorderWidth        = 3.0
)

var (
	// BorderColor outlines the result label.
	BorderColor = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
)

// Config holds the static configuration of the draw window and animation.
type Config struct {
	DefaultMaxNumber int `yaml:"default_max_number"`
	DefaultQuantity  int `yaml:"default_quantity"`
	MaxQuantity      int `yaml:"max_quantity"`

	SingleTick     time.Duration `yaml:"single_tick"`
	SingleDuration time.Duration `yaml:"single_duration"`
	MultiTick      time.Duration `yaml:"multi_tick"`

	WindowWidth    float32 `yaml:"window_width"`
	WindowHeight   float32 `yaml:"window_height"`
	ResultTextSize float32 `yaml:"result_text_size"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultMaxNumber: 50,
		DefaultQuantity:  1,
		MaxQuantity:      10000,
		SingleTick:       100 * time.Millisecond,
		SingleDuration:   1200 * time.Millisecond,
		MultiTick:        time.Second,
		WindowWidth:      600,
		WindowHeight:     400,
		ResultTextSize:   120,
	}
}

// Validate checks that every value can drive the window and the animation.
func (c *Config) Validate() error {
	if c.DefaultMaxNumber <= 0 || c.DefaultQuantity <= 0 {
		return fmt.Errorf("defaults must be positive (max %d, quantity %d)", c.DefaultMaxNumber, c.DefaultQuantity)
	}
	if c.MaxQuantity < c.DefaultQuantity {
		return fmt.Errorf("max quantity %d is below the default quantity %d", c.MaxQuantity, c.DefaultQuantity)
	}
	if c.SingleTick <= 0 || c.SingleDuration <= 0 || c.MultiTick <= 0 {
		return fmt.Errorf("animation timings must be positive")
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 || c.ResultTextSize <= 0 {
		return fmt.Errorf("window dimensions must be positive")
	}
	return nil
}

// LoadConfig reads the embedded YAML configuration on top of DefaultConfig.
func LoadConfig(reader AppContentReader) (*Config, error) {
	data, err := reader.ReadFile(ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read draw config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draw config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid draw config: %w", err)
	}

	log.Printf("Loaded draw config: single %v/%v, multi %v", cfg.SingleTick, cfg.SingleDuration, cfg.MultiTick)
	return cfg, nil
}
