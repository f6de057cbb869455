package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Slider SliderConfig `mapstructure:"slider"`
	UI     UIConfig     `mapstructure:"ui"`
	Log    LogConfig    `mapstructure:"log"`
}

// SliderConfig holds drag behaviour.
type SliderConfig struct {
	MaxDistance float64 `mapstructure:"max_distance"`
}

// UIConfig holds terminal geometry. Lengths are logical pixels; CellWidth and
// CellHeight say how many pixels one terminal cell covers.
type UIConfig struct {
	CellWidth     int           `mapstructure:"cell_width"`
	CellHeight    int           `mapstructure:"cell_height"`
	TrackWidth    int           `mapstructure:"track_width"`
	TrackHeight   int           `mapstructure:"track_height"`
	FrameInterval time.Duration `mapstructure:"frame_interval"`
}

// LogConfig holds logrus settings. The alt screen owns stdout so logs go to a
// file.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultPath is where Load looks when neither an explicit path nor
// BETSLIDER_CONFIG is set.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "betslider", "config.toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("slider.max_distance", 150.0)
	v.SetDefault("ui.cell_width", 10)
	v.SetDefault("ui.cell_height", 20)
	v.SetDefault("ui.track_width", 500)
	v.SetDefault("ui.track_height", 120)
	v.SetDefault("ui.frame_interval", "100ms")
	v.SetDefault("log.file", filepath.Join(os.Getenv("HOME"), ".local", "state", "betslider", "betslider.log"))
	v.SetDefault("log.level", "info")
}

// Default returns the built-in configuration.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

// Load reads configuration from file and env. path wins over BETSLIDER_CONFIG,
// which wins over DefaultPath. A missing file is not an error. Env var
// overrides use prefix BETSLIDER_.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("BETSLIDER_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BETSLIDER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects geometry the slider cannot lay out.
func (c Config) Validate() error {
	switch {
	case c.Slider.MaxDistance <= 0:
		return fmt.Errorf("slider.max_distance must be positive, got %v", c.Slider.MaxDistance)
	case c.UI.CellWidth <= 0 || c.UI.CellHeight <= 0:
		return fmt.Errorf("ui cell size must be positive, got %dx%d", c.UI.CellWidth, c.UI.CellHeight)
	case c.UI.TrackWidth < c.UI.CellWidth || c.UI.TrackHeight < c.UI.CellHeight:
		return fmt.Errorf("ui track %dx%d is smaller than one cell", c.UI.TrackWidth, c.UI.TrackHeight)
	case c.UI.FrameInterval <= 0:
		return fmt.Errorf("ui.frame_interval must be positive, got %v", c.UI.FrameInterval)
	}
	return nil
}

// Save writes cfg as TOML to path, creating the directory if needed. An empty
// path means DefaultPath.
func Save(cfg Config, path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("slider.max_distance", cfg.Slider.MaxDistance)
	v.Set("ui.cell_width", cfg.UI.CellWidth)
	v.Set("ui.cell_height", cfg.UI.CellHeight)
	v.Set("ui.track_width", cfg.UI.TrackWidth)
	v.Set("ui.track_height", cfg.UI.TrackHeight)
	v.Set("ui.frame_interval", cfg.UI.FrameInterval.String())
	v.Set("log.file", cfg.Log.File)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
