package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/voxel-map/grid"
)

// EnvPrefix prefixes environment overrides, e.g. VOXELMAP_LOG_LEVEL
const EnvPrefix = "VOXELMAP"

// AppName names the config directory and the binary
const AppName = "voxel-map"

// Config holds application configuration
type Config struct {
	Debug  bool
	Log    LogConfig
	Audio  AudioConfig
	Grid   GridConfig
	Render RenderConfig
}

// LogConfig holds file logging settings
type LogConfig struct {
	Enabled bool
	Level   string
	Dir     string
}

// AudioConfig holds cue playback settings
type AudioConfig struct {
	Enabled bool
	Volume  float64
}

// GridConfig holds tile generation settings
type GridConfig struct {
	Center string
}

// RenderConfig holds loop timing and tile appearance
type RenderConfig struct {
	Tick  time.Duration
	Frame time.Duration
	Glyph string
}

// CenterMode returns the parsed grid centering mode
func (c Config) CenterMode() grid.CenterMode {
	m, _ := grid.ParseCenterMode(c.Grid.Center)
	return m
}

// TileGlyph returns the first rune of the configured glyph, 0 if unset
func (c Config) TileGlyph() rune {
	r, _ := utf8.DecodeRuneInString(c.Render.Glyph)
	if r == utf8.RuneError {
		return 0
	}
	return r
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("log.enabled", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "logs")
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.5)
	v.SetDefault("grid.center", grid.CenterWidth.String())
	v.SetDefault("render.tick", 50*time.Millisecond)
	v.SetDefault("render.frame", 16*time.Millisecond)
	v.SetDefault("render.glyph", "▣")
}

// NewFlagSet declares the command line flags
func NewFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(AppName, pflag.ContinueOnError)
	fs.String("config", "", "config file (default $XDG_CONFIG_HOME/voxel-map/config.toml)")
	fs.Bool("debug", false, "panic on internal invariant violations")
	fs.Bool("log", false, "write logs to the log directory")
	fs.String("log-level", "info", "log level: trace, debug, info, warn, error")
	fs.String("log-dir", "logs", "log directory")
	fs.Bool("audio", true, "play feedback cues")
	fs.Float64("volume", 0.5, "cue volume in [0, 1]")
	fs.String("center", grid.CenterWidth.String(), "Y centering: width or extent")
	fs.Duration("tick", 50*time.Millisecond, "simulation tick interval")
	return fs
}

var flagKeys = map[string]string{
	"debug":     "debug",
	"log":       "log.enabled",
	"log-level": "log.level",
	"log-dir":   "log.dir",
	"audio":     "audio.enabled",
	"volume":    "audio.volume",
	"center":    "grid.center",
	"tick":      "render.tick",
}

// Load reads configuration with precedence flags > env > file > defaults
// Returns pflag.ErrHelp when -h was given
func Load(args []string) (Config, error) {
	fs := NewFlagSet()
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	setDefaults(v)

	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return Config{}, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("toml")
	path, _ := fs.GetString("config")
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, AppName))
		}
		v.SetConfigName("config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
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

// Validate rejects values the application cannot run with
func (c Config) Validate() error {
	if _, err := grid.ParseCenterMode(c.Grid.Center); err != nil {
		return fmt.Errorf("grid.center: %w", err)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume %v outside [0, 1]", c.Audio.Volume)
	}
	if c.Render.Tick <= 0 {
		return fmt.Errorf("render.tick must be positive, got %v", c.Render.Tick)
	}
	if c.Render.Frame <= 0 {
		return fmt.Errorf("render.frame must be positive, got %v", c.Render.Frame)
	}
	return nil
}
