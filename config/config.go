// Package config loads the effective settings for a skyraid session from
// defaults, an optional YAML file and SKYRAID_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/plus3/skyraid/city"
	"github.com/plus3/skyraid/sim"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override, e.g. SKYRAID_LOG_LEVEL.
const EnvPrefix = "SKYRAID"

// ErrInvalid is returned when a loaded value is out of range.
var ErrInvalid = errors.New("invalid config")

// LogConfig selects the logger.
type LogConfig struct {
	Level    string `mapstructure:"level" yaml:"level"`
	Encoding string `mapstructure:"encoding" yaml:"encoding"`
}

// WindowConfig sizes the interactive host.
type WindowConfig struct {
	Title  string `mapstructure:"title" yaml:"title"`
	Width  int    `mapstructure:"width" yaml:"width"`
	Height int    `mapstructure:"height" yaml:"height"`
	TPS    int    `mapstructure:"tps" yaml:"tps"`
}

// DebugConfig controls the ImGui overlay.
type DebugConfig struct {
	Overlay       bool `mapstructure:"overlay" yaml:"overlay"`
	HistoryFrames int  `mapstructure:"historyFrames" yaml:"historyFrames"`
	PageSize      int  `mapstructure:"pageSize" yaml:"pageSize"`
}

// Config is the full effective configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Window WindowConfig `mapstructure:"window" yaml:"window"`
	// Model is the path to a YAML model manifest. Empty selects the builtin drone.
	Model string      `mapstructure:"model" yaml:"model"`
	City  city.Params `mapstructure:"city" yaml:"city"`
	Sim   sim.Tuning  `mapstructure:"sim" yaml:"sim"`
	Debug DebugConfig `mapstructure:"debug" yaml:"debug"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "json")

	v.SetDefault("window.title", "skyraid")
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.tps", 60)

	v.SetDefault("model", "")

	c := city.DefaultParams()
	v.SetDefault("city.columnsX", c.ColumnsX)
	v.SetDefault("city.rowsZ", c.RowsZ)
	v.SetDefault("city.buildingSize", c.BuildingSize)
	v.SetDefault("city.footprintScale", c.FootprintScale)
	v.SetDefault("city.spacing", c.Spacing)
	v.SetDefault("city.width", c.Width)
	v.SetDefault("city.depth", c.Depth)
	v.SetDefault("city.startZ", c.StartZ)
	v.SetDefault("city.baseHeight", c.BaseHeight)
	v.SetDefault("city.heightJitter", c.HeightJitter)
	v.SetDefault("city.textureCount", c.TextureCount)
	v.SetDefault("city.roadWidth", c.RoadWidth)
	v.SetDefault("city.seed", c.Seed)

	t := sim.DefaultTuning()
	v.SetDefault("sim.defaultSpeed", t.DefaultSpeed)
	v.SetDefault("sim.maxSpeed", t.MaxSpeed)
	v.SetDefault("sim.accelStep", t.AccelStep)
	v.SetDefault("sim.decelStep", t.DecelStep)
	v.SetDefault("sim.maxTilt", t.MaxTilt)
	v.SetDefault("sim.tiltSpeed", t.TiltSpeed)
	v.SetDefault("sim.startAltitude", t.StartAlt)
	v.SetDefault("sim.modelScale", t.ModelScale)
	v.SetDefault("sim.hitboxSize", t.HitboxSize[:])
	v.SetDefault("sim.hitboxOffset", t.HitboxOffset[:])
	v.SetDefault("sim.enemySpeed", t.EnemySpeed)
	v.SetDefault("sim.enemyCap", t.EnemyCap)
	v.SetDefault("sim.spawnInterval", t.SpawnInterval)
	v.SetDefault("sim.spawnLane", t.SpawnLane)
	v.SetDefault("sim.randomLanes", t.RandomLanes)
	v.SetDefault("sim.minAltitude", t.MinAltitude)
	v.SetDefault("sim.maxAltitude", t.MaxAltitude)
	v.SetDefault("sim.enemySpacing", t.EnemySpacing)
	v.SetDefault("sim.enemyBaseOffset", t.EnemyBaseOffset)
	v.SetDefault("sim.reloadInterval", t.ReloadInterval)
	v.SetDefault("sim.projectileSpeed", t.ProjectileSpeed)
	v.SetDefault("sim.projectileTTL", t.ProjectileTTL)
	v.SetDefault("sim.projectileSize", t.ProjectileSize)
	v.SetDefault("sim.noseOffset", t.NoseOffset)
	v.SetDefault("sim.cameraOffset", t.CameraOffset[:])
	v.SetDefault("sim.cameraElasticity", t.CameraElasticity)
	v.SetDefault("sim.cameraOffsetMargin", t.CameraOffsetMargin)

	v.SetDefault("debug.overlay", false)
	v.SetDefault("debug.historyFrames", 120)
	v.SetDefault("debug.pageSize", 50)
}

// Default returns the configuration used when no file or environment override is present.
func Default() *Config {
	cfg, err := load(viper.New(), "")
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads path (if not empty) over the defaults and applies environment overrides.
func Load(path string) (*Config, error) {
	return load(viper.New(), path)
}

func load(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level: %w", ErrInvalid, err)
	}
	if c.Log.Encoding != "json" && c.Log.Encoding != "console" {
		return fmt.Errorf("%w: log encoding %q", ErrInvalid, c.Log.Encoding)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 || c.Window.TPS <= 0 {
		return fmt.Errorf("%w: window %dx%d at %d tps", ErrInvalid, c.Window.Width, c.Window.Height, c.Window.TPS)
	}
	if c.Debug.HistoryFrames <= 0 || c.Debug.PageSize <= 0 {
		return fmt.Errorf("%w: debug history %d page %d", ErrInvalid, c.Debug.HistoryFrames, c.Debug.PageSize)
	}
	if err := c.City.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := c.Sim.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Write dumps cfg as YAML. The output can be fed back to Load.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}
