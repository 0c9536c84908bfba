// Package config loads server configuration from embedded defaults overlaid
// with an optional YAML file
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/garden-api/internal/engine/growth"
	"github.com/KirkDiggler/garden-api/internal/errors"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Ledger backends
const (
	BackendRedis  = "redis"
	BackendLocal  = "local"
	BackendMemory = "memory"
)

// Backends lists the accepted ledger backends
var Backends = []string{BackendRedis, BackendLocal, BackendMemory}

// Config holds every server setting
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Ledger  LedgerConfig  `yaml:"ledger"`
	Grid    GridConfig    `yaml:"grid"`
	Growth  GrowthConfig  `yaml:"growth"`
	Sprites SpritesConfig `yaml:"sprites"`
	SpeedUp SpeedUpConfig `yaml:"speed_up"`
}

// ServerConfig holds transport settings
type ServerConfig struct {
	Port int `yaml:"port"`
	// TickInterval is how often growing trees are re-evaluated
	TickInterval time.Duration `yaml:"tick_interval"`
}

// LedgerConfig selects where wallets persist
type LedgerConfig struct {
	Backend   string `yaml:"backend"`
	RedisAddr string `yaml:"redis_addr"`
	AppName   string `yaml:"app_name"`
	KeyPrefix string `yaml:"key_prefix"`
}

// GridConfig sizes the garden
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GrowthConfig holds the tree formulas
type GrowthConfig struct {
	BaseDuration time.Duration `yaml:"base_duration"`
	StepDuration time.Duration `yaml:"step_duration"`
	FruitCap     int           `yaml:"fruit_cap"`
	FruitStep    int           `yaml:"fruit_step"`
	FruitFloor   int           `yaml:"fruit_floor"`
}

// SpritesConfig sizes the sprite field
type SpritesConfig struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	BoxSize           float64 `yaml:"box_size"`
	Stride            float64 `yaml:"stride"`
	MinDisplacement   float64 `yaml:"min_displacement"`
	PlacementAttempts int     `yaml:"placement_attempts"`
}

// SpeedUpConfig prices instant regrowth
type SpeedUpConfig struct {
	CostPerMinute int64 `yaml:"cost_per_minute"`
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// only fields present in the file are overwritten
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.port", c.Server.Port, 1, 65535, vb)
	if c.Server.TickInterval <= 0 {
		vb.Field("server.tick_interval", "must be positive")
	}

	errors.ValidateEnum("ledger.backend", c.Ledger.Backend, Backends, vb)
	if c.Ledger.Backend == BackendRedis {
		errors.ValidateRequired("ledger.redis_addr", c.Ledger.RedisAddr, vb)
	}
	if c.Ledger.Backend == BackendLocal {
		errors.ValidateRequired("ledger.app_name", c.Ledger.AppName, vb)
	}

	errors.ValidatePositive("grid.width", int64(c.Grid.Width), vb)
	errors.ValidatePositive("grid.height", int64(c.Grid.Height), vb)

	if c.Growth.BaseDuration <= 0 {
		vb.Field("growth.base_duration", "must be positive")
	}
	if c.Growth.StepDuration < 0 {
		vb.Field("growth.step_duration", "cannot be negative")
	}
	errors.ValidatePositive("growth.fruit_floor", int64(c.Growth.FruitFloor), vb)
	if c.Growth.FruitCap < c.Growth.FruitFloor {
		vb.Field("growth.fruit_cap", "must be at least fruit_floor")
	}
	if c.Growth.FruitStep < 0 {
		vb.Field("growth.fruit_step", "cannot be negative")
	}

	if c.Sprites.Width < 1 || c.Sprites.Height < 1 {
		vb.Field("sprites", "width and height must be at least 1")
	}
	if c.Sprites.BoxSize <= 0 || c.Sprites.Stride <= 0 || c.Sprites.MinDisplacement <= 0 {
		vb.Field("sprites", "box_size, stride and min_displacement must be positive")
	}
	errors.ValidatePositive("sprites.placement_attempts", int64(c.Sprites.PlacementAttempts), vb)

	if c.SpeedUp.CostPerMinute < 0 {
		vb.Field("speed_up.cost_per_minute", "cannot be negative")
	}

	return vb.Build()
}

// GrowthRules converts the growth section
func (c *Config) GrowthRules() growth.Rules {
	return growth.Rules{
		BaseDuration: c.Growth.BaseDuration,
		StepDuration: c.Growth.StepDuration,
		FruitCap:     c.Growth.FruitCap,
		FruitStep:    c.Growth.FruitStep,
		FruitFloor:   c.Growth.FruitFloor,
	}
}

// YAML renders the effective configuration
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}
