package game

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/gloomcrawl/internal/dungeon"
	"github.com/samdwyer/gloomcrawl/internal/entity"
	"github.com/samdwyer/gloomcrawl/internal/world"
)

// Environment variables read by ApplyEnv.
const (
	EnvConfig = "GLOOMCRAWL_CONFIG"
	EnvSeed   = "GLOOMCRAWL_SEED"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. The same seed reproduces the same
	// level. A seed of 0 means a random seed will be generated.
	Seed    int64        `yaml:"seed"`
	Map     MapConfig    `yaml:"map"`
	Rooms   RoomConfig   `yaml:"rooms"`
	Player  PlayerConfig `yaml:"player"`
	LogFile string       `yaml:"log_file"`
}

// MapConfig sizes the level and the part of it shown on screen.
type MapConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	ViewWidth  int `yaml:"view_width"`
	ViewHeight int `yaml:"view_height"`
}

// RoomConfig controls room generation and population.
type RoomConfig struct {
	MaxRooms    int `yaml:"max_rooms"`
	MinSize     int `yaml:"min_size"`
	MaxSize     int `yaml:"max_size"`
	MaxMonsters int `yaml:"max_monsters"`
	MaxItems    int `yaml:"max_items"`
}

// PlayerConfig holds player-side limits.
type PlayerConfig struct {
	FOVRadius         int `yaml:"fov_radius"`
	InventoryCapacity int `yaml:"inventory_capacity"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	p := dungeon.DefaultParams()
	return &Config{
		Map: MapConfig{
			Width:      p.Width,
			Height:     p.Height,
			ViewWidth:  p.ViewWidth,
			ViewHeight: p.ViewHeight,
		},
		Rooms: RoomConfig{
			MaxRooms:    p.MaxRooms,
			MinSize:     p.MinRoomSize,
			MaxSize:     p.MaxRoomSize,
			MaxMonsters: p.MaxMonstersPerRoom,
			MaxItems:    p.MaxItemsPerRoom,
		},
		Player: PlayerConfig{
			FOVRadius:         world.FOVRadius,
			InventoryCapacity: entity.DefaultCapacity,
		},
		LogFile: "gloomcrawl.log",
	}
}

// LoadConfig reads a YAML file over the defaults. A missing file is not
// an error; fields the file leaves out keep their default values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides the seed from GLOOMCRAWL_SEED when set.
func (c *Config) ApplyEnv() error {
	v := os.Getenv(EnvSeed)
	if v == "" {
		return nil
	}
	seed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", EnvSeed, v, err)
	}
	c.Seed = seed
	return nil
}

// Validate checks that the values describe a playable level.
func (c *Config) Validate() error {
	switch {
	case c.Map.Width < 3 || c.Map.Height < 3:
		return fmt.Errorf("map must be at least 3x3, got %dx%d", c.Map.Width, c.Map.Height)
	case c.Map.ViewWidth <= 0 || c.Map.ViewHeight <= 0:
		return fmt.Errorf("viewport must be positive, got %dx%d", c.Map.ViewWidth, c.Map.ViewHeight)
	case c.Rooms.MinSize <= 0 || c.Rooms.MaxSize < c.Rooms.MinSize:
		return fmt.Errorf("room size range %d..%d is invalid", c.Rooms.MinSize, c.Rooms.MaxSize)
	case c.Rooms.MaxRooms <= 0:
		return fmt.Errorf("max rooms must be positive, got %d", c.Rooms.MaxRooms)
	case c.Rooms.MaxMonsters < 0 || c.Rooms.MaxItems < 0:
		return fmt.Errorf("per-room limits must not be negative")
	case c.Player.FOVRadius <= 0:
		return fmt.Errorf("fov radius must be positive, got %d", c.Player.FOVRadius)
	case c.Player.InventoryCapacity <= 0 || c.Player.InventoryCapacity > entity.DefaultCapacity:
		return fmt.Errorf("inventory capacity must be 1..%d, got %d", entity.DefaultCapacity, c.Player.InventoryCapacity)
	}
	return nil
}

// ResolveSeed returns the configured seed, picking one from the clock
// when it is 0.
func (c *Config) ResolveSeed() int64 {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c.Seed
}

// DungeonParams converts the config into generator parameters.
func (c *Config) DungeonParams() dungeon.Params {
	return dungeon.Params{
		Width:              c.Map.Width,
		Height:             c.Map.Height,
		MaxRooms:           c.Rooms.MaxRooms,
		MinRoomSize:        c.Rooms.MinSize,
		MaxRoomSize:        c.Rooms.MaxSize,
		MaxMonstersPerRoom: c.Rooms.MaxMonsters,
		MaxItemsPerRoom:    c.Rooms.MaxItems,
		ViewWidth:          c.Map.ViewWidth,
		ViewHeight:         c.Map.ViewHeight,
	}
}
