package config

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	// Added to vertical speed once per tick while airborne (units/tick²)
	Gravity float64 `yaml:"gravity" toml:"gravity"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MaxSpeed    float64 `yaml:"max_speed" toml:"max_speed"`       // Grounded speed and airborne clamp
	AirAccel    float64 `yaml:"air_accel" toml:"air_accel"`       // Airborne steering per tick
	JumpImpulse float64 `yaml:"jump_impulse" toml:"jump_impulse"` // Upward speed set by a jump

	// Dimensions
	Size float64 `yaml:"size" toml:"size"` // Square collision box edge

	// Spawn point (left edge); the player always starts standing on the floor
	SpawnX float64 `yaml:"spawn_x" toml:"spawn_x"`
}

// ParticleConfig contains impact particle configuration
type ParticleConfig struct {
	Size float64 `yaml:"size" toml:"size"`

	// Impacts at or below this vertical speed count as soft
	SoftImpactSpeed float64 `yaml:"soft_impact_speed" toml:"soft_impact_speed"`
	SoftCount       int     `yaml:"soft_count" toml:"soft_count"` // Particles for a soft impact
	BaseCount       int     `yaml:"base_count" toml:"base_count"` // Minimum particles for a hard impact

	// Launch velocity ranges, [min, max)
	SpeedXMin float64 `yaml:"speed_x_min" toml:"speed_x_min"`
	SpeedXMax float64 `yaml:"speed_x_max" toml:"speed_x_max"`
	SpeedYMin float64 `yaml:"speed_y_min" toml:"speed_y_min"`
	SpeedYMax float64 `yaml:"speed_y_max" toml:"speed_y_max"`

	// Landing on the floor raises an impact. Platform landings always do.
	FloorImpact bool `yaml:"floor_impact" toml:"floor_impact"`
}

// PlatformDef describes one static platform.
type PlatformDef struct {
	Top, Left, Width float64
}

// LevelConfig holds the fixed level layout
type LevelConfig struct {
	PlatformHeight float64
	Platforms      []PlatformDef
}

// SquashStretchConfig contains squash/stretch effect configuration
type SquashStretchConfig struct {
	LandScaleX float64 // horizontal scale on land (> 1 = wider)
	LandScaleY float64 // vertical scale on land (< 1 = shorter)
	Duration   float32 // seconds to ease back to normal scale
}

// ColorConfig contains the draw palette
type ColorConfig struct {
	Background color.RGBA
	Player     color.RGBA
	Platform   color.RGBA
	Particle   color.RGBA
	HUDText    color.RGBA
	Debug      color.RGBA
}

// MenuConfig contains the pause menu palette and button size
type MenuConfig struct {
	Overlay       color.RGBA
	Panel         color.RGBA
	ButtonIdle    color.RGBA
	ButtonHover   color.RGBA
	ButtonPressed color.RGBA
	Text          color.RGBA
	TextHover     color.RGBA
	ButtonWidth   int
	ButtonHeight  int
}

// Config holds general game configuration
type Config struct {
	Width    int
	Height   int
	TickRate int
	Title    string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // Draw broad-phase cells and proxies
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Particle ParticleConfig
var Level LevelConfig
var SquashStretch SquashStretchConfig
var Colors ColorConfig
var Menu MenuConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:    700,
		Height:   500,
		TickRate: 30,
		Title:    "Platformer",
	}

	Physics = PhysicsConfig{
		Gravity: 0.5,
	}

	Player = PlayerConfig{
		MaxSpeed:    4.0,
		AirAccel:    0.2,
		JumpImpulse: 10.0,
		Size:        30,
		SpawnX:      0,
	}

	Particle = ParticleConfig{
		Size:            4,
		SoftImpactSpeed: 1.0,
		SoftCount:       25,
		BaseCount:       5,
		SpeedXMin:       -5,
		SpeedXMax:       5,
		SpeedYMin:       -10,
		SpeedYMax:       -1,
		FloorImpact:     true,
	}

	// Platform tops are measured up from the bottom of the screen
	h := float64(C.Height)
	Level = LevelConfig{
		PlatformHeight: 10,
		Platforms: []PlatformDef{
			{Top: h - 80, Left: 100, Width: 300},
			{Top: h - 160, Left: 200, Width: 100},
			{Top: h - 240, Left: 40, Width: 150},
			{Top: h - 240, Left: 340, Width: 150},
		},
	}

	SquashStretch = SquashStretchConfig{
		LandScaleX: 1.3,
		LandScaleY: 0.7,
		Duration:   0.25,
	}

	Colors = ColorConfig{
		Background: colornames.White,
		Player:     colornames.Crimson,
		Platform:   colornames.Black,
		Particle:   colornames.Darkorange,
		HUDText:    colornames.Dimgray,
		Debug:      colornames.Deepskyblue,
	}

	Menu = MenuConfig{
		Overlay:       color.RGBA{0, 0, 0, 140},
		Panel:         color.RGBA{20, 20, 30, 230},
		ButtonIdle:    color.RGBA{60, 60, 80, 255},
		ButtonHover:   color.RGBA{80, 80, 100, 255},
		ButtonPressed: color.RGBA{40, 40, 60, 255},
		Text:          colornames.White,
		TextHover:     color.RGBA{255, 255, 200, 255},
		ButtonWidth:   140,
		ButtonHeight:  24,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Overlay: false,
	}
}
