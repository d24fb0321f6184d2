package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalid marks configuration that fails validation.
var ErrInvalid = errors.New("invalid configuration")

// Tuning groups the values the physics step reads every tick. A tuning file
// may override any of them; the level layout is not part of it.
type Tuning struct {
	Physics  PhysicsConfig  `yaml:"physics" toml:"physics"`
	Player   PlayerConfig   `yaml:"player" toml:"player"`
	Particle ParticleConfig `yaml:"particle" toml:"particle"`
}

// Default returns the tuning held by the package-level configuration.
func Default() Tuning {
	return Tuning{
		Physics:  Physics,
		Player:   Player,
		Particle: Particle,
	}
}

// Validate rejects values the physics step cannot work with.
func (t Tuning) Validate() error {
	switch {
	case t.Physics.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive, got %v", ErrInvalid, t.Physics.Gravity)
	case t.Player.MaxSpeed <= 0:
		return fmt.Errorf("%w: player max speed must be positive, got %v", ErrInvalid, t.Player.MaxSpeed)
	case t.Player.AirAccel < 0:
		return fmt.Errorf("%w: player air accel must not be negative, got %v", ErrInvalid, t.Player.AirAccel)
	case t.Player.JumpImpulse < 0:
		return fmt.Errorf("%w: jump impulse must not be negative, got %v", ErrInvalid, t.Player.JumpImpulse)
	case t.Player.Size <= 0:
		return fmt.Errorf("%w: player size must be positive, got %v", ErrInvalid, t.Player.Size)
	case t.Particle.Size <= 0:
		return fmt.Errorf("%w: particle size must be positive, got %v", ErrInvalid, t.Particle.Size)
	case t.Particle.SoftCount < 0 || t.Particle.BaseCount < 0:
		return fmt.Errorf("%w: particle counts must not be negative", ErrInvalid)
	case t.Particle.SpeedXMin >= t.Particle.SpeedXMax:
		return fmt.Errorf("%w: particle x speed range [%v, %v) is empty", ErrInvalid, t.Particle.SpeedXMin, t.Particle.SpeedXMax)
	case t.Particle.SpeedYMin >= t.Particle.SpeedYMax:
		return fmt.Errorf("%w: particle y speed range [%v, %v) is empty", ErrInvalid, t.Particle.SpeedYMin, t.Particle.SpeedYMax)
	}
	return nil
}

// LoadFile reads a tuning file and applies it on top of base. Keys missing
// from the file keep their base value. The decoder is picked by extension.
func LoadFile(path string, base Tuning) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read tuning %s: %w", path, err)
	}

	t := base
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &t); err != nil {
			return base, fmt.Errorf("decode tuning %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &t); err != nil {
			return base, fmt.Errorf("decode tuning %s: %w", path, err)
		}
	default:
		return base, fmt.Errorf("%w: unsupported tuning file extension %q", ErrInvalid, ext)
	}

	if err := t.Validate(); err != nil {
		return base, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}

// IsTuningFile reports whether path has an extension LoadFile understands.
func IsTuningFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".toml":
		return true
	}
	return false
}
