package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the simulation settings.
type Config struct {
	Size           int           `json:"size"`
	Density        float64       `json:"density"`
	Seed           int64         `json:"seed"`
	FrameRate      time.Duration `json:"frame_rate"`
	MaxGenerations int           `json:"max_generations"`
	Glider         bool          `json:"glider"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Size:           50,
		Density:        0.5,
		FrameRate:      20 * time.Millisecond,
		MaxGenerations: 100000,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate rejects settings that cannot produce a well-formed simulation.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return errors.Errorf("[Validate] size must be positive, got %d", c.Size)
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Errorf("[Validate] density must be within [0, 1], got %v", c.Density)
	}
	if c.FrameRate <= 0 {
		return errors.Errorf("[Validate] frame rate must be positive, got %v", c.FrameRate)
	}
	return nil
}
