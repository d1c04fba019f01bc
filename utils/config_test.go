package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, 50, config.Size)
	assert.Equal(t, 0.5, config.Density)
	assert.Equal(t, 20*time.Millisecond, config.FrameRate)
	require.NoError(t, config.Validate())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"size": 30, "density": 0.25, "glider": true}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 30, config.Size)
	assert.Equal(t, 0.25, config.Density)
	assert.True(t, config.Glider)
	// Unset fields keep their defaults.
	assert.Equal(t, 100000, config.MaxGenerations)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[LoadConfig]")
}

func TestValidate(t *testing.T) {
	config := DefaultConfig()

	config.Size = 0
	assert.Error(t, config.Validate())

	config = DefaultConfig()
	config.Density = 1.5
	assert.Error(t, config.Validate())

	config = DefaultConfig()
	config.FrameRate = 0
	assert.Error(t, config.Validate())
}
