package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	rgba, err := c.ClearRGBA()
	require.NoError(t, err)
	assert.Equal(t, [4]float32{0, 0, 0, 1}, rgba)
	assert.False(t, c.ClampPointer)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
width: 1024
clearColor: "#ff0000"
clampPointer: true
`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1024, c.Width)
	assert.Equal(t, 600, c.Height, "missing keys keep defaults")
	assert.Equal(t, "glowquad", c.Title)
	assert.True(t, c.ClampPointer)

	rgba, err := c.ClearRGBA()
	require.NoError(t, err)
	assert.Equal(t, [4]float32{1, 0, 0, 1}, rgba)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"bad yaml", "width: [1, 2"},
		{"bad color", "clearColor: not-a-color"},
		{"bad size", "height: 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.text))
			assert.Error(t, err)
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	c, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
