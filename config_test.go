package main

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "golddust.ini")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 768.0, cfg.NarrowWidth)
	assert.Equal(t, 100, cfg.NarrowCount)
	assert.Equal(t, 200, cfg.WideCount)
	assert.Equal(t, color.RGBA{R: 212, G: 175, B: 55, A: 255}, cfg.Gold)
}

func TestLoadConfigOverridesOnlyPresentKeys(t *testing.T) {
	path := writeConfig(t, "[Field]\nWideCount = 350\nGoldR = 255\nGoldG = 215\nGoldB = 0\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 350, cfg.WideCount)
	assert.Equal(t, color.RGBA{R: 255, G: 215, B: 0, A: 255}, cfg.Gold)
	assert.Equal(t, 100, cfg.NarrowCount, "absent keys keep their defaults")
	assert.Equal(t, 768.0, cfg.NarrowWidth, "absent keys keep their defaults")
}

func TestLoadConfigParsesExampleFile(t *testing.T) {
	path := writeConfig(t, ExampleConfigFile)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg, "the documented example matches the defaults")
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "[Field]\nWideCount = -4\n"))
	assert.Error(t, err, "non-positive count")

	_, err = LoadConfig(writeConfig(t, "[Field]\nGoldR = 300\n"))
	assert.Error(t, err, "color channel out of range")

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err, "missing file")
}
