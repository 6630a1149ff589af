package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automaton/src/grid"
	"automaton/src/universe"
)

func writeFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 35, c.Size)
	assert.Equal(t, 20, c.CellSize)
	assert.Equal(t, ModeConsole, c.Mode)
	assert.Equal(t, grid.EngineFresh, c.Engine)
	assert.Equal(t, 300, c.FramesPerStep)
}

func TestParse_Flags(t *testing.T) {
	c, err := Parse([]string{"-x", "50", "--engine", "multithreaded", "-i", "250ms", "-m", "batch", "-r", "--seed", "7", "--maxSteps", "12"})
	require.NoError(t, err)
	assert.Equal(t, 50, c.Size)
	assert.Equal(t, grid.EngineMultithreaded, c.Engine)
	assert.Equal(t, 250*time.Millisecond, c.Interval)
	assert.Equal(t, ModeBatch, c.Mode)
	assert.True(t, c.Random)
	assert.Equal(t, int64(7), c.Seed)
	assert.Equal(t, 12, c.MaxSteps)
}

func TestParse_FileThenFlags(t *testing.T) {
	path := writeFile(t, `{"size": 60, "engine": "doubleBuff", "interval": 50000000, "template": "glider"}`)
	c, err := Parse([]string{"--config", path, "--size", "40"})
	require.NoError(t, err)
	assert.Equal(t, 40, c.Size, "flags override the file")
	assert.Equal(t, grid.EngineDoubleBuff, c.Engine)
	assert.Equal(t, 50*time.Millisecond, c.Interval)
	assert.Equal(t, "glider", c.Template)
	assert.Equal(t, 20, c.CellSize, "missing keys keep defaults")
	assert.Equal(t, path, c.File)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]string{"--size", "0"})
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Parse([]string{"--engine", "smallBuff"})
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.Contains(t, err.Error(), "unknown engine smallBuff")
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, `{"size": "big"}`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "[config.Load] failed to unmarshal")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"NegativeSize", func(c *Config) { c.Size = -3 }},
		{"ZeroCellSize", func(c *Config) { c.CellSize = 0 }},
		{"NegativeInterval", func(c *Config) { c.Interval = -time.Second }},
		{"NegativeMaxSteps", func(c *Config) { c.MaxSteps = -1 }},
		{"NegativeSkippedTicks", func(c *Config) { c.MaxSkippedTicks = -1 }},
		{"ZeroFramesPerStep", func(c *Config) { c.FramesPerStep = 0 }},
		{"UnknownMode", func(c *Config) { c.Mode = "gui" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(&c)
			require.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}

func TestUniverseOptions(t *testing.T) {
	c := Default()
	c.Size = 12
	c.Engine = grid.EngineDoubleBuff
	c.MaxSteps = 9
	c.HaltOnStable = true
	c.Seed = 5
	assert.Equal(t, universe.Options{
		Size:            12,
		Engine:          grid.EngineDoubleBuff,
		Interval:        universe.DefSimulationInterval,
		MaxSteps:        9,
		MaxSkippedTicks: universe.DefMaxSkippedTicks,
		HaltOnStable:    true,
		Seed:            5,
	}, c.UniverseOptions())
}
