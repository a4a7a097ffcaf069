package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario(t *testing.T) {
	sc, err := LoadScenario(filepath.Join("testdata", "scenario.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 500, sc.Entities)
	assert.Equal(t, uint16(120), sc.Frequency)
	assert.Equal(t, 3, sc.SpawnPerTick)
	assert.Equal(t, 2*time.Second, time.Duration(sc.Duration))
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
}

func TestLoadScenarioBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("duration: soon\n"), 0o644))

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "soon")
}

func TestLoadScenarioRejectsNegative(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entities: -1\n"), 0o644))

	_, err := LoadScenario(path)
	require.Error(t, err)
}

func TestRunConfigApply(t *testing.T) {
	cfg := runConfig{
		Duration:     10 * time.Second,
		Entities:     10000,
		Frequency:    60,
		SpawnPerTick: 0,
	}
	sc := &Scenario{
		Entities:     500,
		Frequency:    120,
		SpawnPerTick: 3,
		Duration:     duration(2 * time.Second),
	}

	cfg.apply(sc, map[string]bool{"entities": true})

	assert.Equal(t, 10000, cfg.Entities, "explicit flag wins over the file")
	assert.Equal(t, uint16(120), cfg.Frequency)
	assert.Equal(t, 3, cfg.SpawnPerTick)
	assert.Equal(t, 2*time.Second, cfg.Duration)
}

func TestRunConfigApplySkipsZeroFields(t *testing.T) {
	cfg := runConfig{
		Duration:  10 * time.Second,
		Entities:  10000,
		Frequency: 60,
	}

	cfg.apply(&Scenario{}, nil)

	assert.Equal(t, 10*time.Second, cfg.Duration)
	assert.Equal(t, 10000, cfg.Entities)
	assert.Equal(t, uint16(60), cfg.Frequency)
	assert.Equal(t, 0, cfg.SpawnPerTick)
}
