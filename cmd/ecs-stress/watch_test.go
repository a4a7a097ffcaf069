package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/loam/ecs"
)

func writeScenario(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestWatchScenarioAppliesSpawnRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	writeScenario(t, path, "spawn_per_tick: 1\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rate := ecs.NewCell(SpawnRate{PerTick: 1})
	require.NoError(t, watchScenario(ctx, path, rate))

	writeScenario(t, path, "spawn_per_tick: 7\n")

	require.Eventually(t, func() bool {
		return rate.Get().PerTick == 7
	}, 5*time.Second, 20*time.Millisecond, "spawn rate should follow the file")
}

func TestWatchScenarioKeepsRateOnBadReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	writeScenario(t, path, "spawn_per_tick: 2\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rate := ecs.NewCell(SpawnRate{PerTick: 2})
	require.NoError(t, watchScenario(ctx, path, rate))

	writeScenario(t, path, "spawn_per_tick: not-a-number\n")

	// Give the watcher time to see the write and reject it.
	time.Sleep(4 * reloadDebounce)
	assert.Equal(t, 2, rate.Get().PerTick)
}
