package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/plus3/loam/ecs"
)

// SpawnRate is the live part of the scenario. The watcher goroutine
// writes it and the spawn system reads it, both through the cell's lock.
type SpawnRate struct {
	PerTick int
}

const reloadDebounce = 200 * time.Millisecond

// watchScenario reloads path on every write and pushes the new spawn
// rate into rate. The other scenario fields are construction-time only
// and are ignored on reload. The watcher stops when ctx is cancelled.
func watchScenario(ctx context.Context, path string, rate *ecs.Cell[SpawnRate]) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory: editors replace files by rename, which drops
	// a watch on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	go func() {
		defer watcher.Close()

		var pending <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				name, err := filepath.Abs(event.Name)
				if err != nil || name != abs {
					continue
				}
				if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
					continue
				}
				pending = time.After(reloadDebounce)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Scenario watch error: %v", err)

			case <-pending:
				pending = nil
				sc, err := LoadScenario(path)
				if err != nil {
					log.Printf("Scenario reload failed: %v", err)
					continue
				}
				rate.Set(SpawnRate{PerTick: sc.SpawnPerTick})
				log.Printf("Scenario reloaded: spawn_per_tick=%d", sc.SpawnPerTick)
			}
		}
	}()

	return nil
}
