package ecs_test

import (
	"sync"
	"testing"

	"github.com/plus3/loam/ecs"
	"github.com/stretchr/testify/assert"
)

func TestCellGetSet(t *testing.T) {
	cell := ecs.NewCell(Position{X: 1.0, Y: 2.0})

	got := cell.Get()
	assert.Equal(t, float32(1.0), got.X)
	assert.Equal(t, float32(2.0), got.Y)

	cell.Set(Position{X: 10.0, Y: 20.0})
	assert.Equal(t, float32(10.0), cell.Get().X)
}

func TestCellGetReturnsCopy(t *testing.T) {
	cell := ecs.NewCell(Health{Current: 50, Max: 100})

	copied := cell.Get()
	copied.Current = 0

	// Mutating the copy must not touch the cell.
	assert.Equal(t, 50, cell.Get().Current)
}

func TestCellLockUnlock(t *testing.T) {
	cell := ecs.NewCell(Counter{Value: 1})

	v := cell.Lock()
	v.Value = 42
	cell.Unlock()

	assert.Equal(t, 42, cell.Get().Value)
}

func TestCellDo(t *testing.T) {
	cell := ecs.NewCell(Score(10))

	cell.Do(func(s *Score) {
		*s += 5
	})

	assert.Equal(t, Score(15), cell.Get())
}

func TestCellConcurrentMutation(t *testing.T) {
	const goroutines = 8
	const increments = 1000

	cell := ecs.NewCell(Counter{})

	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range increments {
				cell.Do(func(c *Counter) {
					c.Value++
				})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines*increments, cell.Get().Value)
}

func TestCellSharedBetweenHolders(t *testing.T) {
	cell := ecs.NewCell(Position{X: 1.0, Y: 1.0})
	other := cell

	other.Do(func(p *Position) {
		p.X = 99.0
	})

	assert.Equal(t, float32(99.0), cell.Get().X)
}
