package ecs

import "sync"

// Cell is a shared, lock-guarded box around a single component value.
// The world stores every component in a cell, and ShareComponent lets
// outside code keep a pointer to the same cell, so both sides mutate one
// value under one lock.
//
// Lock acquisition blocks until the current holder releases; there is no
// timeout and no deadlock detection. A goroutine that panics while
// holding a cell never releases it.
type Cell[T any] struct {
	mu    sync.Mutex
	value T
}

// NewCell wraps v in a fresh cell.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// Lock acquires the cell and returns the guarded value. The pointer is
// valid only until Unlock.
func (c *Cell[T]) Lock() *T {
	c.mu.Lock()
	return &c.value
}

// Unlock releases the cell.
func (c *Cell[T]) Unlock() {
	c.mu.Unlock()
}

// Get returns a copy of the current value.
func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set replaces the value.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = v
}

// Do runs f with exclusive access to the value. f must not lock the same
// cell again.
func (c *Cell[T]) Do(f func(*T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	f(&c.value)
}
