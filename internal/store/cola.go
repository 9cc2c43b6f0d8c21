package store

import "slices"

// cola is a FIFO queue. The zero value is ready to use.
type cola[T any] struct {
	items []T
}

func (c *cola[T]) encolar(v T) {
	c.items = append(c.items, v)
}

// frente returns the oldest element without removing it.
func (c *cola[T]) frente() (T, bool) {
	var zero T
	if len(c.items) == 0 {
		return zero, false
	}
	return c.items[0], true
}

func (c *cola[T]) desencolar() (T, bool) {
	v, ok := c.frente()
	if !ok {
		return v, false
	}
	var zero T
	c.items[0] = zero
	c.items = c.items[1:]
	return v, true
}

func (c *cola[T]) elementos() []T {
	return slices.Clone(c.items)
}

func (c *cola[T]) len() int { return len(c.items) }

func (c *cola[T]) vaciar() { c.items = nil }
