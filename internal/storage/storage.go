package storage

import (
	"context"
	"errors"
)

// Store - локальная копия одной коллекции бэкенда
type Store[T any] interface {
	Load(ctx context.Context) error
	Replace(items []T)
	Snapshot() []T
	Len() int
}

var (
	ErrNotFound = errors.New("not found")
)

// Find - первый элемент текущего снимка, подходящий под условие
func (c *Collection[T]) Find(match func(T) bool) (T, error) {
	for _, it := range *c.current.Load() {
		if match(it) {
			return it, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

var _ Store[struct{}] = (*Collection[struct{}])(nil)
