package storage

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
)

// FetchFunc - загрузка полной коллекции с бэкенда
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Collection - снимок удалённой коллекции. Снимок заменяется только целиком,
// писатель один (writeMu), читатели не блокируются и видят либо старый,
// либо новый снимок.
type Collection[T any] struct {
	fetch   FetchFunc[T]
	writeMu sync.Mutex
	current atomic.Pointer[[]T]
	// started - номер последней начатой загрузки, applied - последней применённой
	started atomic.Uint64
	applied uint64

	subsMu sync.Mutex
	subs   map[int]chan struct{}
	nextID int
}

// NewCollection - пустой снимок до первой успешной загрузки
func NewCollection[T any](fetch FetchFunc[T]) *Collection[T] {
	c := &Collection[T]{
		fetch: fetch,
		subs:  make(map[int]chan struct{}),
	}
	empty := []T{}
	c.current.Store(&empty)
	return c
}

// Load загружает коллекцию и при успехе заменяет снимок. При ошибке
// предыдущий снимок остаётся как был, повторов нет. Результат загрузки,
// начатой раньше уже применённой, отбрасывается.
func (c *Collection[T]) Load(ctx context.Context) error {
	seq := c.started.Add(1)
	items, err := c.fetch(ctx)
	if err != nil {
		return err
	}
	c.apply(seq, items)
	return nil
}

// Replace - замена снимка вне загрузки, считается самой свежей
func (c *Collection[T]) Replace(items []T) {
	c.apply(c.started.Add(1), items)
}

func (c *Collection[T]) apply(seq uint64, items []T) {
	snapshot := slices.Clone(items)
	if snapshot == nil {
		snapshot = []T{}
	}

	c.writeMu.Lock()
	if seq < c.applied {
		c.writeMu.Unlock()
		return
	}
	c.applied = seq
	c.current.Store(&snapshot)
	c.writeMu.Unlock()

	c.publish()
}

// Snapshot - копия текущего снимка в порядке бэкенда
func (c *Collection[T]) Snapshot() []T {
	return slices.Clone(*c.current.Load())
}

// Len - размер текущего снимка
func (c *Collection[T]) Len() int {
	return len(*c.current.Load())
}

// Subscribe - канал уведомлений о замене снимка. Уведомления не копятся:
// если подписчик не успел прочитать, следующее сливается с предыдущим.
func (c *Collection[T]) Subscribe() (<-chan struct{}, func()) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()

	id := c.nextID
	c.nextID++
	ch := make(chan struct{}, 1)
	c.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.subsMu.Lock()
			delete(c.subs, id)
			c.subsMu.Unlock()
		})
	}
}

func (c *Collection[T]) publish() {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	for _, ch := range c.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
