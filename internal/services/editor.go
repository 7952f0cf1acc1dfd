package services

import (
	"context"
	"fmt"

	"github.com/denmor86/ya-shopadmin/internal/client"
	"github.com/denmor86/ya-shopadmin/internal/logger"
	"github.com/denmor86/ya-shopadmin/internal/notify"
	"github.com/denmor86/ya-shopadmin/internal/storage"
)

// ActionError - отказ операции с текстом для пользователя
type ActionError struct {
	Message string
	Err     error
}

func (e *ActionError) Error() string {
	return e.Message
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// Editor - редактор удалённой коллекции: список грузится целиком, запись
// уходит на сервер, после успешной записи список перезагружается.
type Editor[T any] struct {
	Name       string
	Store      *storage.Collection[T]
	Notifier   notify.Notifier
	LoadFailed string
}

func NewEditor[T any](name string, fetch storage.FetchFunc[T], notifier notify.Notifier, loadFailed string) *Editor[T] {
	return &Editor[T]{
		Name:       name,
		Store:      storage.NewCollection(fetch),
		Notifier:   notifier,
		LoadFailed: loadFailed,
	}
}

// Load - полная перезагрузка; при ошибке снимок не меняется
func (e *Editor[T]) Load(ctx context.Context) error {
	if err := e.Store.Load(ctx); err != nil {
		logger.Error("Failed to load collection", "collection", e.Name, "error", err)
		e.Notifier.Error(e.LoadFailed)
		return fmt.Errorf("load %s: %w", e.Name, err)
	}
	logger.Debug("Collection loaded", "collection", e.Name, "size", e.Store.Len())
	return nil
}

// Snapshot - текущий список в порядке сервера
func (e *Editor[T]) Snapshot() []T {
	return e.Store.Snapshot()
}

// mutate выполняет запись и при успехе перезагружает коллекцию.
// Ошибка перезагрузки не делает запись неуспешной.
func (e *Editor[T]) mutate(ctx context.Context, success, fallback string, call func(ctx context.Context) (string, error)) error {
	serverMsg, err := call(ctx)
	if err != nil {
		msg := client.Message(err, fallback)
		logger.Warn("Write rejected", "collection", e.Name, "error", err)
		e.Notifier.Error(msg)
		return &ActionError{Message: msg, Err: err}
	}
	if serverMsg != "" {
		success = serverMsg
	}
	if success != "" {
		e.Notifier.Success(success)
	}
	_ = e.Load(ctx)
	return nil
}

// invalid - отказ без сетевого запроса
func (e *Editor[T]) invalid(msg string, err error) error {
	e.Notifier.Error(msg)
	return &ActionError{Message: msg, Err: err}
}
