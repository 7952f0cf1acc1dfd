package worker

import (
	"context"
	"sync"
	"time"

	"github.com/denmor86/ya-shopadmin/internal/logger"
	"github.com/sony/gobreaker"
)

// Loader - то, что воркер периодически перезагружает
type Loader interface {
	Load(ctx context.Context) error
}

func InitCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    name,
		Timeout: 30 * time.Second, // через 30 сек снова пробуем бэкенд
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})
}

// RefreshWorker - фоновая перезагрузка списка заказов сессии.
// Явный контракт "данные изменились -> вид обновился" вместо живого канала.
type RefreshWorker struct {
	Loader       Loader
	Breaker      *gobreaker.CircuitBreaker
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
	PollInterval time.Duration
	stopOnce     sync.Once
}

// NewRefreshWorker - конструктор воркера перезагрузки
func NewRefreshWorker(name string, loader Loader, interval time.Duration) *RefreshWorker {
	return &RefreshWorker{
		Loader:       loader,
		Breaker:      InitCircuitBreaker(name),
		QuitChan:     make(chan struct{}),
		PollInterval: interval,
	}
}

// Start - запускает воркер в фоне
func (w *RefreshWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер, повторный вызов безопасен
func (w *RefreshWorker) Stop() {
	w.stopOnce.Do(func() {
		close(w.QuitChan)
	})
	w.WaitGroup.Wait()
}

// Run - основной цикл
func (w *RefreshWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("RefreshWorker signal stop", "name", w.Breaker.Name())
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Refresh(ctx)
		}
	}
}

// Refresh - одна перезагрузка; при открытом предохранителе пропускается
func (w *RefreshWorker) Refresh(ctx context.Context) {
	if w.Breaker.State() == gobreaker.StateOpen {
		logger.Warn("Backend unavailable, refresh skipped", "name", w.Breaker.Name())
		return
	}

	_, err := w.Breaker.Execute(func() (interface{}, error) {
		return nil, w.Loader.Load(ctx)
	})
	if err != nil {
		logger.Debug("Refresh failed", "name", w.Breaker.Name(), "error", err)
	}
}
