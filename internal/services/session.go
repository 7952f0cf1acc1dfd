package services

import (
	"context"
	"sync"

	"github.com/denmor86/ya-shopadmin/internal/client"
	"github.com/denmor86/ya-shopadmin/internal/config"
	"github.com/denmor86/ya-shopadmin/internal/logger"
	"github.com/denmor86/ya-shopadmin/internal/models"
	"github.com/denmor86/ya-shopadmin/internal/notify"
	"github.com/denmor86/ya-shopadmin/internal/worker"
	"github.com/google/uuid"
)

// Dashboard - открытая сессия администратора: всё, что в браузере жило
// бы в смонтированном дереве компонентов. Данные сессий не пересекаются.
type Dashboard struct {
	ID       string
	Email    string
	Currency string

	Client       *client.Client
	Feed         *notify.Feed
	Orders       *Editor[models.Order]
	Actions      *OrderActions
	Categories   *Categories
	Offers       *Offers
	Testimonials *Testimonials

	refresher *worker.RefreshWorker
	cancel    context.CancelFunc
}

func newDashboard(backend *client.Client, cfg config.DashboardConfig, email, token string) *Dashboard {
	id := uuid.NewString()
	api := backend.WithToken(token)
	feed := notify.NewFeed(cfg.NotifyBuffer)
	notifier := notify.Multi{feed, notify.Log{Session: id}}

	orders := NewOrders(api, notifier)
	return &Dashboard{
		ID:           id,
		Email:        email,
		Currency:     cfg.Currency,
		Client:       api,
		Feed:         feed,
		Orders:       orders,
		Actions:      NewOrderActions(api, orders, notifier),
		Categories:   NewCategories(api, notifier),
		Offers:       NewOffers(api, notifier),
		Testimonials: NewTestimonials(api, notifier),
	}
}

// Mount - первичная загрузка всех списков. Без токена ничего не грузится.
func (d *Dashboard) Mount(ctx context.Context) {
	if !d.Client.Authorized() {
		d.Feed.Error(MsgFetchOrdersFailed)
		return
	}
	_ = d.Orders.Load(ctx)
	_ = d.Categories.Load(ctx)
	_ = d.Offers.Load(ctx)
	_ = d.Testimonials.Load(ctx)
}

func (d *Dashboard) startRefresh(cfg config.DashboardConfig) {
	if cfg.RefreshInterval <= 0 {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.refresher = worker.NewRefreshWorker("orders-refresh:"+d.ID, d.Orders, cfg.RefreshInterval)
	d.refresher.Start(ctx)
}

func (d *Dashboard) close() {
	if d.refresher != nil {
		d.refresher.Stop()
	}
	if d.cancel != nil {
		d.cancel()
	}
}

// Sessions - реестр открытых сессий
type Sessions struct {
	Backend *client.Client
	Config  config.DashboardConfig

	mu    sync.RWMutex
	items map[string]*Dashboard
}

func NewSessions(backend *client.Client, cfg config.DashboardConfig) *Sessions {
	return &Sessions{
		Backend: backend,
		Config:  cfg,
		items:   make(map[string]*Dashboard),
	}
}

// Open - новая сессия с токеном бэкенда; списки загружаются сразу
func (s *Sessions) Open(ctx context.Context, email, token string) *Dashboard {
	d := newDashboard(s.Backend, s.Config, email, token)
	d.Mount(ctx)
	d.startRefresh(s.Config)

	s.mu.Lock()
	s.items[d.ID] = d
	s.mu.Unlock()

	logger.Info("Dashboard session opened", "session", d.ID, "email", email)
	return d
}

func (s *Sessions) Get(id string) (*Dashboard, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.items[id]
	return d, ok
}

// Close - выход администратора, снимки сессии отбрасываются
func (s *Sessions) Close(id string) bool {
	s.mu.Lock()
	d, ok := s.items[id]
	delete(s.items, id)
	s.mu.Unlock()

	if !ok {
		return false
	}
	d.close()
	logger.Info("Dashboard session closed", "session", id)
	return true
}

// CloseAll - при остановке сервера
func (s *Sessions) CloseAll() {
	s.mu.Lock()
	items := s.items
	s.items = make(map[string]*Dashboard)
	s.mu.Unlock()

	for _, d := range items {
		d.close()
	}
}

// Len - число открытых сессий
func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
