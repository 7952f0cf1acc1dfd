// Package notify - кратковременные уведомления пользователя админки.
package notify

import (
	"sync"
	"time"

	"github.com/denmor86/ya-shopadmin/internal/logger"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notifier - приёмник уведомлений; сервисы не знают, как они показываются
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Notification - одно уведомление
type Notification struct {
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Feed - ограниченная лента уведомлений сессии, старые вытесняются новыми
type Feed struct {
	mu    sync.Mutex
	items []Notification
	limit int
	now   func() time.Time
}

func NewFeed(limit int) *Feed {
	if limit <= 0 {
		limit = 1
	}
	return &Feed{limit: limit, now: time.Now}
}

func (f *Feed) Success(msg string) {
	f.push(LevelSuccess, msg)
}

func (f *Feed) Error(msg string) {
	f.push(LevelError, msg)
}

func (f *Feed) push(level Level, msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, Notification{Level: level, Message: msg, At: f.now()})
	if over := len(f.items) - f.limit; over > 0 {
		f.items = append([]Notification(nil), f.items[over:]...)
	}
}

// Drain отдаёт накопленные уведомления и очищает ленту
func (f *Feed) Drain() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := f.items
	f.items = nil
	if items == nil {
		return []Notification{}
	}
	return items
}

// Log - уведомления как диагностика в лог разработчика
type Log struct {
	Session string
}

func (l Log) Success(msg string) {
	logger.Debug("notification", "session", l.Session, "level", LevelSuccess, "message", msg)
}

func (l Log) Error(msg string) {
	logger.Warn("notification", "session", l.Session, "level", LevelError, "message", msg)
}

// Multi - рассылает уведомление всем приёмникам по порядку
type Multi []Notifier

func (m Multi) Success(msg string) {
	for _, n := range m {
		n.Success(msg)
	}
}

func (m Multi) Error(msg string) {
	for _, n := range m {
		n.Error(msg)
	}
}
