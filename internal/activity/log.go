package activity

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aditya-debugs/Heal-Sync/pkg/logger"
	"github.com/aditya-debugs/Heal-Sync/pkg/utils"
)

// DefaultCapacity - емкость кольцевого буфера журнала активности.
const DefaultCapacity = 200

// Meta - структурированные поля записи. Всегда содержит как минимум
// "agent" (компонент-источник) и "type" (вид события: STATUS, INIT...).
type Meta map[string]any

// Entry - одна человекочитаемая запись журнала активности.
type Entry struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Meta      Meta      `json:"meta"`
	Timestamp time.Time `json:"timestamp"`
}

// LogFunc - сигнатура, которую получают агенты. Доставка синхронная
// и никогда не возвращает ошибку.
type LogFunc func(message string, meta Meta)

// Log - ограниченный журнал активности агентов: кольцевой буфер
// (новые записи первыми, как в ленте дашборда), зеркало в logrus
// и рассылка подписчикам через Broadcaster.
type Log struct {
	mu       sync.Mutex
	entries  []*Entry // entries[0] - самая свежая
	capacity int

	hub *Broadcaster
}

func New(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{
		capacity: capacity,
		hub:      NewBroadcaster(),
	}
}

// Hub возвращает broadcaster для стриминга записей наружу.
func (l *Log) Hub() *Broadcaster { return l.hub }

// Send добавляет запись в журнал. Это единственная точка входа для агентов.
func (l *Log) Send(message string, meta Meta) {
	if meta == nil {
		meta = Meta{}
	}
	entry := &Entry{
		ID:        utils.GenerateID(),
		Message:   message,
		Meta:      meta,
		Timestamp: time.Now(),
	}

	l.mu.Lock()
	l.entries = append([]*Entry{entry}, l.entries...)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[:l.capacity]
	}
	l.mu.Unlock()

	// Зеркалим в общий логгер. Агент-источник идет через WithAgent,
	// чтобы имя поля было единым по всему сервису.
	mirror := logrus.NewEntry(logger.Log)
	if agent, ok := meta["agent"].(string); ok {
		mirror = logger.WithAgent(agent)
	}
	fields := logrus.Fields{}
	for k, v := range meta {
		if k != "agent" {
			fields[k] = v
		}
	}
	mirror.WithFields(fields).Info(message)

	l.hub.Broadcast(*entry)
}

// Snapshot возвращает копию журнала (свежие записи первыми).
func (l *Log) Snapshot() []*Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len возвращает текущее число записей.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
