package activity

import "sync"

// Broadcaster занимается только рассылкой записей журнала подписчикам
// (websocket-клиенты дашборда и т.п.).
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[chan Entry]bool
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[chan Entry]bool),
	}
}

// Subscribe создает канал для нового клиента.
func (b *Broadcaster) Subscribe() chan Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan Entry, 100)
	b.subscribers[ch] = true
	return ch
}

// Unsubscribe удаляет клиента.
func (b *Broadcaster) Unsubscribe(ch chan Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subscribers[ch]; ok {
		delete(b.subscribers, ch)
		close(ch)
	}
}

// Broadcast отправляет запись всем.
func (b *Broadcaster) Broadcast(e Entry) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subscribers {
		select {
		case ch <- e:
		default:
			// Пропускаем медленных клиентов
		}
	}
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
