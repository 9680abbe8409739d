package network

import (
	"sync"

	"strategos-server/pkg/api"
)

// Broadcaster занимается только рассылкой снимков мира подписчикам
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[chan api.ServerSnapshot]bool
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[chan api.ServerSnapshot]bool),
	}
}

// Subscribe создает канал для нового клиента
func (b *Broadcaster) Subscribe() chan api.ServerSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan api.ServerSnapshot, 100)
	b.subscribers[ch] = true
	return ch
}

// Unsubscribe удаляет клиента
func (b *Broadcaster) Unsubscribe(ch chan api.ServerSnapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subscribers[ch]; ok {
		delete(b.subscribers, ch)
		close(ch)
	}
}

// Count возвращает число активных подписчиков
func (b *Broadcaster) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Broadcast отправляет снимок всем
func (b *Broadcaster) Broadcast(msg api.ServerSnapshot) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
			// Пропускаем медленных клиентов
		}
	}
}
