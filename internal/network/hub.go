package network

import (
	"sync"

	"github.com/malcolmsharpe/hex-dance-dungeon/pkg/api"
	"github.com/malcolmsharpe/hex-dance-dungeon/pkg/logger"
	"github.com/sirupsen/logrus"
)

// SubscriberBuffer - емкость личного канала подписчика.
const SubscriberBuffer = 64

// Broadcaster занимается только рассылкой снимков подписчикам сессий.
// На одну сессию может быть подписано несколько соединений (игрок + наблюдатели).
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: SessionID -> (SubscriberID -> личный канал)
	sessions map[string]map[int]chan api.ServerResponse
	nextID   int
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		sessions: make(map[string]map[int]chan api.ServerResponse),
	}
}

// Subscribe создает личный канал для соединения и привязывает его к сессии.
// Возвращенный id нужен для Unsubscribe.
func (b *Broadcaster) Subscribe(sessionID string) (int, <-chan api.ServerResponse) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID

	subs, ok := b.sessions[sessionID]
	if !ok {
		subs = make(map[int]chan api.ServerResponse)
		b.sessions[sessionID] = subs
	}
	ch := make(chan api.ServerResponse, SubscriberBuffer)
	subs[id] = ch

	return id, ch
}

// Unsubscribe закрывает канал подписчика. Повторный вызов ничего не делает.
func (b *Broadcaster) Unsubscribe(sessionID string, id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs, ok := b.sessions[sessionID]
	if !ok {
		return
	}
	if ch, ok := subs[id]; ok {
		close(ch)
		delete(subs, id)
	}
	if len(subs) == 0 {
		delete(b.sessions, sessionID)
	}
}

// SendTo отправляет снимок всем подписчикам сессии.
// Медленный подписчик с полным каналом пропускает сообщение, остальные его получают.
func (b *Broadcaster) SendTo(sessionID string, msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.sessions[sessionID] {
		select {
		case ch <- msg:
		default:
			logger.For("hub").WithFields(logrus.Fields{
				"session":    sessionID,
				"subscriber": id,
			}).Warn("Subscriber channel full, dropping update")
		}
	}
}

// HasSubscriber проверяет, смотрит ли кто-нибудь на сессию.
func (b *Broadcaster) HasSubscriber(sessionID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.sessions[sessionID]) > 0
}

// SubscriberCount возвращает количество активных подписчиков по всем сессиям.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	total := 0
	for _, subs := range b.sessions {
		total += len(subs)
	}
	return total
}
