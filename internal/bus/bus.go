package bus

import (
	"sync"

	"github.com/aditya-debugs/Heal-Sync/pkg/logger"
)

// Handler - подписчик события. Payload передается по ссылке:
// хендлер видит (и может мутировать) общий объект издателя.
type Handler func(payload any)

// Bus - внутрипроцессная шина publish/subscribe с ключом-строкой типа события.
//
// Семантика умышленно простая, один в один с исходным протоколом:
//   - порядок вызова = порядок регистрации;
//   - двойная подписка = двойной вызов (дедупликации нет);
//   - publish без подписчиков - no-op, никогда не ошибка;
//   - диспатч синхронный и реентерабельный: хендлер может публиковать
//     другие события, они раскрутятся в глубину внутри того же тика.
//
// Два отступления от наивной диспетчеризации "пройтись по срезу и вызвать":
//   - паника в хендлере гасится и логируется, остальные хендлеры выполняются;
//   - повторная публикация типа E изнутри его же цепочки хендлеров
//     отбрасывается - защита от бесконечной рекурсии.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler

	flightMu sync.Mutex
	inFlight map[string]int
}

func New() *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
		inFlight: make(map[string]int),
	}
}

// Subscribe регистрирует хендлер под типом события.
// Отписки нет: агенты живут до конца процесса.
func (b *Bus) Subscribe(eventType string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], h)
}

// Publish синхронно вызывает всех подписчиков типа в порядке регистрации.
func (b *Bus) Publish(eventType string, payload any) {
	b.mu.RLock()
	// Копируем срез: хендлер может подписать кого-то еще прямо в диспатче.
	registered := b.handlers[eventType]
	hs := make([]Handler, len(registered))
	copy(hs, registered)
	b.mu.RUnlock()

	if len(hs) == 0 {
		return
	}

	if !b.enterFlight(eventType) {
		logger.Log.WithField("event", eventType).
			Warn("Recursive publish of event type inside its own handler chain dropped")
		return
	}
	defer b.leaveFlight(eventType)

	for _, h := range hs {
		b.invoke(eventType, h, payload)
	}
}

// invoke изолирует один вызов хендлера: паника не должна
// обрывать остальных подписчиков и тик издателя.
func (b *Bus) invoke(eventType string, h Handler, payload any) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.WithField("event", eventType).
				Errorf("Event handler panicked: %v", r)
		}
	}()
	h(payload)
}

func (b *Bus) enterFlight(eventType string) bool {
	b.flightMu.Lock()
	defer b.flightMu.Unlock()
	if b.inFlight[eventType] > 0 {
		return false
	}
	b.inFlight[eventType]++
	return true
}

func (b *Bus) leaveFlight(eventType string) {
	b.flightMu.Lock()
	defer b.flightMu.Unlock()
	b.inFlight[eventType]--
}
