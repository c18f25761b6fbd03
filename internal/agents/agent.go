// Package agents содержит периодических агентов сети: по одному на каждую
// сущность мира (лаборатория, больница, аптека, поставщик) плюс
// синглтон-агент города. Каждый агент на своем тике читает общий WorldState,
// симулирует изменения, проверяет пороги, мутирует свою сущность и публикует
// доменные события в шину.
package agents

import (
	"time"
)

// Agent - общий контракт периодического агента.
//
// Tick вызывается планировщиком под мьютексом мира: один тик выполняется
// до конца, прежде чем начнется следующий (run-to-completion). Хендлеры
// шины, сработавшие внутри Publish, выполняются в том же стеке вызова
// и под тем же мьютексом.
type Agent interface {
	// Name - имя агента для логов ("Lab L1", "City"...).
	Name() string

	// Interval - период тика. У каждого типа сущности свой.
	Interval() time.Duration

	// Start логирует инициализацию. Подписки на шину оформляются
	// в конструкторе, до запуска таймеров.
	Start()

	// Tick - одно плановое обновление. Если сущности агента больше нет
	// в мире - no-op без ошибки.
	Tick()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
