package domain

// TestHistoryLen - емкость скользящего окна истории тестов (последние 7 дней).
const TestHistoryLen = 7

// TestData - статистика тестирования одной болезни в лаборатории.
type TestData struct {
	Today         int     `json:"today"`
	History       []int   `json:"history"` // окно <= 7 значений, FIFO
	Capacity      int     `json:"capacity"`
	PositiveRate  float64 `json:"positiveRate"`
	Positive      int     `json:"positive"`
	AvgTurnaround int     `json:"avgTurnaround"` // часы
	TickCount     int     `json:"tickCount"`
}

type Lab struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Zone        string      `json:"zone"`
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`

	TestData map[string]*TestData `json:"testData"`

	QueueLength         int    `json:"queueLength"`
	AvgWaitTime         int    `json:"avgWaitTime"` // минуты
	StaffOnDuty         int    `json:"staffOnDuty"`
	OperatingHours      string `json:"operatingHours"`
	TestsCompletedToday int    `json:"testsCompletedToday"`
	TestsPending        int    `json:"testsPending"`
}

// Utilization возвращает суммарную загрузку лаборатории по всем болезням.
// Нулевая суммарная емкость дает 0, а не деление на ноль.
func (l *Lab) Utilization() (tests, capacity int, ratio float64) {
	for _, td := range l.TestData {
		tests += td.Today
		capacity += td.Capacity
	}
	if capacity == 0 {
		return tests, capacity, 0
	}
	return tests, capacity, float64(tests) / float64(capacity)
}
